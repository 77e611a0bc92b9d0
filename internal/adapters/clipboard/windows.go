//go:build windows

package clipboard

func platformCommands() []Command {
	return []Command{{Name: "clip"}}
}
