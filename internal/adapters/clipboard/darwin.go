//go:build darwin

package clipboard

func platformCommands() []Command {
	return []Command{{Name: "pbcopy"}}
}
