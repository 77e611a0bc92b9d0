//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

// wayland first, then the two X11 tools
func platformCommands() []Command {
	return []Command{
		{Name: "wl-copy"},
		{Name: "xclip", Args: []string{"-selection", "clipboard"}},
		{Name: "xsel", Args: []string{"--clipboard", "--input"}},
	}
}
