//go:build !darwin && !windows && !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package clipboard

// no known tool; every write reports ErrUnsupported
func platformCommands() []Command { return nil }
