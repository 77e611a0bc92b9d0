package module

import (
	"fmt"
	"sync"
)

var (
	mu    sync.RWMutex
	ports = map[string]any{}
)

// Register publishes a module's ports under its name. Nil ports are not recorded
func Register(name string, p any) {
	mu.Lock()
	defer mu.Unlock()
	if p == nil {
		delete(ports, name)
		return
	}
	ports[name] = p
}

// PortsAs looks up name and asserts its ports to T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := ports[name].(T)
	return p, ok
}

// MustPortsAs is PortsAs for wiring code, where a missing port is a programming error
func MustPortsAs[T any](name string) T {
	p, ok := PortsAs[T](name)
	if !ok {
		var want T
		panic(fmt.Sprintf("module %q does not expose %T", name, &want))
	}
	return p
}

// Reset forgets every registration
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(ports)
}
