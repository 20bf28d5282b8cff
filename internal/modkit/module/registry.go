package module

import (
	"slices"
	"sync"
)

// process wide port sets by module name, filled by api.Mount
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores ports under name, a later call for the same name replaces it
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	reg[name] = ports
}

// PortsAs returns the ports registered under name when they have type T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, found := reg[name]
	mu.RUnlock()
	out, ok := v.(T)
	return out, found && ok
}

// Names lists registered module names in order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(reg))
	for n := range reg {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Reset empties the registry, for tests
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(reg)
}
