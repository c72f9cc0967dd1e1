package backend

import (
	"sync"
)

// WindowFactory creates a new window instance.
type WindowFactory func() Window

// registry holds registered window backends.
var (
	registryMu sync.RWMutex
	windows    = make(map[string]WindowFactory)
	// Priority order for backend selection (first available wins).
	// A real window beats the headless fallback.
	backendPriority = []string{BackendEbiten, BackendHeadless}
)

// Register registers a window factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory WindowFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	windows[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(windows, name)
}

// Available returns a list of registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(windows))
	for name := range windows {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := windows[name]
	return ok
}

// Get returns a window instance by name.
// Returns nil if the backend is not registered.
func Get(name string) Window {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := windows[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available window based on priority.
// Priority order: ebiten > headless.
// Returns nil if no backends are registered.
func Default() Window {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := windows[name]; ok {
			if w := factory(); w != nil {
				return w
			}
		}
	}

	// Fallback: return first available
	for _, factory := range windows {
		if w := factory(); w != nil {
			return w
		}
	}

	return nil
}

// MustDefault returns the default window or panics.
func MustDefault() Window {
	w := Default()
	if w == nil {
		panic("backend: no window backend available")
	}
	return w
}
