// Package history provides the bounded, persisted conversation log and
// the storage backend registry.
package history

import (
	"fmt"
	"sort"
	"sync"

	"github.com/parley-chat/parley/pkg/chat"
)

// Store persists an ordered snapshot of turns. Every Save rewrites the
// persisted state wholesale; there is no append-only log.
type Store interface {
	// Save replaces the persisted state with the given turns.
	Save(turns []chat.Turn) error

	// Load returns all persisted turns in original order. A missing
	// store yields an empty result and no error; an unreadable or
	// malformed store yields an error and leaves the state untouched.
	Load() ([]chat.Turn, error)
}

// Options carries everything a backend factory needs to open a store.
type Options struct {
	// Path is the backend-specific location of the persisted state.
	Path string
}

// Factory opens a Store for the given options.
type Factory func(opts Options) (Store, error)

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]Factory)
)

// RegisterBackend makes a storage backend available under the given
// name. Backends call this from init(); registering a duplicate name
// panics.
func RegisterBackend(name string, factory Factory) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if _, dup := backends[name]; dup {
		panic(fmt.Sprintf("history: backend %q registered twice", name))
	}
	backends[name] = factory
}

// Open creates a Store using the named backend.
func Open(name string, opts Options) (Store, error) {
	backendsMu.RLock()
	factory, ok := backends[name]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("history: unknown backend %q (registered: %v)", name, Backends())
	}
	return factory(opts)
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
