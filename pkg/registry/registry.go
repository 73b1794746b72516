package registry

import (
	"fmt"
	"sync"

	"github.com/arthur-debert/fieldptr/pkg/errors"
)

// Registry is a thread-safe registry for storing and retrieving items by
// name or by registration position.
type Registry[T any] interface {
	// Register adds an item and returns its position
	Register(name string, item T) (int, error)

	// Get retrieves an item by name
	Get(name string) (T, error)

	// At retrieves an item by position
	At(pos int) (T, bool)

	// Position returns the position of a named item, or -1
	Position(name string) int

	// Has checks if an item is registered
	Has(name string) bool

	// Names returns all registered names in registration order
	Names() []string

	// Count returns the number of registered items
	Count() int
}

type entry[T any] struct {
	name string
	item T
}

type registry[T any] struct {
	mu      sync.RWMutex
	entries []entry[T]
	index   map[string]int
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{
		index: make(map[string]int),
	}
}

func (r *registry[T]) Register(name string, item T) (int, error) {
	if name == "" {
		return -1, errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[name]; exists {
		return -1, errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}

	pos := len(r.entries)
	r.entries = append(r.entries, entry[T]{name: name, item: item})
	r.index[name] = pos
	return pos, nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, exists := r.index[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}
	return r.entries[pos].item, nil
}

func (r *registry[T]) At(pos int) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if pos < 0 || pos >= len(r.entries) {
		var zero T
		return zero, false
	}
	return r.entries[pos].item, true
}

func (r *registry[T]) Position(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if pos, ok := r.index[name]; ok {
		return pos
	}
	return -1
}

func (r *registry[T]) Has(name string) bool {
	return r.Position(name) >= 0
}

func (r *registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// MustRegister registers an item and panics if registration fails.
// Meant for init() tables where a failure is a programming error.
func MustRegister[T any](reg Registry[T], name string, item T) int {
	pos, err := reg.Register(name, item)
	if err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
	return pos
}
