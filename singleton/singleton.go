package singleton

import "sync"

var (
	once     sync.Once
	instance *Registry
)

// Registry is a process-wide key-value store of string settings.
// Obtain it through Instance; the zero value is not meant for direct use.
type Registry struct {
	mu     sync.RWMutex
	values map[string]string
}

// Instance returns the single shared Registry, creating it on first call.
// Every subsequent call returns the same pointer.
// Complexity: O(1).
func Instance() *Registry {
	once.Do(func() {
		instance = &Registry{values: make(map[string]string)}
	})

	return instance
}

// Set stores value under key, overwriting any previous value.
// Complexity: O(1) amortized.
func (r *Registry) Set(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
}

// Get returns the value stored under key and whether it was present.
// Complexity: O(1).
func (r *Registry) Get(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]

	return v, ok
}

// Len returns the number of stored keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.values)
}
