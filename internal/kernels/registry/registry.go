// Package registry holds the axpby/rot kernel backends.
//
// Several backends (generic, vecmath, fma) can coexist. Each registers itself
// from an init() function, and blas1 asks the registry for the
// highest-priority backend the current CPU supports, or for a backend by
// name when the caller pins one.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-blas/internal/cpu"
	"github.com/cwbudde/algo-blas/internal/kernels"
	"github.com/cwbudde/algo-blas/view"
)

// Entry is one registered backend.
type Entry struct {
	// Name identifies the backend (e.g., "generic", "fma").
	Name string

	// SIMDLevel is the CPU capability the backend needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible backends; higher wins. Suggested values:
	//   - generic: 0
	//   - vecmath: 10
	//   - fma: 20
	Priority int

	// Float64 and Float32 are the kernel tables per element type.
	Float64 *kernels.Set[float64]
	Float32 *kernels.Set[float32]
}

// Registry manages registration and lookup of backends.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool // entries sorted by descending priority
}

// Global is the registry used by blas1.
var Global = &Registry{}

// Register adds a backend. Registering a name twice replaces the earlier
// entry.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Name == entry.Name {
			r.entries[i] = entry
			r.sorted = false
			return
		}
	}
	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority backend compatible with features, or
// nil if none is (which only happens when generic is not registered).
func (r *Registry) Lookup(features cpu.Features) *Entry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return &entry
		}
	}
	return nil
}

// LookupName returns the backend registered under name.
func (r *Registry) LookupName(name string) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			entry := r.entries[i]
			return &entry
		}
	}
	return nil
}

func (r *Registry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
}

// sortByPriority sorts entries by descending priority. Must be called with
// r.mu held for writing.
func (r *Registry) sortByPriority() {
	// Insertion sort; there are only a handful of backends.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all entries sorted by priority.
func (r *Registry) ListEntries() []Entry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset removes every entry. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

// SetFor returns the kernel table of entry for element type T.
func SetFor[T view.Scalar](entry *Entry) *kernels.Set[T] {
	if entry == nil {
		return nil
	}
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(entry.Float64).(*kernels.Set[T])
	case float32:
		return any(entry.Float32).(*kernels.Set[T])
	default:
		return nil
	}
}
