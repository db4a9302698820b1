package hashing

import (
	"sync"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// Registry memoizes hashers by board dimension. It is safe for concurrent
// use; hashers handed out are read-only.
type Registry struct {
	hashers map[chess.Dimension]*Hasher
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		hashers: make(map[chess.Dimension]*Hasher),
	}
}

// Get returns the hasher for dim, building it on first request.
func (r *Registry) Get(dim chess.Dimension) *Hasher {
	r.mu.RLock()
	h, ok := r.hashers[dim]
	r.mu.RUnlock()
	if ok {
		return h
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.hashers[dim]; ok {
		return h
	}
	h = Build(dim)
	r.hashers[dim] = h
	return h
}

// Len returns the number of dimensions with a built hasher.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hashers)
}
