package session

import (
	"path/filepath"
	"sync"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
)

// Registry tracks which targets have an open import session.
type Registry struct {
	mu   sync.Mutex
	open map[string]string
}

func NewRegistry() *Registry {
	return &Registry{open: make(map[string]string)}
}

// Open claims target for the session id. It fails with a busy error when
// another session already holds the target.
func (r *Registry) Open(target, id string) error {
	key := registryKey(target)
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.open == nil {
		r.open = make(map[string]string)
	}
	if owner, ok := r.open[key]; ok && owner != id {
		return errdef.New(errdef.CodeBusy, "import session already open for %s", target)
	}
	r.open[key] = id
	return nil
}

// Release frees target if id still owns it.
func (r *Registry) Release(target, id string) {
	key := registryKey(target)
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, ok := r.open[key]; ok && owner == id {
		delete(r.open, key)
	}
}

func (r *Registry) IsOpen(target string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.open[registryKey(target)]
	return ok
}

func registryKey(target string) string {
	if abs, err := filepath.Abs(target); err == nil {
		return abs
	}
	return filepath.Clean(target)
}
