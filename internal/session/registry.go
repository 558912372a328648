package session

import (
	"sort"
	"sync"
)

// Registry holds the document sessions known to the generation service.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*FileSession
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*FileSession)}
}

// Add registers s and returns its id.
func (r *Registry) Add(s *FileSession) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
	return s.ID()
}

// Get looks up a session by id.
func (r *Registry) Get(id string) (*FileSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Remove drops a session. Unknown ids are ignored.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns all sessions ordered by file name, then id.
func (r *Registry) List() []*FileSession {
	r.mu.RLock()
	out := make([]*FileSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].fileName != out[j].fileName {
			return out[i].fileName < out[j].fileName
		}
		return out[i].id < out[j].id
	})
	return out
}
