// Package session holds the auth state shared between the API client, which
// reads the bearer token on every request, and the session store in
// services, which is the only writer.
package session

import (
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Holder is safe for concurrent use.
type Holder struct {
	mu sync.RWMutex
	s  models.Session
}

func NewHolder() *Holder {
	return &Holder{}
}

// Token returns the bearer token, or "" when logged out.
func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.s.Token
}

func (h *Holder) Get() models.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.s
}

func (h *Holder) Set(s models.Session) {
	h.mu.Lock()
	h.s = s
	h.mu.Unlock()
}

func (h *Holder) Clear() {
	h.Set(models.Session{})
}
