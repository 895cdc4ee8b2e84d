package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry maps opaque session tokens to their absolute expiry instants.
//
// Two quirks are kept on purpose, matching the documented login behaviour:
//   - Create grants a 30-minute window but every successful Verify resets it
//     to only 2 minutes, so a session idle for more than 2 minutes between
//     checks dies early even though the cookie max-age promises 30.
//   - Expired entries are removed only when a Verify happens to touch them.
//     Tokens that are never re-checked stay in the map until process exit.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]time.Time

	ttl        time.Duration
	refreshTTL time.Duration

	now func() time.Time // overridable in tests
}

func NewRegistry(ttl, refreshTTL time.Duration) *Registry {
	return &Registry{
		sessions:   make(map[string]time.Time),
		ttl:        ttl,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Create issues a fresh token and registers it with the full initial TTL.
func (r *Registry) Create() (string, time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := uuid.NewString()
	expiry := r.now().Add(r.ttl)
	r.sessions[token] = expiry
	return token, expiry
}

// Verify reports whether the token names a live session. A live session has
// its expiry slid forward by the refresh TTL; a dead one is deleted on the
// spot. The returned time is the post-refresh expiry when valid.
func (r *Registry) Verify(token string) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiry, ok := r.sessions[token]
	if !ok {
		return time.Time{}, false
	}
	now := r.now()
	if now.Before(expiry) {
		refreshed := now.Add(r.refreshTTL)
		r.sessions[token] = refreshed
		return refreshed, true
	}
	delete(r.sessions, token)
	return time.Time{}, false
}

// Len reports the number of registered sessions, expired leftovers included.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
