package repository

import (
	"context"
	"sync"
	"time"

	"github.com/worklifedesks/kv"
	"github.com/worklifedesks/model"
)

// Sessions holds active login sessions, mirrored under a single key
// like every other collection.
type Sessions struct {
	store kv.Store

	mu    sync.RWMutex
	items []model.Session
}

func NewSessions(store kv.Store) *Sessions {
	return &Sessions{store: store}
}

func (r *Sessions) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var items []model.Session
	if err := load(ctx, r.store, KeySessions, &items); err != nil {
		items = nil
	}
	r.items = items
}

func (r *Sessions) Add(ctx context.Context, s model.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, s)
	persist(ctx, r.store, KeySessions, r.items)
}

func (r *Sessions) Get(sessionID string) (model.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.items {
		if s.SessionID == sessionID {
			return s, true
		}
	}
	return model.Session{}, false
}

// Touch refreshes the session's last activity timestamp.
func (r *Sessions) Touch(ctx context.Context, sessionID string, at time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].SessionID == sessionID {
			r.items[i].LastActivityAt = at
			persist(ctx, r.store, KeySessions, r.items)
			return true
		}
	}
	return false
}

// End deactivates the session without deleting its record.
func (r *Sessions) End(ctx context.Context, sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].SessionID == sessionID {
			r.items[i].IsActive = false
			persist(ctx, r.store, KeySessions, r.items)
			return true
		}
	}
	return false
}

// Prune drops sessions that expired or went inactive before cutoff.
func (r *Sessions) Prune(ctx context.Context, now time.Time, inactivity time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	dropped := 0
	for _, s := range r.items {
		expired := now.After(s.ExpiresAt)
		idle := now.Sub(s.LastActivityAt) > inactivity
		if expired || idle || !s.IsActive {
			dropped++
			continue
		}
		kept = append(kept, s)
	}
	if dropped > 0 {
		r.items = kept
		persist(ctx, r.store, KeySessions, r.items)
	}
	return dropped
}
