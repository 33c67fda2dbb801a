package repository

import (
	"context"
	"sync"

	"github.com/worklifedesks/kv"
	"github.com/worklifedesks/model"
)

// Users holds the single account owner, their profile and online
// status. The workspace is single-tenant; there is exactly one user.
type Users struct {
	store kv.Store

	mu      sync.RWMutex
	current *model.User
	profile *model.Profile
	online  bool
}

func NewUsers(store kv.Store) *Users {
	return &Users{store: store}
}

func (r *Users) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var u model.User
	if err := load(ctx, r.store, KeyCurrentUser, &u); err == nil && u.Email != "" {
		r.current = &u
	}

	var p model.Profile
	if err := load(ctx, r.store, KeyUserProfile, &p); err == nil {
		r.profile = &p
	}

	var online bool
	if err := load(ctx, r.store, KeyUserOnlineStatus, &online); err == nil {
		r.online = online
	}
}

// Current returns the account owner, or nil before onboarding finishes.
func (r *Users) Current() *model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return nil
	}
	u := *r.current
	return &u
}

func (r *Users) SetCurrent(ctx context.Context, u model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = &u
	persist(ctx, r.store, KeyCurrentUser, u)
}

// Profile returns the saved profile, or the defaults derived from the
// current user when nothing was ever saved.
func (r *Users) Profile() model.Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.profile != nil {
		return *r.profile
	}
	return model.DefaultProfile(r.current)
}

func (r *Users) SetProfile(ctx context.Context, p model.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = &p
	persist(ctx, r.store, KeyUserProfile, p)
}

func (r *Users) Online() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.online
}

func (r *Users) SetOnline(ctx context.Context, online bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.online = online
	persist(ctx, r.store, KeyUserOnlineStatus, online)
}
