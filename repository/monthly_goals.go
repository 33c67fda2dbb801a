package repository

import (
	"context"
	"sync"
	"time"

	"github.com/worklifedesks/kv"
	"github.com/worklifedesks/model"
	"github.com/worklifedesks/utils"
)

// MonthlyGoals holds the monthly goal collection. Reads and writes go
// through the in-memory slice; the store only mirrors it.
type MonthlyGoals struct {
	store kv.Store
	ids   utils.IDGenerator
	now   func() time.Time

	mu    sync.RWMutex
	items []model.MonthlyGoal
}

func NewMonthlyGoals(store kv.Store, ids utils.IDGenerator) *MonthlyGoals {
	return &MonthlyGoals{store: store, ids: ids, now: time.Now}
}

// Load hydrates the collection from the store. A missing, malformed or
// empty snapshot is replaced with the template goals.
func (r *MonthlyGoals) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var items []model.MonthlyGoal
	err := load(ctx, r.store, KeyMonthlyGoals, &items)
	if err != nil || len(items) == 0 {
		items = templateMonthlyGoals(r.now())
		persist(ctx, r.store, KeyMonthlyGoals, items)
	}
	r.items = items
}

// All returns a copy of the collection in insertion order.
func (r *MonthlyGoals) All() []model.MonthlyGoal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.MonthlyGoal, len(r.items))
	copy(out, r.items)
	return out
}

func (r *MonthlyGoals) Get(id string) (model.MonthlyGoal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.items {
		if g.ID == id {
			return g, true
		}
	}
	return model.MonthlyGoal{}, false
}

// Add assigns an id, appends the goal and mirrors the collection.
func (r *MonthlyGoals) Add(ctx context.Context, g model.MonthlyGoal) model.MonthlyGoal {
	r.mu.Lock()
	defer r.mu.Unlock()
	g.ID = r.ids.NewID()
	r.items = append(r.items, g)
	persist(ctx, r.store, KeyMonthlyGoals, r.items)
	return g
}

// Update merges the patch into the goal with the given id. Updating an
// unknown id is a silent no-op.
func (r *MonthlyGoals) Update(ctx context.Context, id string, patch model.MonthlyGoalPatch) (model.MonthlyGoal, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			patch.Apply(&r.items[i])
			persist(ctx, r.store, KeyMonthlyGoals, r.items)
			return r.items[i], true
		}
	}
	return model.MonthlyGoal{}, false
}

// Delete removes the goal with the given id. Linked weekly goals are
// left in place; deletion never cascades.
func (r *MonthlyGoals) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			persist(ctx, r.store, KeyMonthlyGoals, r.items)
			return true
		}
	}
	return false
}
