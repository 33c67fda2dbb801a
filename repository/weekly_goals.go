package repository

import (
	"context"
	"sync"

	"github.com/worklifedesks/kv"
	"github.com/worklifedesks/model"
	"github.com/worklifedesks/utils"
)

// WeeklyGoals holds the weekly goal collection, targets embedded.
type WeeklyGoals struct {
	store kv.Store
	ids   utils.IDGenerator

	mu    sync.RWMutex
	items []model.WeeklyGoal
}

func NewWeeklyGoals(store kv.Store, ids utils.IDGenerator) *WeeklyGoals {
	return &WeeklyGoals{store: store, ids: ids}
}

// Load hydrates the collection, falling back to the template goals when
// the snapshot is missing, malformed or empty.
func (r *WeeklyGoals) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var items []model.WeeklyGoal
	err := load(ctx, r.store, KeyWeeklyGoals, &items)
	if err != nil || len(items) == 0 {
		items = templateWeeklyGoals()
		persist(ctx, r.store, KeyWeeklyGoals, items)
	}
	r.items = items
}

func (r *WeeklyGoals) All() []model.WeeklyGoal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.WeeklyGoal, len(r.items))
	copy(out, r.items)
	return out
}

func (r *WeeklyGoals) Get(id string) (model.WeeklyGoal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.items {
		if g.ID == id {
			return g, true
		}
	}
	return model.WeeklyGoal{}, false
}

// ByMonthlyGoal returns the weekly goals linked to a monthly goal, in
// insertion order.
func (r *WeeklyGoals) ByMonthlyGoal(monthlyGoalID string) []model.WeeklyGoal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.WeeklyGoal
	for _, g := range r.items {
		if g.MonthlyGoalID == monthlyGoalID {
			out = append(out, g)
		}
	}
	return out
}

// Add assigns ids to the goal and any targets missing one.
func (r *WeeklyGoals) Add(ctx context.Context, g model.WeeklyGoal) model.WeeklyGoal {
	r.mu.Lock()
	defer r.mu.Unlock()
	g.ID = r.ids.NewID()
	for i := range g.Targets {
		if g.Targets[i].ID == "" {
			g.Targets[i].ID = r.ids.NewID()
		}
	}
	r.items = append(r.items, g)
	persist(ctx, r.store, KeyWeeklyGoals, r.items)
	return g
}

// Replace swaps in a full goal value by id, keeping its position.
func (r *WeeklyGoals) Replace(ctx context.Context, g model.WeeklyGoal) (model.WeeklyGoal, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == g.ID {
			r.items[i] = g
			persist(ctx, r.store, KeyWeeklyGoals, r.items)
			return g, true
		}
	}
	return model.WeeklyGoal{}, false
}

// SetTargetCompleted flips a target's completion flag. Unknown goal or
// target ids are silent no-ops.
func (r *WeeklyGoals) SetTargetCompleted(ctx context.Context, goalID, targetID string, completed bool) (model.WeeklyGoal, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != goalID {
			continue
		}
		t := r.items[i].FindTarget(targetID)
		if t == nil {
			return model.WeeklyGoal{}, false
		}
		t.Completed = completed
		persist(ctx, r.store, KeyWeeklyGoals, r.items)
		return r.items[i], true
	}
	return model.WeeklyGoal{}, false
}

// Reset blanks the goal title and target contents while keeping target
// ids stable, so linked tasks stay linked.
func (r *WeeklyGoals) Reset(ctx context.Context, id string) (model.WeeklyGoal, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Reset()
			persist(ctx, r.store, KeyWeeklyGoals, r.items)
			return r.items[i], true
		}
	}
	return model.WeeklyGoal{}, false
}

// Delete removes a weekly goal. Tasks linked to it are untouched.
func (r *WeeklyGoals) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			persist(ctx, r.store, KeyWeeklyGoals, r.items)
			return true
		}
	}
	return false
}
