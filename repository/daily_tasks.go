package repository

import (
	"context"
	"sync"
	"time"

	"github.com/worklifedesks/kv"
	"github.com/worklifedesks/model"
	"github.com/worklifedesks/utils"
)

// DailyTasks holds the daily task collection.
type DailyTasks struct {
	store kv.Store
	ids   utils.IDGenerator
	now   func() time.Time

	mu    sync.RWMutex
	items []model.DailyTask
}

func NewDailyTasks(store kv.Store, ids utils.IDGenerator) *DailyTasks {
	return &DailyTasks{store: store, ids: ids, now: time.Now}
}

// Load hydrates the collection, falling back to the template tasks when
// the snapshot is missing, malformed or empty.
func (r *DailyTasks) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var items []model.DailyTask
	err := load(ctx, r.store, KeyDailyTasks, &items)
	if err != nil || len(items) == 0 {
		items = templateDailyTasks(r.now())
		persist(ctx, r.store, KeyDailyTasks, items)
	}
	r.items = items
}

func (r *DailyTasks) All() []model.DailyTask {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.DailyTask, len(r.items))
	copy(out, r.items)
	return out
}

func (r *DailyTasks) Get(id string) (model.DailyTask, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.items {
		if t.ID == id {
			return t, true
		}
	}
	return model.DailyTask{}, false
}

func (r *DailyTasks) Add(ctx context.Context, t model.DailyTask) model.DailyTask {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.ids.NewID()
	r.items = append(r.items, t)
	persist(ctx, r.store, KeyDailyTasks, r.items)
	return t
}

// Update merges the patch into the task with the given id. Unknown ids
// are silent no-ops.
func (r *DailyTasks) Update(ctx context.Context, id string, patch model.DailyTaskPatch) (model.DailyTask, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			patch.Apply(&r.items[i])
			persist(ctx, r.store, KeyDailyTasks, r.items)
			return r.items[i], true
		}
	}
	return model.DailyTask{}, false
}

// Mutate runs fn over the whole collection under the write lock and
// mirrors the result. Toggle and time-tracking transitions touch more
// than one task at once, so they go through here.
func (r *DailyTasks) Mutate(ctx context.Context, fn func(tasks []model.DailyTask) []model.DailyTask) []model.DailyTask {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = fn(r.items)
	persist(ctx, r.store, KeyDailyTasks, r.items)
	out := make([]model.DailyTask, len(r.items))
	copy(out, r.items)
	return out
}

func (r *DailyTasks) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			persist(ctx, r.store, KeyDailyTasks, r.items)
			return true
		}
	}
	return false
}
