package repository

import (
	"context"
	"sync"

	"github.com/worklifedesks/kv"
	"github.com/worklifedesks/model"
	"github.com/worklifedesks/utils"
)

// Employees holds the roster collection. Unlike goals and tasks it has
// no template seed; an empty roster is a valid state and the dashboard
// falls back to the demo roster for display only.
type Employees struct {
	store kv.Store
	ids   utils.IDGenerator

	mu    sync.RWMutex
	items []model.Employee
}

func NewEmployees(store kv.Store, ids utils.IDGenerator) *Employees {
	return &Employees{store: store, ids: ids}
}

func (r *Employees) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var items []model.Employee
	if err := load(ctx, r.store, KeyEmployees, &items); err != nil {
		items = nil
	}
	r.items = items
}

func (r *Employees) All() []model.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Employee, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Employees) Get(id string) (model.Employee, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.items {
		if e.ID == id {
			return e, true
		}
	}
	return model.Employee{}, false
}

func (r *Employees) Add(ctx context.Context, e model.Employee) model.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.ids.NewID()
	r.items = append(r.items, e)
	persist(ctx, r.store, KeyEmployees, r.items)
	return e
}

// SetAll replaces the whole roster, assigning ids where missing. Used
// by onboarding, which submits the roster in one shot.
func (r *Employees) SetAll(ctx context.Context, items []model.Employee) []model.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = r.ids.NewID()
		}
	}
	r.items = items
	persist(ctx, r.store, KeyEmployees, r.items)
	out := make([]model.Employee, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Employees) Update(ctx context.Context, id string, patch model.EmployeePatch) (model.Employee, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			patch.Apply(&r.items[i])
			persist(ctx, r.store, KeyEmployees, r.items)
			return r.items[i], true
		}
	}
	return model.Employee{}, false
}

func (r *Employees) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			persist(ctx, r.store, KeyEmployees, r.items)
			return true
		}
	}
	return false
}
