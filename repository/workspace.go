package repository

import (
	"context"
	"sync"

	"github.com/worklifedesks/kv"
)

// Workspace holds the dashboard's auxiliary state: per-employee mode,
// scratch data and notes maps, plus three freeform text blocks.
type Workspace struct {
	store kv.Store

	mu               sync.RWMutex
	employeeModes    map[string]string
	employeeData     map[string]string
	employeeNotes    map[string]string
	monthlyObjective string
	workflowAudit    string
	keyMetrics       string
}

func NewWorkspace(store kv.Store) *Workspace {
	return &Workspace{
		store:         store,
		employeeModes: map[string]string{},
		employeeData:  map[string]string{},
		employeeNotes: map[string]string{},
	}
}

func (r *Workspace) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	loadMap := func(key string) map[string]string {
		m := map[string]string{}
		if err := load(ctx, r.store, key, &m); err != nil || m == nil {
			m = map[string]string{}
		}
		return m
	}
	r.employeeModes = loadMap(KeyEmployeeModes)
	r.employeeData = loadMap(KeyEmployeeData)
	r.employeeNotes = loadMap(KeyEmployeeNotes)

	loadText := func(key string) string {
		var s string
		if err := load(ctx, r.store, key, &s); err != nil {
			return ""
		}
		return s
	}
	r.monthlyObjective = loadText(KeyMonthlyObjective)
	r.workflowAudit = loadText(KeyWorkflowAudit)
	r.keyMetrics = loadText(KeyKeyMetrics)
}

func (r *Workspace) EmployeeModes() map[string]string {
	return r.copyMap(&r.employeeModes)
}

func (r *Workspace) EmployeeData() map[string]string {
	return r.copyMap(&r.employeeData)
}

func (r *Workspace) EmployeeNotes() map[string]string {
	return r.copyMap(&r.employeeNotes)
}

func (r *Workspace) copyMap(src *map[string]string) map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(*src))
	for k, v := range *src {
		out[k] = v
	}
	return out
}

func (r *Workspace) SetEmployeeMode(ctx context.Context, employeeID, mode string) {
	r.setMapEntry(ctx, KeyEmployeeModes, &r.employeeModes, employeeID, mode)
}

func (r *Workspace) SetEmployeeData(ctx context.Context, employeeID, data string) {
	r.setMapEntry(ctx, KeyEmployeeData, &r.employeeData, employeeID, data)
}

func (r *Workspace) SetEmployeeNote(ctx context.Context, employeeID, note string) {
	r.setMapEntry(ctx, KeyEmployeeNotes, &r.employeeNotes, employeeID, note)
}

func (r *Workspace) setMapEntry(ctx context.Context, key string, m *map[string]string, id, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	(*m)[id] = value
	persist(ctx, r.store, key, *m)
}

func (r *Workspace) MonthlyObjective() string { return r.text(&r.monthlyObjective) }
func (r *Workspace) WorkflowAudit() string    { return r.text(&r.workflowAudit) }
func (r *Workspace) KeyMetrics() string       { return r.text(&r.keyMetrics) }

func (r *Workspace) text(s *string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return *s
}

func (r *Workspace) SetMonthlyObjective(ctx context.Context, v string) {
	r.setText(ctx, KeyMonthlyObjective, &r.monthlyObjective, v)
}

func (r *Workspace) SetWorkflowAudit(ctx context.Context, v string) {
	r.setText(ctx, KeyWorkflowAudit, &r.workflowAudit, v)
}

func (r *Workspace) SetKeyMetrics(ctx context.Context, v string) {
	r.setText(ctx, KeyKeyMetrics, &r.keyMetrics, v)
}

func (r *Workspace) setText(ctx context.Context, key string, dst *string, v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*dst = v
	persist(ctx, r.store, key, v)
}
