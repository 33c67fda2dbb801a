package usecase

import (
	"context"
	"errors"

	"github.com/worklifedesks/model"
	"github.com/worklifedesks/repository"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeesService owns the roster.
type EmployeesService struct {
	repo *repository.Employees
}

func NewEmployeesService(repo *repository.Employees) *EmployeesService {
	return &EmployeesService{repo: repo}
}

// Roster returns the saved employees, or the demo roster when nothing
// was ever saved. The demo flag tells callers the list is display-only
// fallback data that was never persisted.
func (svc *EmployeesService) Roster(ctx context.Context) ([]model.Employee, bool) {
	items := svc.repo.All()
	if len(items) == 0 {
		return repository.DemoEmployees(), true
	}
	return items, false
}

func (svc *EmployeesService) Get(ctx context.Context, id string) (model.Employee, error) {
	e, ok := svc.repo.Get(id)
	if !ok {
		return model.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (svc *EmployeesService) Add(ctx context.Context, e model.Employee) (model.Employee, error) {
	if e.Name == "" {
		return model.Employee{}, errors.New("employee name is required")
	}
	return svc.repo.Add(ctx, e), nil
}

// SetAll replaces the roster, used when onboarding submits the whole
// list at once.
func (svc *EmployeesService) SetAll(ctx context.Context, items []model.Employee) ([]model.Employee, error) {
	for _, e := range items {
		if e.Name == "" {
			return nil, errors.New("employee name is required")
		}
	}
	return svc.repo.SetAll(ctx, items), nil
}

func (svc *EmployeesService) Update(ctx context.Context, id string, patch model.EmployeePatch) (model.Employee, error) {
	if patch.Name != nil && *patch.Name == "" {
		return model.Employee{}, errors.New("employee name cannot be empty")
	}
	e, ok := svc.repo.Update(ctx, id, patch)
	if !ok {
		return model.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (svc *EmployeesService) Delete(ctx context.Context, id string) error {
	if !svc.repo.Delete(ctx, id) {
		return ErrEmployeeNotFound
	}
	return nil
}
