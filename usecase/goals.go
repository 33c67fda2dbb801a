package usecase

import (
	"context"
	"errors"

	"github.com/worklifedesks/model"
	"github.com/worklifedesks/repository"
)

var ErrGoalNotFound = errors.New("goal not found")

// GoalsService owns the monthly and weekly goal lifecycle and the
// progress roll-up across both levels.
type GoalsService struct {
	monthly *repository.MonthlyGoals
	weekly  *repository.WeeklyGoals
	tasks   *repository.DailyTasks
}

func NewGoalsService(monthly *repository.MonthlyGoals, weekly *repository.WeeklyGoals, tasks *repository.DailyTasks) *GoalsService {
	return &GoalsService{monthly: monthly, weekly: weekly, tasks: tasks}
}

func (svc *GoalsService) ListMonthly(ctx context.Context) []model.MonthlyGoal {
	return svc.monthly.All()
}

func (svc *GoalsService) GetMonthly(ctx context.Context, id string) (model.MonthlyGoal, error) {
	g, ok := svc.monthly.Get(id)
	if !ok {
		return model.MonthlyGoal{}, ErrGoalNotFound
	}
	return g, nil
}

func (svc *GoalsService) CreateMonthly(ctx context.Context, g model.MonthlyGoal) (model.MonthlyGoal, error) {
	if g.Title == "" {
		return model.MonthlyGoal{}, errors.New("goal title is required")
	}
	if g.Status == "" {
		g.Status = model.GoalStatusInProgress
	}
	return svc.monthly.Add(ctx, g), nil
}

func (svc *GoalsService) UpdateMonthly(ctx context.Context, id string, patch model.MonthlyGoalPatch) (model.MonthlyGoal, error) {
	if patch.Title != nil && *patch.Title == "" {
		return model.MonthlyGoal{}, errors.New("goal title cannot be empty")
	}
	g, ok := svc.monthly.Update(ctx, id, patch)
	if !ok {
		return model.MonthlyGoal{}, ErrGoalNotFound
	}
	return g, nil
}

// DeleteMonthly removes only the monthly goal. Weekly goals that point
// at it keep their link and simply stop contributing to any roll-up.
func (svc *GoalsService) DeleteMonthly(ctx context.Context, id string) error {
	if !svc.monthly.Delete(ctx, id) {
		return ErrGoalNotFound
	}
	return nil
}

func (svc *GoalsService) ListWeekly(ctx context.Context) []model.WeeklyGoal {
	return svc.weekly.All()
}

func (svc *GoalsService) GetWeekly(ctx context.Context, id string) (model.WeeklyGoal, error) {
	g, ok := svc.weekly.Get(id)
	if !ok {
		return model.WeeklyGoal{}, ErrGoalNotFound
	}
	return g, nil
}

func (svc *GoalsService) CreateWeekly(ctx context.Context, g model.WeeklyGoal) (model.WeeklyGoal, error) {
	if g.GoalTitle == "" {
		return model.WeeklyGoal{}, errors.New("goal title is required")
	}
	return svc.weekly.Add(ctx, g), nil
}

func (svc *GoalsService) ReplaceWeekly(ctx context.Context, g model.WeeklyGoal) (model.WeeklyGoal, error) {
	updated, ok := svc.weekly.Replace(ctx, g)
	if !ok {
		return model.WeeklyGoal{}, ErrGoalNotFound
	}
	return updated, nil
}

func (svc *GoalsService) ToggleTarget(ctx context.Context, goalID, targetID string) (model.WeeklyGoal, error) {
	g, ok := svc.weekly.Get(goalID)
	if !ok {
		return model.WeeklyGoal{}, ErrGoalNotFound
	}
	t := g.FindTarget(targetID)
	if t == nil {
		return model.WeeklyGoal{}, errors.New("target not found")
	}
	updated, _ := svc.weekly.SetTargetCompleted(ctx, goalID, targetID, !t.Completed)
	return updated, nil
}

func (svc *GoalsService) ResetWeekly(ctx context.Context, id string) (model.WeeklyGoal, error) {
	g, ok := svc.weekly.Reset(ctx, id)
	if !ok {
		return model.WeeklyGoal{}, ErrGoalNotFound
	}
	return g, nil
}

func (svc *GoalsService) DeleteWeekly(ctx context.Context, id string) error {
	if !svc.weekly.Delete(ctx, id) {
		return ErrGoalNotFound
	}
	return nil
}

// MonthlyProgressEntry pairs a monthly goal with its rolled-up
// percentage.
type MonthlyProgressEntry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Progress int    `json:"progress"`
}

// ProgressReport is the full dashboard roll-up in one shot.
type ProgressReport struct {
	Weekly  []WeeklyProgress       `json:"weekly"`
	Monthly []MonthlyProgressEntry `json:"monthly"`
	Targets []TargetProgress       `json:"targets"`
}

// Progress computes weekly, target and monthly progress over the
// current collections.
func (svc *GoalsService) Progress(ctx context.Context) ProgressReport {
	tasks := svc.tasks.All()
	weeklyGoals := svc.weekly.All()

	report := ProgressReport{
		Weekly: WeeklyProgressSummaries(weeklyGoals, tasks),
	}
	for _, g := range weeklyGoals {
		for _, t := range g.Targets {
			report.Targets = append(report.Targets, TargetTaskProgress(g.ID, t.ID, tasks))
		}
	}
	for _, m := range svc.monthly.All() {
		report.Monthly = append(report.Monthly, MonthlyProgressEntry{
			ID:       m.ID,
			Title:    m.Title,
			Progress: MonthlyGoalProgress(m.ID, report.Weekly),
		})
	}
	return report
}
