package usecase

import (
	"context"

	"github.com/worklifedesks/model"
	"github.com/worklifedesks/repository"
	"github.com/worklifedesks/utils"
)

// StatsService assembles the workspace stats endpoint payload.
type StatsService struct {
	monthly   *repository.MonthlyGoals
	weekly    *repository.WeeklyGoals
	tasks     *repository.DailyTasks
	employees *repository.Employees
}

func NewStatsService(monthly *repository.MonthlyGoals, weekly *repository.WeeklyGoals, tasks *repository.DailyTasks, employees *repository.Employees) *StatsService {
	return &StatsService{monthly: monthly, weekly: weekly, tasks: tasks, employees: employees}
}

func (svc *StatsService) Collect(ctx context.Context) model.WorkspaceStats {
	var stats model.WorkspaceStats

	monthly := svc.monthly.All()
	stats.GoalStats.Monthly = len(monthly)
	stats.GoalStats.Weekly = len(svc.weekly.All())
	for _, g := range monthly {
		if g.Completed {
			stats.GoalStats.Completed++
		}
		switch g.EffectiveStatus() {
		case model.GoalStatusInProgress:
			stats.GoalStats.InProgress++
		case model.GoalStatusOnTrack:
			stats.GoalStats.OnTrack++
		case model.GoalStatusAtRisk:
			stats.GoalStats.AtRisk++
		}
	}

	for _, t := range svc.tasks.All() {
		stats.TaskStats.Total++
		stats.TaskStats.TotalTimeMinutes += t.TimeSpent
		switch t.Status {
		case model.StatusDone:
			stats.TaskStats.Completed++
		case model.StatusInProgress:
			stats.TaskStats.InProgress++
		case model.StatusToDo:
			stats.TaskStats.ToDo++
		}
		switch t.Priority {
		case model.PriorityHigh:
			stats.TaskStats.HighPriority++
		case model.PriorityMid:
			stats.TaskStats.MidPriority++
		case model.PriorityLow:
			stats.TaskStats.LowPriority++
		}
		if t.Starred {
			stats.TaskStats.Starred++
		}
	}

	stats.EmployeeCount = len(svc.employees.All())

	stats.System.CPUUsagePercent = utils.GetCPUUsage()
	stats.System.MemoryUsedMB = utils.GetMemoryUsedMB()

	return stats
}
