// Package usecase implements the workspace's business rules on top of
// the repository collections: goal decomposition, progress roll-ups,
// task time tracking and the daily report.
package usecase

import (
	"math"

	"github.com/worklifedesks/model"
)

// WeeklyProgress is the computed progress view of one weekly goal.
type WeeklyProgress struct {
	ID            string `json:"id"`
	MonthlyGoalID string `json:"monthlyGoalId"`
	GoalTitle     string `json:"goalTitle"`
	Progress      int    `json:"progress"`
}

// TargetProgress is the computed progress view of one target.
type TargetProgress struct {
	TargetID   string `json:"targetId"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// WeeklyGoalProgress returns the percentage of Done tasks among those
// linked to the goal, rounded half up. No linked tasks means 0.
func WeeklyGoalProgress(goal model.WeeklyGoal, tasks []model.DailyTask) int {
	var linked, done int
	for _, t := range tasks {
		if t.WeeklyGoalID != goal.ID {
			continue
		}
		linked++
		if t.Status == model.StatusDone {
			done++
		}
	}
	if linked == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(linked) * 100))
}

// TargetTaskProgress counts done vs total tasks linked to one target of
// a weekly goal.
func TargetTaskProgress(goalID, targetID string, tasks []model.DailyTask) TargetProgress {
	p := TargetProgress{TargetID: targetID}
	for _, t := range tasks {
		if t.WeeklyGoalID != goalID || t.TargetID != targetID {
			continue
		}
		p.Total++
		if t.Status == model.StatusDone {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}

// WeeklyProgressSummaries computes the progress view for every weekly
// goal, in collection order.
func WeeklyProgressSummaries(goals []model.WeeklyGoal, tasks []model.DailyTask) []WeeklyProgress {
	out := make([]WeeklyProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, WeeklyProgress{
			ID:            g.ID,
			MonthlyGoalID: g.MonthlyGoalID,
			GoalTitle:     g.GoalTitle,
			Progress:      WeeklyGoalProgress(g, tasks),
		})
	}
	return out
}

// MonthlyGoalProgress averages the already-rounded weekly percentages
// of the goals linked to the monthly goal, then rounds again. Rounding
// happens twice, once per weekly goal and once across them. No linked
// weekly goals means 0.
func MonthlyGoalProgress(monthlyGoalID string, weekly []WeeklyProgress) int {
	var sum, n int
	for _, w := range weekly {
		if w.MonthlyGoalID != monthlyGoalID {
			continue
		}
		sum += w.Progress
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}
