package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/worklifedesks/model"
	"github.com/worklifedesks/repository"
	"github.com/worklifedesks/utils"
)

// FormatMinutes renders a minute count as "2h 5m", dropping the hour
// part entirely when it is zero ("45m").
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// ReportService renders the plain-text daily report.
type ReportService struct {
	tasks *repository.DailyTasks
	now   func() time.Time
}

func NewReportService(tasks *repository.DailyTasks) *ReportService {
	return &ReportService{tasks: tasks, now: time.Now}
}

// Filename returns the download name for today's report.
func (svc *ReportService) Filename() string {
	return "daily-report-" + svc.now().Format("2006-01-02") + ".txt"
}

// Daily builds the report over the full task collection.
func (svc *ReportService) Daily() string {
	defer utils.TrackReportGenerated()
	return BuildDailyReport(svc.tasks.All(), svc.now())
}

// BuildDailyReport renders the report text for the given tasks as of
// the given time.
func BuildDailyReport(tasks []model.DailyTask, now time.Time) string {
	var completed, inProgress, toDo []model.DailyTask
	totalTime := 0
	for _, t := range tasks {
		totalTime += t.TimeSpent
		switch t.Status {
		case model.StatusDone:
			completed = append(completed, t)
		case model.StatusInProgress:
			inProgress = append(inProgress, t)
		case model.StatusToDo:
			toDo = append(toDo, t)
		}
	}

	completedSection := joinOr(mapTasks(completed, func(t model.DailyTask) string {
		return fmt.Sprintf("\n  ✓ %s\n    Time Spent: %s\n    Priority: %s\n    Tags: %s\n",
			t.Title, FormatMinutes(t.TimeSpent), t.Priority, strings.Join(t.Tags, ", "))
	}), "  No tasks completed today")

	inProgressSection := joinOr(mapTasks(inProgress, func(t model.DailyTask) string {
		return fmt.Sprintf("\n  • %s\n    Time Spent: %s\n    Priority: %s\n",
			t.Title, FormatMinutes(t.TimeSpent), t.Priority)
	}), "  No tasks in progress")

	toDoSection := joinOr(mapTasks(toDo, func(t model.DailyTask) string {
		return fmt.Sprintf("\n  ○ %s\n    Due: %s\n    Priority: %s\n",
			t.Title, formatDueDate(t.DueDate), t.Priority)
	}), "  No pending tasks")

	var b strings.Builder
	fmt.Fprintf(&b, "\n=================================\nDAILY WORK REPORT\n%s\n=================================\n\n",
		now.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "SUMMARY:\n- Total Tasks: %d\n- Completed: %d\n- In Progress: %d\n- To Do: %d\n- Total Time Tracked: %s\n\n",
		len(tasks), len(completed), len(inProgress), len(toDo), FormatMinutes(totalTime))
	fmt.Fprintf(&b, "COMPLETED TASKS:\n%s\n\n", completedSection)
	fmt.Fprintf(&b, "IN PROGRESS TASKS:\n%s\n\n", inProgressSection)
	fmt.Fprintf(&b, "NEXT ACTIONS:\n%s\n\n", toDoSection)
	b.WriteString("=================================\n")
	return b.String()
}

func mapTasks(tasks []model.DailyTask, render func(model.DailyTask) string) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, render(t))
	}
	return out
}

func joinOr(items []string, placeholder string) string {
	if len(items) == 0 {
		return placeholder
	}
	return strings.Join(items, "\n")
}

func formatDueDate(iso string) string {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return d.Format("1/2/2006")
}
