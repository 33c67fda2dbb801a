package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/worklifedesks/model"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{30, "30m"},
		{59, "59m"},
		{60, "1h 0m"},
		{90, "1h 30m"},
		{120, "2h 0m"},
		{125, "2h 5m"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestBuildDailyReport(t *testing.T) {
	now := time.Date(2026, time.March, 2, 15, 0, 0, 0, time.UTC)
	tasks := []model.DailyTask{
		{
			ID: "t1", Title: "Write launch checklist", Status: model.StatusDone,
			TimeSpent: 120, Priority: model.PriorityHigh, Tags: []string{"Planning", "Launch"},
		},
		{
			ID: "t2", Title: "Review design mockups", Status: model.StatusDone,
			TimeSpent: 90, Priority: model.PriorityMid, Tags: []string{"Design"},
		},
		{
			ID: "t3", Title: "Refactor onboarding flow", Status: model.StatusInProgress,
			TimeSpent: 30, Priority: model.PriorityHigh,
		},
		{
			ID: "t4", Title: "Update team wiki", Status: model.StatusToDo,
			DueDate: "2026-03-05", Priority: model.PriorityLow,
		},
	}

	report := BuildDailyReport(tasks, now)

	wantFragments := []string{
		"DAILY WORK REPORT",
		"Monday, March 2, 2026",
		"- Total Tasks: 4",
		"- Completed: 2",
		"- In Progress: 1",
		"- To Do: 1",
		"- Total Time Tracked: 4h 0m",
		"  ✓ Write launch checklist",
		"    Time Spent: 2h 0m",
		"    Tags: Planning, Launch",
		"  ✓ Review design mockups",
		"    Time Spent: 1h 30m",
		"  • Refactor onboarding flow",
		"    Time Spent: 30m",
		"  ○ Update team wiki",
		"    Due: 3/5/2026",
		"    Priority: Low",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(report, frag) {
			t.Errorf("report missing %q\nreport:\n%s", frag, report)
		}
	}

	if !strings.HasPrefix(report, "\n=================================\nDAILY WORK REPORT\n") {
		t.Error("report header has wrong shape")
	}
	if !strings.HasSuffix(report, "=================================\n") {
		t.Error("report is missing closing divider")
	}
}

func TestBuildDailyReportPlaceholders(t *testing.T) {
	report := BuildDailyReport(nil, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))

	for _, placeholder := range []string{
		"  No tasks completed today",
		"  No tasks in progress",
		"  No pending tasks",
	} {
		if !strings.Contains(report, placeholder) {
			t.Errorf("report missing placeholder %q", placeholder)
		}
	}
	if !strings.Contains(report, "- Total Time Tracked: 0m") {
		t.Error("empty report should track 0m")
	}
}

func TestReportFilename(t *testing.T) {
	svc := &ReportService{
		now: func() time.Time { return time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC) },
	}
	if got, want := svc.Filename(), "daily-report-2026-03-02.txt"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}
