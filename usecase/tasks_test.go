package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/worklifedesks/kv"
	"github.com/worklifedesks/model"
	"github.com/worklifedesks/repository"
	"github.com/worklifedesks/utils"
)

func newTasksService(t *testing.T) (*TasksService, *repository.DailyTasks) {
	t.Helper()
	repo := repository.NewDailyTasks(kv.NewMemory(), &utils.SequenceGenerator{Prefix: "task"})
	return NewTasksService(repo), repo
}

func TestCreateDefaults(t *testing.T) {
	svc, _ := newTasksService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, model.DailyTask{Title: "Prepare standup notes"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.ID == "" {
		t.Error("Create() did not assign an id")
	}
	if created.Priority != model.PriorityMid {
		t.Errorf("default priority = %q, want Mid", created.Priority)
	}
	if created.Status != model.StatusToDo {
		t.Errorf("default status = %q, want To Do", created.Status)
	}

	if _, err := svc.Create(ctx, model.DailyTask{}); err == nil {
		t.Error("Create() with empty title should fail")
	}
	if _, err := svc.Create(ctx, model.DailyTask{Title: "x", Priority: "Urgent"}); err == nil {
		t.Error("Create() with unknown priority should fail")
	}
}

func TestToggle(t *testing.T) {
	svc, repo := newTasksService(t)
	ctx := context.Background()

	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base.Add(45 * time.Minute) }

	started := base
	running := repo.Add(ctx, model.DailyTask{
		Title:       "Fix login flow",
		Status:      model.StatusInProgress,
		Priority:    model.PriorityHigh,
		TimeSpent:   10,
		IsActive:    true,
		ActiveSince: &started,
	})

	// Completing a running task stops tracking and commits elapsed time.
	done, err := svc.Toggle(ctx, running.ID)
	if err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if done.Status != model.StatusDone {
		t.Errorf("status = %q, want Done", done.Status)
	}
	if done.IsActive || done.ActiveSince != nil {
		t.Error("completed task should not be active")
	}
	if done.TimeSpent != 55 {
		t.Errorf("TimeSpent = %d, want 55 (10 committed + 45 elapsed)", done.TimeSpent)
	}

	// Toggling a Done task only reopens it.
	reopened, err := svc.Toggle(ctx, running.ID)
	if err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if reopened.Status != model.StatusToDo {
		t.Errorf("status = %q, want To Do", reopened.Status)
	}
	if reopened.TimeSpent != 55 {
		t.Errorf("TimeSpent changed on reopen: %d", reopened.TimeSpent)
	}

	if _, err := svc.Toggle(ctx, "missing"); err != ErrTaskNotFound {
		t.Errorf("Toggle() on unknown id = %v, want ErrTaskNotFound", err)
	}
}

func TestStartStopSingleActive(t *testing.T) {
	svc, _ := newTasksService(t)
	ctx := context.Background()

	current := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return current }

	first, _ := svc.Create(ctx, model.DailyTask{Title: "Draft OKRs"})
	second, _ := svc.Create(ctx, model.DailyTask{Title: "Review PRs"})

	started, err := svc.StartStop(ctx, first.ID)
	if err != nil {
		t.Fatalf("StartStop() error: %v", err)
	}
	if !started.IsActive || started.Status != model.StatusInProgress {
		t.Errorf("started task = %+v, want active and In Progress", started)
	}
	if started.ActiveSince == nil || !started.ActiveSince.Equal(current) {
		t.Error("ActiveSince not set to the start time")
	}

	// Starting the second task 30 minutes later displaces the first and
	// commits its elapsed time.
	current = current.Add(30 * time.Minute)
	if _, err := svc.StartStop(ctx, second.ID); err != nil {
		t.Fatalf("StartStop() error: %v", err)
	}

	firstNow, _ := svc.Get(ctx, first.ID)
	if firstNow.IsActive {
		t.Error("first task should have been deactivated")
	}
	if firstNow.TimeSpent != 30 {
		t.Errorf("first task TimeSpent = %d, want 30", firstNow.TimeSpent)
	}
	if firstNow.Status != model.StatusInProgress {
		t.Errorf("displaced task status = %q, want In Progress unchanged", firstNow.Status)
	}

	active := 0
	for _, task := range svc.List(ctx) {
		if task.IsActive {
			active++
		}
	}
	if active != 1 {
		t.Errorf("%d active tasks, want 1", active)
	}

	// Stopping commits elapsed time and leaves the status alone.
	current = current.Add(45 * time.Minute)
	stopped, err := svc.StartStop(ctx, second.ID)
	if err != nil {
		t.Fatalf("StartStop() error: %v", err)
	}
	if stopped.IsActive || stopped.ActiveSince != nil {
		t.Error("stopped task should not be active")
	}
	if stopped.TimeSpent != 45 {
		t.Errorf("stopped task TimeSpent = %d, want 45", stopped.TimeSpent)
	}
	if stopped.Status != model.StatusInProgress {
		t.Errorf("stopped task status = %q, want In Progress", stopped.Status)
	}
}

func TestSetStatus(t *testing.T) {
	svc, _ := newTasksService(t)
	ctx := context.Background()

	task, _ := svc.Create(ctx, model.DailyTask{Title: "Plan sprint"})

	updated, err := svc.SetStatus(ctx, task.ID, model.StatusInProgress)
	if err != nil {
		t.Fatalf("SetStatus() error: %v", err)
	}
	if updated.Status != model.StatusInProgress {
		t.Errorf("status = %q, want In Progress", updated.Status)
	}

	if _, err := svc.SetStatus(ctx, task.ID, "Blocked"); err == nil {
		t.Error("SetStatus() with unknown status should fail")
	}
}
