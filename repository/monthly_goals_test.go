package repository

import (
	"context"
	"testing"
	"time"

	"github.com/worklifedesks/kv"
	"github.com/worklifedesks/model"
	"github.com/worklifedesks/utils"
)

func TestMonthlyGoalsSeedDeadlines(t *testing.T) {
	store := kv.NewMemory()
	repo := NewMonthlyGoals(store, &utils.SequenceGenerator{Prefix: "goal"})
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	repo.Load(context.Background())

	items := repo.All()
	if len(items) != 2 {
		t.Fatalf("seeded %d goals, want 2", len(items))
	}
	if items[0].Title != "Launch Updated Website" {
		t.Errorf("first template title = %q", items[0].Title)
	}
	if items[0].Deadline != "2026-03-31" {
		t.Errorf("first deadline = %q, want 30 days out", items[0].Deadline)
	}
	if items[1].Deadline != "2026-04-15" {
		t.Errorf("second deadline = %q, want 45 days out", items[1].Deadline)
	}
}

func TestMonthlyGoalDeleteDoesNotCascade(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	ids := &utils.SequenceGenerator{Prefix: "id"}

	monthly := NewMonthlyGoals(store, ids)
	weekly := NewWeeklyGoals(store, ids)
	tasks := NewDailyTasks(store, ids)
	monthly.Load(ctx)
	weekly.Load(ctx)
	tasks.Load(ctx)

	if !monthly.Delete(ctx, "template-monthly-1") {
		t.Fatal("Delete() failed")
	}

	// Weekly goals linked to the deleted goal stay put.
	linked := weekly.ByMonthlyGoal("template-monthly-1")
	if len(linked) != 1 {
		t.Errorf("%d weekly goals left for deleted monthly goal, want 1", len(linked))
	}
	// And so do the tasks under them.
	if len(tasks.All()) != 2 {
		t.Error("tasks should be untouched by a monthly goal delete")
	}
}

func TestMonthlyGoalsPatchUpdate(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	repo := NewMonthlyGoals(store, &utils.SequenceGenerator{Prefix: "goal"})
	repo.Load(ctx)

	title := "Ship Mobile App"
	completed := true
	updated, ok := repo.Update(ctx, "template-monthly-1", model.MonthlyGoalPatch{
		Title:     &title,
		Completed: &completed,
	})
	if !ok {
		t.Fatal("Update() failed")
	}
	if updated.Title != title || !updated.Completed {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.Why == "" {
		t.Error("untouched fields should survive the patch")
	}
}
