package repository

import (
	"context"
	"testing"

	"github.com/worklifedesks/kv"
	"github.com/worklifedesks/model"
	"github.com/worklifedesks/utils"
)

func newWeeklyGoals(store kv.Store) *WeeklyGoals {
	return NewWeeklyGoals(store, &utils.SequenceGenerator{Prefix: "wg"})
}

func TestWeeklyGoalsSeedTargets(t *testing.T) {
	repo := newWeeklyGoals(kv.NewMemory())
	repo.Load(context.Background())

	g, ok := repo.Get("template-weekly-1")
	if !ok {
		t.Fatal("template-weekly-1 missing after seed")
	}
	if len(g.Targets) != 3 {
		t.Fatalf("template has %d targets, want 3", len(g.Targets))
	}
	if g.Targets[0].ID != "target-1" {
		t.Errorf("first target id = %q", g.Targets[0].ID)
	}
	if g.MonthlyGoalID != "template-monthly-1" {
		t.Errorf("template link = %q", g.MonthlyGoalID)
	}
}

func TestWeeklyGoalResetKeepsTargetIDs(t *testing.T) {
	ctx := context.Background()
	repo := newWeeklyGoals(kv.NewMemory())
	repo.Load(ctx)

	before, _ := repo.Get("template-weekly-2")

	g, ok := repo.Reset(ctx, "template-weekly-2")
	if !ok {
		t.Fatal("Reset() failed")
	}
	if g.GoalTitle != "" {
		t.Error("Reset() should clear the goal title")
	}
	for i, target := range g.Targets {
		if target.ID != before.Targets[i].ID {
			t.Errorf("target id changed on reset: %q -> %q", before.Targets[i].ID, target.ID)
		}
		if target.Title != "" || len(target.ActionSteps) != 0 {
			t.Errorf("target %s not cleared: %+v", target.ID, target)
		}
	}
}

func TestWeeklyGoalsAddAssignsTargetIDs(t *testing.T) {
	ctx := context.Background()
	repo := newWeeklyGoals(kv.NewMemory())
	repo.Load(ctx)

	created := repo.Add(ctx, model.WeeklyGoal{
		MonthlyGoalID: "template-monthly-1",
		GoalTitle:     "Ship onboarding revamp",
		Targets: []model.Target{
			{Title: "Draft flows"},
			{ID: "custom-1", Title: "Review copy"},
		},
	})
	if created.ID == "" {
		t.Error("goal id not assigned")
	}
	if created.Targets[0].ID == "" {
		t.Error("target id not assigned")
	}
	if created.Targets[1].ID != "custom-1" {
		t.Error("existing target id should be kept")
	}
}

func TestWeeklyGoalsToggleTarget(t *testing.T) {
	ctx := context.Background()
	repo := newWeeklyGoals(kv.NewMemory())
	repo.Load(ctx)

	g, ok := repo.SetTargetCompleted(ctx, "template-weekly-1", "target-2", true)
	if !ok {
		t.Fatal("SetTargetCompleted() failed")
	}
	if target := g.FindTarget("target-2"); target == nil || !target.Completed {
		t.Error("target completion not applied")
	}

	if _, ok := repo.SetTargetCompleted(ctx, "template-weekly-1", "no-such-target", true); ok {
		t.Error("unknown target should be a no-op")
	}
}
