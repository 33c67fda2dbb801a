package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/worklifedesks/model"
	"github.com/worklifedesks/repository"
	"github.com/worklifedesks/utils"
)

var ErrTaskNotFound = errors.New("task not found")

// TasksService owns daily task lifecycle and time tracking.
type TasksService struct {
	repo *repository.DailyTasks
	now  func() time.Time
}

func NewTasksService(repo *repository.DailyTasks) *TasksService {
	return &TasksService{repo: repo, now: time.Now}
}

func (svc *TasksService) List(ctx context.Context) []model.DailyTask {
	return svc.repo.All()
}

func (svc *TasksService) Get(ctx context.Context, id string) (model.DailyTask, error) {
	t, ok := svc.repo.Get(id)
	if !ok {
		return model.DailyTask{}, ErrTaskNotFound
	}
	return t, nil
}

// Create validates and stores a new task. Priority defaults to Mid and
// status to To Do when omitted.
func (svc *TasksService) Create(ctx context.Context, t model.DailyTask) (model.DailyTask, error) {
	if t.Title == "" {
		return model.DailyTask{}, errors.New("task title is required")
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMid
	}
	if !model.ValidPriority(t.Priority) {
		return model.DailyTask{}, errors.New("priority must be High, Mid or Low")
	}
	if t.Status == "" {
		t.Status = model.StatusToDo
	}
	if !model.ValidTaskStatus(t.Status) {
		return model.DailyTask{}, errors.New("status must be To Do, In Progress or Done")
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	t.IsActive = false
	t.ActiveSince = nil
	return svc.repo.Add(ctx, t), nil
}

func (svc *TasksService) Update(ctx context.Context, id string, patch model.DailyTaskPatch) (model.DailyTask, error) {
	if patch.Priority != nil && !model.ValidPriority(*patch.Priority) {
		return model.DailyTask{}, errors.New("priority must be High, Mid or Low")
	}
	if patch.Status != nil && !model.ValidTaskStatus(*patch.Status) {
		return model.DailyTask{}, errors.New("status must be To Do, In Progress or Done")
	}
	if patch.Title != nil && *patch.Title == "" {
		return model.DailyTask{}, errors.New("task title cannot be empty")
	}
	t, ok := svc.repo.Update(ctx, id, patch)
	if !ok {
		return model.DailyTask{}, ErrTaskNotFound
	}
	return t, nil
}

func (svc *TasksService) Delete(ctx context.Context, id string) error {
	if !svc.repo.Delete(ctx, id) {
		return ErrTaskNotFound
	}
	return nil
}

// SetStatus moves a task to an explicit status without touching its
// tracking state.
func (svc *TasksService) SetStatus(ctx context.Context, id string, status model.TaskStatus) (model.DailyTask, error) {
	if !model.ValidTaskStatus(status) {
		return model.DailyTask{}, errors.New("status must be To Do, In Progress or Done")
	}
	t, ok := svc.repo.Update(ctx, id, model.DailyTaskPatch{Status: &status})
	if !ok {
		return model.DailyTask{}, ErrTaskNotFound
	}
	return t, nil
}

// Toggle flips completion. A Done task goes back to To Do with its
// tracking state untouched. Any other status goes to Done, stops
// tracking and commits the elapsed minutes if the task was running.
func (svc *TasksService) Toggle(ctx context.Context, id string) (model.DailyTask, error) {
	var (
		updated model.DailyTask
		found   bool
	)
	now := svc.now()
	svc.repo.Mutate(ctx, func(tasks []model.DailyTask) []model.DailyTask {
		for i := range tasks {
			if tasks[i].ID != id {
				continue
			}
			found = true
			if tasks[i].Status == model.StatusDone {
				tasks[i].Status = model.StatusToDo
			} else {
				tasks[i].Status = model.StatusDone
				if tasks[i].IsActive {
					tasks[i].TimeSpent += elapsedMinutes(tasks[i].ActiveSince, now)
				}
				tasks[i].IsActive = false
				tasks[i].ActiveSince = nil
				utils.TrackTaskCompletion()
			}
			updated = tasks[i]
		}
		return tasks
	})
	if !found {
		return model.DailyTask{}, ErrTaskNotFound
	}
	return updated, nil
}

// StartStop flips time tracking. Starting marks the task active and
// In Progress and stops every other running task, committing their
// elapsed time. Stopping commits the elapsed minutes and leaves the
// status alone.
func (svc *TasksService) StartStop(ctx context.Context, id string) (model.DailyTask, error) {
	var (
		updated model.DailyTask
		found   bool
	)
	now := svc.now()
	svc.repo.Mutate(ctx, func(tasks []model.DailyTask) []model.DailyTask {
		starting := false
		for i := range tasks {
			if tasks[i].ID == id {
				found = true
				starting = !tasks[i].IsActive
			}
		}
		if !found {
			return tasks
		}
		for i := range tasks {
			switch {
			case tasks[i].ID == id && starting:
				tasks[i].IsActive = true
				tasks[i].Status = model.StatusInProgress
				tasks[i].ActiveSince = &now
			case tasks[i].IsActive:
				// Either the explicit stop or a running task being
				// displaced by the one starting.
				tasks[i].TimeSpent += elapsedMinutes(tasks[i].ActiveSince, now)
				tasks[i].IsActive = false
				tasks[i].ActiveSince = nil
			}
			if tasks[i].ID == id {
				updated = tasks[i]
			}
		}
		return tasks
	})
	if !found {
		return model.DailyTask{}, ErrTaskNotFound
	}
	return updated, nil
}

func elapsedMinutes(since *time.Time, now time.Time) int {
	if since == nil {
		return 0
	}
	m := int(now.Sub(*since).Minutes())
	if m < 0 {
		return 0
	}
	return m
}
