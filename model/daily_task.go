package model

import "time"

type Priority string
type TaskStatus string

const (
	PriorityHigh Priority = "High"
	PriorityMid  Priority = "Mid"
	PriorityLow  Priority = "Low"

	StatusToDo       TaskStatus = "To Do"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
)

// DailyTask is the atomic unit of tracked work, linked to exactly one
// weekly goal and one target within it.
type DailyTask struct {
	ID             string     `json:"id"`
	WeeklyGoalID   string     `json:"weeklyGoalId"`
	TargetID       string     `json:"targetId"`
	Title          string     `json:"title" binding:"required"`
	DueDate        string     `json:"dueDate"` // ISO date (YYYY-MM-DD)
	DueTime        string     `json:"dueTime,omitempty"`
	Tags           []string   `json:"tags"`
	Priority       Priority   `json:"priority"`
	Status         TaskStatus `json:"status"`
	TimeSpent      int        `json:"timeSpent"` // committed minutes
	IsActive       bool       `json:"isActive"`
	ActiveSince    *time.Time `json:"activeSince,omitempty"`
	Starred        bool       `json:"starred,omitempty"`
	AssignedTo     string     `json:"assignedTo,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	AddedToMyTasks bool       `json:"addedToMyTasks,omitempty"`
}

// DailyTaskPatch carries a shallow partial update for a task.
type DailyTaskPatch struct {
	WeeklyGoalID   *string     `json:"weeklyGoalId,omitempty"`
	TargetID       *string     `json:"targetId,omitempty"`
	Title          *string     `json:"title,omitempty"`
	DueDate        *string     `json:"dueDate,omitempty"`
	DueTime        *string     `json:"dueTime,omitempty"`
	Tags           *[]string   `json:"tags,omitempty"`
	Priority       *Priority   `json:"priority,omitempty"`
	Status         *TaskStatus `json:"status,omitempty"`
	TimeSpent      *int        `json:"timeSpent,omitempty"`
	Starred        *bool       `json:"starred,omitempty"`
	AssignedTo     *string     `json:"assignedTo,omitempty"`
	Notes          *string     `json:"notes,omitempty"`
	AddedToMyTasks *bool       `json:"addedToMyTasks,omitempty"`
}

// Apply merges the patch into the task.
func (p *DailyTaskPatch) Apply(t *DailyTask) {
	if p.WeeklyGoalID != nil {
		t.WeeklyGoalID = *p.WeeklyGoalID
	}
	if p.TargetID != nil {
		t.TargetID = *p.TargetID
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.DueTime != nil {
		t.DueTime = *p.DueTime
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.TimeSpent != nil {
		t.TimeSpent = *p.TimeSpent
	}
	if p.Starred != nil {
		t.Starred = *p.Starred
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.AddedToMyTasks != nil {
		t.AddedToMyTasks = *p.AddedToMyTasks
	}
}

// ValidPriority reports whether p is one of the three known levels.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMid, PriorityLow:
		return true
	}
	return false
}

// ValidTaskStatus reports whether s is one of the three known states.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}
