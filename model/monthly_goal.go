package model

type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "in-progress"
	GoalStatusOnTrack    GoalStatus = "on-track"
	GoalStatusAtRisk     GoalStatus = "at-risk"
)

// MonthlyGoal is the top-level objective, decomposed into weekly goals
// through WeeklyGoal.MonthlyGoalID.
type MonthlyGoal struct {
	ID         string     `json:"id"`
	Title      string     `json:"title" binding:"required"`
	Why        string     `json:"why"`
	Resources  string     `json:"resources"`
	Deadline   string     `json:"deadline"` // ISO date (YYYY-MM-DD) or empty
	Outcome    string     `json:"outcome"`
	NextSteps  []string   `json:"nextSteps"`
	Status     GoalStatus `json:"status,omitempty"`
	Project    string     `json:"project,omitempty"`
	KPI        string     `json:"kpi,omitempty"`
	TeamLeader string     `json:"teamLeader,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	Risk       string     `json:"risk,omitempty"`
	Completed  bool       `json:"completed,omitempty"`
}

// MonthlyGoalPatch carries a shallow partial update. Nil fields are left
// untouched by the merge.
type MonthlyGoalPatch struct {
	Title      *string     `json:"title,omitempty"`
	Why        *string     `json:"why,omitempty"`
	Resources  *string     `json:"resources,omitempty"`
	Deadline   *string     `json:"deadline,omitempty"`
	Outcome    *string     `json:"outcome,omitempty"`
	NextSteps  *[]string   `json:"nextSteps,omitempty"`
	Status     *GoalStatus `json:"status,omitempty"`
	Project    *string     `json:"project,omitempty"`
	KPI        *string     `json:"kpi,omitempty"`
	TeamLeader *string     `json:"teamLeader,omitempty"`
	Notes      *string     `json:"notes,omitempty"`
	Risk       *string     `json:"risk,omitempty"`
	Completed  *bool       `json:"completed,omitempty"`
}

// Apply merges the patch into the goal.
func (p *MonthlyGoalPatch) Apply(g *MonthlyGoal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Why != nil {
		g.Why = *p.Why
	}
	if p.Resources != nil {
		g.Resources = *p.Resources
	}
	if p.Deadline != nil {
		g.Deadline = *p.Deadline
	}
	if p.Outcome != nil {
		g.Outcome = *p.Outcome
	}
	if p.NextSteps != nil {
		g.NextSteps = *p.NextSteps
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
	if p.Project != nil {
		g.Project = *p.Project
	}
	if p.KPI != nil {
		g.KPI = *p.KPI
	}
	if p.TeamLeader != nil {
		g.TeamLeader = *p.TeamLeader
	}
	if p.Notes != nil {
		g.Notes = *p.Notes
	}
	if p.Risk != nil {
		g.Risk = *p.Risk
	}
	if p.Completed != nil {
		g.Completed = *p.Completed
	}
}

// EffectiveStatus returns the display status, defaulting to in-progress
// when none was ever set.
func (g *MonthlyGoal) EffectiveStatus() GoalStatus {
	if g.Status == "" {
		return GoalStatusInProgress
	}
	return g.Status
}
