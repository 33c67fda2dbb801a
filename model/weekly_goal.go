package model

// Target is a sub-objective embedded in exactly one WeeklyGoal.
type Target struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	ActionSteps []string `json:"actionSteps"`
	Completed   bool     `json:"completed,omitempty"`
}

// WeeklyGoal is a week-scoped breakdown of a MonthlyGoal. Targets are
// embedded, not stored separately.
type WeeklyGoal struct {
	ID            string   `json:"id"`
	MonthlyGoalID string   `json:"monthlyGoalId"`
	GoalTitle     string   `json:"goalTitle"`
	Targets       []Target `json:"targets"`
	WeekNumber    int      `json:"weekNumber,omitempty"` // 1..4 within the month
}

// FindTarget looks up an embedded target by id.
func (g *WeeklyGoal) FindTarget(targetID string) *Target {
	for i := range g.Targets {
		if g.Targets[i].ID == targetID {
			return &g.Targets[i]
		}
	}
	return nil
}

// Reset clears the goal title and every target's title and action steps
// while keeping target ids stable.
func (g *WeeklyGoal) Reset() {
	g.GoalTitle = ""
	for i := range g.Targets {
		g.Targets[i].Title = ""
		g.Targets[i].ActionSteps = nil
	}
}
