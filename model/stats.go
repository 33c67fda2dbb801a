package model

// WorkspaceStats is the aggregate view served by the stats endpoint.
type WorkspaceStats struct {
	GoalStats struct {
		Monthly    int `json:"monthly"`
		Weekly     int `json:"weekly"`
		InProgress int `json:"in_progress"`
		OnTrack    int `json:"on_track"`
		AtRisk     int `json:"at_risk"`
		Completed  int `json:"completed"`
	} `json:"goal_stats"`

	TaskStats struct {
		Total            int `json:"total"`
		Completed        int `json:"completed"`
		InProgress       int `json:"in_progress"`
		ToDo             int `json:"to_do"`
		Starred          int `json:"starred"`
		TotalTimeMinutes int `json:"total_time_minutes"`
		HighPriority     int `json:"high_priority"`
		MidPriority      int `json:"mid_priority"`
		LowPriority      int `json:"low_priority"`
	} `json:"task_stats"`

	EmployeeCount int `json:"employee_count"`

	System struct {
		CPUUsagePercent float64 `json:"cpu_usage_percent"`
		MemoryUsedMB    float64 `json:"memory_used_mb"`
	} `json:"system"`
}
