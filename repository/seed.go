package repository

import (
	"time"

	"github.com/worklifedesks/model"
)

// Template data substituted when a collection was never persisted, is
// malformed, or came back empty. Mirrors what a fresh workspace starts
// out with.

func templateMonthlyGoals(now time.Time) []model.MonthlyGoal {
	return []model.MonthlyGoal{
		{
			ID:        "template-monthly-1",
			Title:     "Launch Updated Website",
			Why:       "Improve user experience and increase conversions by 20%",
			Resources: "Design team, Development resources, Content writer",
			Deadline:  now.AddDate(0, 0, 30).Format("2006-01-02"),
			Outcome:   "Fully responsive website with improved load times and modern design",
			NextSteps: []string{"Finalize wireframes", "Complete design mockups", "Development sprint", "QA testing"},
		},
		{
			ID:        "template-monthly-2",
			Title:     "Increase Team Productivity",
			Why:       "Reduce meeting time by 30% and improve project delivery speed",
			Resources: "Project management tools, Team leads, HR support",
			Deadline:  now.AddDate(0, 0, 45).Format("2006-01-02"),
			Outcome:   "Streamlined workflows with documented processes and automated reporting",
			NextSteps: []string{"Audit current workflows", "Implement task automation", "Train team on new tools", "Measure improvements"},
		},
	}
}

func templateWeeklyGoals() []model.WeeklyGoal {
	return []model.WeeklyGoal{
		{
			ID:            "template-weekly-1",
			MonthlyGoalID: "template-monthly-1",
			GoalTitle:     "Complete Homepage Redesign",
			Targets: []model.Target{
				{ID: "target-1", Title: "Finalize hero section design", ActionSteps: []string{"Review competitors", "Create 3 variations", "Get stakeholder feedback"}},
				{ID: "target-2", Title: "Implement responsive navigation", ActionSteps: []string{"Mobile-first approach", "Test on all devices"}},
				{ID: "target-3", Title: "Optimize images and assets", ActionSteps: []string{"Compress images", "Set up lazy loading"}},
			},
		},
		{
			ID:            "template-weekly-2",
			MonthlyGoalID: "template-monthly-2",
			GoalTitle:     "Set Up Project Management System",
			Targets: []model.Target{
				{ID: "target-4", Title: "Choose and configure PM tool", ActionSteps: []string{"Compare Asana vs Monday vs Notion", "Set up workspace", "Create project templates"}},
				{ID: "target-5", Title: "Migrate existing projects", ActionSteps: []string{"Export current data", "Import to new system", "Verify all tasks"}},
				{ID: "target-6", Title: "Team onboarding", ActionSteps: []string{"Create training materials", "Schedule team sessions", "Gather feedback"}},
			},
		},
	}
}

func templateDailyTasks(now time.Time) []model.DailyTask {
	today := now.Format("2006-01-02")
	return []model.DailyTask{
		{
			ID:           "template-daily-1",
			WeeklyGoalID: "template-weekly-1",
			TargetID:     "target-1",
			Title:        "Review competitor websites for inspiration",
			DueDate:      today,
			Tags:         []string{"Research", "Design"},
			Priority:     model.PriorityHigh,
			Status:       model.StatusToDo,
		},
		{
			ID:           "template-daily-2",
			WeeklyGoalID: "template-weekly-2",
			TargetID:     "target-4",
			Title:        "Compare PM tools and create recommendation doc",
			DueDate:      today,
			Tags:         []string{"Research", "Documentation"},
			Priority:     model.PriorityMid,
			Status:       model.StatusToDo,
		},
	}
}

// DemoEmployees is the roster shown on the dashboard when no employees
// were saved during onboarding.
func DemoEmployees() []model.Employee {
	return []model.Employee{
		{ID: "1", Name: "Gopal Batra", Title: "Senior Developer", PhoneNumber: "555-0101", Email: "gopal@example.com"},
		{ID: "2", Name: "Bhavika Bhalla", Title: "UI/UX Designer", PhoneNumber: "555-0102", Email: "bhavika@example.com"},
		{ID: "3", Name: "Bhawna Kela", Title: "Project Manager", PhoneNumber: "555-0103", Email: "bhawna@example.com"},
		{ID: "4", Name: "Rahul Singh", Title: "Data Analyst", PhoneNumber: "555-0104", Email: "rahul@example.com"},
		{ID: "5", Name: "ACBD Employee", Title: "Associate", PhoneNumber: "555-0105", Email: "acbd@example.com"},
		{ID: "6", Name: "Priya Sharma", Title: "Frontend Developer", PhoneNumber: "555-0106", Email: "priya@example.com"},
		{ID: "7", Name: "Amit Kumar", Title: "Graphic Designer", PhoneNumber: "555-0107", Email: "amit@example.com"},
		{ID: "8", Name: "Neha Gupta", Title: "Team Lead", PhoneNumber: "555-0108", Email: "neha@example.com"},
		{ID: "9", Name: "Vikram Patel", Title: "Backend Developer", PhoneNumber: "555-0109", Email: "vikram@example.com"},
		{ID: "10", Name: "Ananya Reddy", Title: "Product Manager", PhoneNumber: "555-0110", Email: "ananya@example.com"},
		{ID: "11", Name: "Sanjay Verma", Title: "QA Engineer", PhoneNumber: "555-0111", Email: "sanjay@example.com"},
		{ID: "12", Name: "Meera Joshi", Title: "HR Manager", PhoneNumber: "555-0112", Email: "meera@example.com"},
		{ID: "13", Name: "Arjun Nair", Title: "DevOps Engineer", PhoneNumber: "555-0113", Email: "arjun@example.com"},
		{ID: "14", Name: "Kavita Rao", Title: "Marketing Lead", PhoneNumber: "555-0114", Email: "kavita@example.com"},
		{ID: "15", Name: "Deepak Mishra", Title: "Sales Executive", PhoneNumber: "555-0115", Email: "deepak@example.com"},
		{ID: "16", Name: "Shreya Kapoor", Title: "Content Writer", PhoneNumber: "555-0116", Email: "shreya@example.com"},
	}
}
