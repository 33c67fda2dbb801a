package handler

import (
	"context"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/worklifedesks/config"
	"github.com/worklifedesks/kv"
	"github.com/worklifedesks/middleware"
	"github.com/worklifedesks/repository"
	"github.com/worklifedesks/usecase"
	"github.com/worklifedesks/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("GO_ENV", "test")
	gin.SetMode(gin.TestMode)
	utils.InitValidator()
	utils.InitJWT()
	os.Exit(m.Run())
}

// testEnv wires the full stack over an in-memory store.
type testEnv struct {
	router   *gin.Engine
	store    *kv.Memory
	sessions *repository.Sessions
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := kv.NewMemory()
	ids := &utils.SequenceGenerator{Prefix: "id"}
	ctx := context.Background()
	sessionCfg := config.LoadSessionConfig()

	monthlyGoals := repository.NewMonthlyGoals(store, ids)
	weeklyGoals := repository.NewWeeklyGoals(store, ids)
	dailyTasks := repository.NewDailyTasks(store, ids)
	employees := repository.NewEmployees(store, ids)
	users := repository.NewUsers(store)
	workspace := repository.NewWorkspace(store)
	sessions := repository.NewSessions(store)

	monthlyGoals.Load(ctx)
	weeklyGoals.Load(ctx)
	dailyTasks.Load(ctx)
	employees.Load(ctx)
	users.Load(ctx)
	workspace.Load(ctx)
	sessions.Load(ctx)

	usersService := usecase.NewUsersService(users, employees)
	goalsService := usecase.NewGoalsService(monthlyGoals, weeklyGoals, dailyTasks)
	tasksService := usecase.NewTasksService(dailyTasks)
	employeesService := usecase.NewEmployeesService(employees)
	reportService := usecase.NewReportService(dailyTasks)

	authHandler := NewAuthHandler(usersService, sessions, sessionCfg)
	goalsHandler := NewGoalsHandler(goalsService)
	tasksHandler := NewTasksHandler(tasksService)
	employeesHandler := NewEmployeesHandler(employeesService)
	reportHandler := NewReportHandler(reportService)
	profileHandler := NewProfileHandler(usersService)

	router := gin.New()

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/company", authHandler.Company)
		auth.POST("/employees", authHandler.Employees)
		auth.POST("/login", authHandler.Login)
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(sessions, sessionCfg))
	{
		protected.POST("/user/logout", authHandler.Logout)

		protected.GET("/goals/monthly", goalsHandler.ListMonthly)
		protected.POST("/goals/monthly", goalsHandler.CreateMonthly)
		protected.PATCH("/goals/monthly/:id", goalsHandler.UpdateMonthly)
		protected.DELETE("/goals/monthly/:id", goalsHandler.DeleteMonthly)
		protected.POST("/goals/weekly/:id/reset", goalsHandler.ResetWeekly)
		protected.GET("/goals/progress", goalsHandler.Progress)

		protected.GET("/tasks", tasksHandler.List)
		protected.POST("/tasks", tasksHandler.Create)
		protected.POST("/tasks/:id/toggle", tasksHandler.Toggle)
		protected.POST("/tasks/:id/tracking", tasksHandler.Tracking)

		protected.GET("/report/daily", reportHandler.Daily)

		protected.GET("/employees", employeesHandler.List)
		protected.POST("/employees", employeesHandler.Create)

		protected.GET("/profile", profileHandler.Get)
	}

	return &testEnv{router: router, store: store, sessions: sessions}
}
