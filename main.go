package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/worklifedesks/config"
	"github.com/worklifedesks/handler"
	"github.com/worklifedesks/kv"
	"github.com/worklifedesks/middleware"
	"github.com/worklifedesks/repository"
	"github.com/worklifedesks/usecase"
	"github.com/worklifedesks/utils"
)

const maxRequestBody = 1 << 20 // 1 MiB

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
}

// openStore builds the configured kv backend.
func openStore(cfg config.StorageConfig) (kv.Store, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		return kv.NewRedis(cfg.RedisURL)
	case config.BackendMongo:
		return kv.NewMongo(cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
	case config.BackendMemory:
		return kv.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func setupRouter(store kv.Store, sessionCfg config.SessionConfig) *gin.Engine {
	ctx := context.Background()
	ids := utils.UUIDGenerator{}

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
	statsService := usecase.NewStatsService(monthlyGoals, weeklyGoals, dailyTasks, employees)

	authHandler := handler.NewAuthHandler(usersService, sessions, sessionCfg)
	goalsHandler := handler.NewGoalsHandler(goalsService)
	tasksHandler := handler.NewTasksHandler(tasksService)
	employeesHandler := handler.NewEmployeesHandler(employeesService)
	reportHandler := handler.NewReportHandler(reportService)
	profileHandler := handler.NewProfileHandler(usersService)
	workspaceHandler := handler.NewWorkspaceHandler(workspace)
	statsHandler := handler.NewStatsHandler(statsService)

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBody))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/company", authHandler.Company)
			auth.POST("/employees", authHandler.Employees)
			auth.POST("/login", authHandler.Login)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(sessions, sessionCfg))
	{
		user := protected.Group("/user")
		{
			user.POST("/logout", authHandler.Logout)
		}

		goals := protected.Group("/goals")
		{
			goals.GET("/monthly", goalsHandler.ListMonthly)
			goals.POST("/monthly", goalsHandler.CreateMonthly)
			goals.GET("/monthly/:id", goalsHandler.GetMonthly)
			goals.PATCH("/monthly/:id", goalsHandler.UpdateMonthly)
			goals.DELETE("/monthly/:id", goalsHandler.DeleteMonthly)

			goals.GET("/weekly", goalsHandler.ListWeekly)
			goals.POST("/weekly", goalsHandler.CreateWeekly)
			goals.GET("/weekly/:id", goalsHandler.GetWeekly)
			goals.PUT("/weekly/:id", goalsHandler.UpdateWeekly)
			goals.DELETE("/weekly/:id", goalsHandler.DeleteWeekly)
			goals.POST("/weekly/:id/reset", goalsHandler.ResetWeekly)
			goals.POST("/weekly/:id/targets/:targetId/toggle", goalsHandler.ToggleTarget)

			goals.GET("/progress", goalsHandler.Progress)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("", tasksHandler.List)
			tasks.POST("", tasksHandler.Create)
			tasks.GET("/:id", tasksHandler.Get)
			tasks.PATCH("/:id", tasksHandler.Update)
			tasks.DELETE("/:id", tasksHandler.Delete)
			tasks.POST("/:id/toggle", tasksHandler.Toggle)
			tasks.POST("/:id/tracking", tasksHandler.Tracking)
			tasks.PUT("/:id/status", tasksHandler.SetStatus)
		}

		protected.GET("/report/daily", reportHandler.Daily)

		emps := protected.Group("/employees")
		{
			emps.GET("", employeesHandler.List)
			emps.POST("", employeesHandler.Create)
			emps.GET("/:id", employeesHandler.Get)
			emps.PATCH("/:id", employeesHandler.Update)
			emps.DELETE("/:id", employeesHandler.Delete)
		}

		profile := protected.Group("/profile")
		{
			profile.GET("", profileHandler.Get)
			profile.PUT("", profileHandler.Update)
			profile.GET("/status", profileHandler.Status)
			profile.PUT("/status", profileHandler.SetStatus)
		}

		ws := protected.Group("/workspace")
		{
			ws.GET("/employee-modes", workspaceHandler.EmployeeModes)
			ws.PUT("/employee-modes", workspaceHandler.SetEmployeeMode)
			ws.GET("/employee-data", workspaceHandler.EmployeeData)
			ws.PUT("/employee-data", workspaceHandler.SetEmployeeData)
			ws.GET("/employee-notes", workspaceHandler.EmployeeNotes)
			ws.PUT("/employee-notes", workspaceHandler.SetEmployeeNote)
			ws.GET("/monthly-objective", workspaceHandler.MonthlyObjective)
			ws.PUT("/monthly-objective", workspaceHandler.SetMonthlyObjective)
			ws.GET("/workflow-audit", workspaceHandler.WorkflowAudit)
			ws.PUT("/workflow-audit", workspaceHandler.SetWorkflowAudit)
			ws.GET("/key-metrics", workspaceHandler.KeyMetrics)
			ws.PUT("/key-metrics", workspaceHandler.SetKeyMetrics)
		}

		protected.GET("/stats", statsHandler.Get)
	}

	return router
}

func main() {
	storageCfg := config.LoadStorageConfig()
	sessionCfg := config.LoadSessionConfig()

	store, err := openStore(storageCfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", storageCfg.Backend, err)
	}

	router := setupRouter(store, sessionCfg)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
