package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/worklifedesks/model"
	"github.com/worklifedesks/usecase"
	"github.com/worklifedesks/utils"
)

// TasksHandler serves the daily task list, completion toggling and
// time tracking.
type TasksHandler struct {
	tasks *usecase.TasksService
}

func NewTasksHandler(tasks *usecase.TasksService) *TasksHandler {
	return &TasksHandler{tasks: tasks}
}

func (h *TasksHandler) List(c *gin.Context) {
	utils.Success(c, h.tasks.List(c.Request.Context()))
}

func (h *TasksHandler) Get(c *gin.Context) {
	t, err := h.tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Task not found")
		return
	}
	utils.Success(c, t)
}

func (h *TasksHandler) Create(c *gin.Context) {
	var t model.DailyTask
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	created, err := h.tasks.Create(c.Request.Context(), t)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, created)
}

func (h *TasksHandler) Update(c *gin.Context) {
	var patch model.DailyTaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	t, err := h.tasks.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, t)
}

func (h *TasksHandler) Delete(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.NotFound(c, "Task not found")
		return
	}
	utils.Success(c, gin.H{"message": "Task deleted"})
}

// Toggle flips completion on a task.
func (h *TasksHandler) Toggle(c *gin.Context) {
	t, err := h.tasks.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Task not found")
		return
	}
	utils.Success(c, t)
}

// Tracking starts or stops the task's timer.
func (h *TasksHandler) Tracking(c *gin.Context) {
	t, err := h.tasks.StartStop(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Task not found")
		return
	}
	utils.Success(c, t)
}

func (h *TasksHandler) SetStatus(c *gin.Context) {
	var req struct {
		Status model.TaskStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	t, err := h.tasks.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, t)
}
