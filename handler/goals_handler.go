package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/worklifedesks/model"
	"github.com/worklifedesks/usecase"
	"github.com/worklifedesks/utils"
)

// GoalsHandler serves monthly and weekly goals and the progress
// roll-up.
type GoalsHandler struct {
	goals *usecase.GoalsService
}

func NewGoalsHandler(goals *usecase.GoalsService) *GoalsHandler {
	return &GoalsHandler{goals: goals}
}

func (h *GoalsHandler) ListMonthly(c *gin.Context) {
	utils.Success(c, h.goals.ListMonthly(c.Request.Context()))
}

func (h *GoalsHandler) GetMonthly(c *gin.Context) {
	g, err := h.goals.GetMonthly(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Goal not found")
		return
	}
	utils.Success(c, g)
}

func (h *GoalsHandler) CreateMonthly(c *gin.Context) {
	var g model.MonthlyGoal
	if err := c.ShouldBindJSON(&g); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	created, err := h.goals.CreateMonthly(c.Request.Context(), g)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, created)
}

func (h *GoalsHandler) UpdateMonthly(c *gin.Context) {
	var patch model.MonthlyGoalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	g, err := h.goals.UpdateMonthly(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, usecase.ErrGoalNotFound) {
			utils.NotFound(c, "Goal not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, g)
}

func (h *GoalsHandler) DeleteMonthly(c *gin.Context) {
	if err := h.goals.DeleteMonthly(c.Request.Context(), c.Param("id")); err != nil {
		utils.NotFound(c, "Goal not found")
		return
	}
	utils.Success(c, gin.H{"message": "Goal deleted"})
}

func (h *GoalsHandler) ListWeekly(c *gin.Context) {
	utils.Success(c, h.goals.ListWeekly(c.Request.Context()))
}

func (h *GoalsHandler) GetWeekly(c *gin.Context) {
	g, err := h.goals.GetWeekly(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Goal not found")
		return
	}
	utils.Success(c, g)
}

func (h *GoalsHandler) CreateWeekly(c *gin.Context) {
	var g model.WeeklyGoal
	if err := c.ShouldBindJSON(&g); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	created, err := h.goals.CreateWeekly(c.Request.Context(), g)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, created)
}

// UpdateWeekly replaces the goal wholesale; targets are embedded so a
// partial merge would be ambiguous.
func (h *GoalsHandler) UpdateWeekly(c *gin.Context) {
	var g model.WeeklyGoal
	if err := c.ShouldBindJSON(&g); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	g.ID = c.Param("id")
	updated, err := h.goals.ReplaceWeekly(c.Request.Context(), g)
	if err != nil {
		utils.NotFound(c, "Goal not found")
		return
	}
	utils.Success(c, updated)
}

func (h *GoalsHandler) ToggleTarget(c *gin.Context) {
	g, err := h.goals.ToggleTarget(c.Request.Context(), c.Param("id"), c.Param("targetId"))
	if err != nil {
		utils.NotFound(c, err.Error())
		return
	}
	utils.Success(c, g)
}

func (h *GoalsHandler) ResetWeekly(c *gin.Context) {
	g, err := h.goals.ResetWeekly(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Goal not found")
		return
	}
	utils.Success(c, g)
}

func (h *GoalsHandler) DeleteWeekly(c *gin.Context) {
	if err := h.goals.DeleteWeekly(c.Request.Context(), c.Param("id")); err != nil {
		utils.NotFound(c, "Goal not found")
		return
	}
	utils.Success(c, gin.H{"message": "Goal deleted"})
}

func (h *GoalsHandler) Progress(c *gin.Context) {
	utils.Success(c, h.goals.Progress(c.Request.Context()))
}
