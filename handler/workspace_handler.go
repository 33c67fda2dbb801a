package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/worklifedesks/dto"
	"github.com/worklifedesks/repository"
	"github.com/worklifedesks/utils"
)

// WorkspaceHandler serves the dashboard's auxiliary state: per-employee
// maps and the freeform text blocks.
type WorkspaceHandler struct {
	workspace *repository.Workspace
}

func NewWorkspaceHandler(workspace *repository.Workspace) *WorkspaceHandler {
	return &WorkspaceHandler{workspace: workspace}
}

func (h *WorkspaceHandler) EmployeeModes(c *gin.Context) {
	utils.Success(c, h.workspace.EmployeeModes())
}

func (h *WorkspaceHandler) SetEmployeeMode(c *gin.Context) {
	var req dto.EmployeeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	h.workspace.SetEmployeeMode(c.Request.Context(), req.EmployeeID, req.Value)
	utils.Success(c, h.workspace.EmployeeModes())
}

func (h *WorkspaceHandler) EmployeeData(c *gin.Context) {
	utils.Success(c, h.workspace.EmployeeData())
}

func (h *WorkspaceHandler) SetEmployeeData(c *gin.Context) {
	var req dto.EmployeeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	h.workspace.SetEmployeeData(c.Request.Context(), req.EmployeeID, req.Value)
	utils.Success(c, h.workspace.EmployeeData())
}

func (h *WorkspaceHandler) EmployeeNotes(c *gin.Context) {
	utils.Success(c, h.workspace.EmployeeNotes())
}

func (h *WorkspaceHandler) SetEmployeeNote(c *gin.Context) {
	var req dto.EmployeeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	h.workspace.SetEmployeeNote(c.Request.Context(), req.EmployeeID, req.Value)
	utils.Success(c, h.workspace.EmployeeNotes())
}

func (h *WorkspaceHandler) MonthlyObjective(c *gin.Context) {
	utils.Success(c, gin.H{"value": h.workspace.MonthlyObjective()})
}

func (h *WorkspaceHandler) SetMonthlyObjective(c *gin.Context) {
	h.setText(c, h.workspace.SetMonthlyObjective)
}

func (h *WorkspaceHandler) WorkflowAudit(c *gin.Context) {
	utils.Success(c, gin.H{"value": h.workspace.WorkflowAudit()})
}

func (h *WorkspaceHandler) SetWorkflowAudit(c *gin.Context) {
	h.setText(c, h.workspace.SetWorkflowAudit)
}

func (h *WorkspaceHandler) KeyMetrics(c *gin.Context) {
	utils.Success(c, gin.H{"value": h.workspace.KeyMetrics()})
}

func (h *WorkspaceHandler) SetKeyMetrics(c *gin.Context) {
	h.setText(c, h.workspace.SetKeyMetrics)
}

func (h *WorkspaceHandler) setText(c *gin.Context, set func(ctx context.Context, v string)) {
	var req dto.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	set(c.Request.Context(), req.Value)
	utils.Success(c, gin.H{"value": req.Value})
}
