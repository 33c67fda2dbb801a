package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/worklifedesks/model"
	"github.com/worklifedesks/usecase"
	"github.com/worklifedesks/utils"
)

// EmployeesHandler serves the roster. An empty roster comes back as the
// demo list with a flag so clients know it is placeholder data.
type EmployeesHandler struct {
	employees *usecase.EmployeesService
}

func NewEmployeesHandler(employees *usecase.EmployeesService) *EmployeesHandler {
	return &EmployeesHandler{employees: employees}
}

func (h *EmployeesHandler) List(c *gin.Context) {
	items, demo := h.employees.Roster(c.Request.Context())
	utils.Success(c, gin.H{"employees": items, "demo": demo})
}

func (h *EmployeesHandler) Get(c *gin.Context) {
	e, err := h.employees.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Employee not found")
		return
	}
	utils.Success(c, e)
}

func (h *EmployeesHandler) Create(c *gin.Context) {
	var e model.Employee
	if err := c.ShouldBindJSON(&e); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	created, err := h.employees.Add(c.Request.Context(), e)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, created)
}

func (h *EmployeesHandler) Update(c *gin.Context) {
	var patch model.EmployeePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	e, err := h.employees.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		utils.NotFound(c, "Employee not found")
		return
	}
	utils.Success(c, e)
}

func (h *EmployeesHandler) Delete(c *gin.Context) {
	if err := h.employees.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.NotFound(c, "Employee not found")
		return
	}
	utils.Success(c, gin.H{"message": "Employee deleted"})
}
