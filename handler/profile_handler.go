package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/worklifedesks/dto"
	"github.com/worklifedesks/model"
	"github.com/worklifedesks/usecase"
	"github.com/worklifedesks/utils"
)

// ProfileHandler serves the profile screen and the online flag.
type ProfileHandler struct {
	users *usecase.UsersService
}

func NewProfileHandler(users *usecase.UsersService) *ProfileHandler {
	return &ProfileHandler{users: users}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	utils.Success(c, h.users.Profile(c.Request.Context()))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var p model.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	utils.Success(c, h.users.SetProfile(c.Request.Context(), p))
}

func (h *ProfileHandler) Status(c *gin.Context) {
	utils.Success(c, gin.H{"online": h.users.Online(c.Request.Context())})
}

func (h *ProfileHandler) SetStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	h.users.SetOnline(c.Request.Context(), req.Online)
	utils.Success(c, gin.H{"online": req.Online})
}
