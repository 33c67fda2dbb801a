package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/worklifedesks/config"
	"github.com/worklifedesks/dto"
	"github.com/worklifedesks/repository"
	"github.com/worklifedesks/services"
	"github.com/worklifedesks/usecase"
	"github.com/worklifedesks/utils"
)

// AuthHandler serves the onboarding flow and login.
type AuthHandler struct {
	users      *usecase.UsersService
	sessions   *repository.Sessions
	sessionCfg config.SessionConfig
}

func NewAuthHandler(users *usecase.UsersService, sessions *repository.Sessions, sessionCfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, sessionCfg: sessionCfg}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("auth", "invalid_request")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.ToUser(), req.Password)
	if err != nil {
		utils.TrackAuthAttempt("failure", "register")
		utils.BadRequest(c, err.Error())
		return
	}
	utils.TrackAuthAttempt("success", "register")
	utils.Created(c, user)
}

func (h *AuthHandler) Company(c *gin.Context) {
	var req dto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := h.users.SetCompany(c.Request.Context(), req.ToCompanyInfo())
	if err != nil {
		if errors.Is(err, usecase.ErrNotRegistered) {
			utils.Conflict(c, "Complete registration first")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, user)
}

func (h *AuthHandler) Employees(c *gin.Context) {
	var req dto.EmployeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := h.users.SetEmployees(c.Request.Context(), req.Employees)
	if err != nil {
		if errors.Is(err, usecase.ErrNotRegistered) {
			utils.Conflict(c, "Complete registration first")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("auth", "invalid_request")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	session := services.NewSession(user.Email, c.Request.UserAgent(), c.ClientIP(), h.sessionCfg)
	h.sessions.Add(c.Request.Context(), session)

	token, err := services.GenerateJWT(user.Email, session.SessionID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	utils.Success(c, dto.LoginResponse{
		Token:     token,
		SessionID: session.SessionID,
		User:      user,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID := c.GetString("session_id"); sessionID != "" {
		h.sessions.End(c.Request.Context(), sessionID)
	}
	h.users.Logout(c.Request.Context())
	utils.Success(c, gin.H{"message": "Logged out"})
}
