package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/worklifedesks/config"
	"github.com/worklifedesks/model"
	"github.com/worklifedesks/utils"
)

// NewSession builds a session record for a fresh login. DeviceInfo is
// derived from the User-Agent header.
func NewSession(email, userAgent, ip string, cfg config.SessionConfig) model.Session {
	now := time.Now()
	return model.Session{
		SessionID:      uuid.New().String(),
		Email:          email,
		CreatedAt:      now,
		ExpiresAt:      now.Add(cfg.Duration),
		LastActivityAt: now,
		DeviceInfo:     utils.GenerateSessionName(userAgent),
		IPAddress:      ip,
		IsActive:       true,
	}
}

// SessionValid reports whether a session can still authenticate
// requests at the given time.
func SessionValid(s model.Session, now time.Time, inactivity time.Duration) bool {
	if !s.IsActive {
		return false
	}
	if now.After(s.ExpiresAt) {
		return false
	}
	return now.Sub(s.LastActivityAt) <= inactivity
}
