package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/worklifedesks/usecase"
	"github.com/worklifedesks/utils"
)

// StatsHandler serves the workspace stats snapshot.
type StatsHandler struct {
	stats *usecase.StatsService
}

func NewStatsHandler(stats *usecase.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Get(c *gin.Context) {
	utils.Success(c, h.stats.Collect(c.Request.Context()))
}
