package controllers

import (
	"ArGuide/services"
	"ArGuide/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	HistoryService *services.HistoryService
}

func NewHistoryController(historyService *services.HistoryService) *HistoryController {
	return &HistoryController{
		HistoryService: historyService,
	}
}

// GetHistories returns the most recent guide results.
func (h *HistoryController) GetHistories(c *gin.Context) {
	if h.HistoryService == nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "History store is not configured")
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	histories, err := h.HistoryService.GetHistories(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Histories fetched successfully", histories)
}
