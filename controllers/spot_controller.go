package controllers

import (
	"ArGuide/services"
	"ArGuide/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SpotController struct {
	SpotService *services.SpotService
}

func NewSpotController(spotService *services.SpotService) *SpotController {
	return &SpotController{
		SpotService: spotService,
	}
}

// available guards the optional spot index capability.
func (h *SpotController) available(c *gin.Context) bool {
	if h.SpotService == nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "Spot database is not loaded")
		return false
	}
	return true
}

func parseCoordinates(c *gin.Context) (float64, float64, bool) {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid latitude")
		return 0, 0, false
	}

	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid longitude")
		return 0, 0, false
	}

	return latitude, longitude, true
}

// GetNearestSpots returns the k closest spots to the query point.
func (h *SpotController) GetNearestSpots(c *gin.Context) {
	if !h.available(c) {
		return
	}

	latitude, longitude, ok := parseCoordinates(c)
	if !ok {
		return
	}

	k := 0
	if v := c.Query("k"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid k")
			return
		}
		k = parsed
	}

	spots := h.SpotService.Nearest(latitude, longitude, k)
	utils.SuccessResponse(c, http.StatusOK, "Spots fetched successfully", spots)
}

// GetNearbySpots returns every spot within the given radius.
func (h *SpotController) GetNearbySpots(c *gin.Context) {
	if !h.available(c) {
		return
	}

	latitude, longitude, ok := parseCoordinates(c)
	if !ok {
		return
	}

	radius := 1.0
	if v := c.Query("radius"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid radius")
			return
		}
		radius = parsed
	}

	spots := h.SpotService.Within(latitude, longitude, radius)
	utils.SuccessResponse(c, http.StatusOK, "Spots fetched successfully", spots)
}

// SearchSpot finds the first spot whose name contains the query substring.
func (h *SpotController) SearchSpot(c *gin.Context) {
	if !h.available(c) {
		return
	}

	name := c.Query("name")
	if name == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "name query parameter is required")
		return
	}

	spot, found := h.SpotService.FindByName(name)
	if !found {
		c.Error(utils.NewCustomError(http.StatusNotFound, "Spot not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Spot fetched successfully", spot)
}
