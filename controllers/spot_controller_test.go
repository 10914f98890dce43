package controllers

import (
	"ArGuide/middleware"
	"ArGuide/models"
	"ArGuide/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newSpotRouter(spots []models.Spot) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.ErrorHandlerMiddleware())

	controller := NewSpotController(services.NewSpotServiceFromSpots(spots, 5))
	router.GET("/v1/spots/search", controller.SearchSpot)
	return router
}

func TestSearchSpotFound(t *testing.T) {
	router := newSpotRouter([]models.Spot{
		{Name: "Kabukiza Theatre", Latitude: 35.6695, Longitude: 139.7679, Address: "東京都中央区銀座4丁目"},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/spots/search?name=kabukiza", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data models.Spot `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatal(err)
	}
	if envelope.Data.Name != "Kabukiza Theatre" {
		t.Errorf("name = %q, want Kabukiza Theatre", envelope.Data.Name)
	}
}

func TestSearchSpotNotFoundEnvelope(t *testing.T) {
	router := newSpotRouter([]models.Spot{
		{Name: "Tokyo Tower", Latitude: 35.6586, Longitude: 139.7454},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/spots/search?name=skytree", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}

	var envelope struct {
		StatusCode int    `json:"statusCode"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatal(err)
	}
	if envelope.StatusCode != http.StatusNotFound {
		t.Errorf("statusCode = %d, want 404", envelope.StatusCode)
	}
	if envelope.Message != "Spot not found" {
		t.Errorf("message = %q, want Spot not found", envelope.Message)
	}
}
