package handlers

import (
	"ArGuide/controllers"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// The documented path has no trailing slash; it must match directly, not via
// gin's 301 redirect.
func TestHistoriesPathMatchesWithoutRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterHistoryRoutes(router.Group("/v1"), controllers.NewHistoryController(nil))

	req := httptest.NewRequest(http.MethodGet, "/v1/histories", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code == http.StatusMovedPermanently || resp.Code == http.StatusNotFound {
		t.Fatalf("status = %d, want the handler to run directly", resp.Code)
	}
	if resp.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 with no history store", resp.Code)
	}
}
