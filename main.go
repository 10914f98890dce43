package main

import (
	"log"
	"net/http"
	"time"

	"ArGuide/config/database"
	"ArGuide/config/environment"
	"ArGuide/middleware"
	v1 "ArGuide/routes/v1"
	"ArGuide/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment values")
	}

	// The spot index is an optional capability: a missing or unreadable
	// database disables nearby-spot context instead of refusing to start.
	var spotService *services.SpotService
	if dbPath := environment.GetSpotDBPath(); dbPath != "" {
		spotService, err = services.NewSpotService(dbPath, environment.GetLocationTopK())
		if err != nil {
			log.Println("Spot database disabled:", err)
			spotService = nil
		} else {
			log.Printf("Spot database loaded: %d spots from %s\n", spotService.Count(), dbPath)
		}
	} else {
		log.Println("SPOT_DB_PATH not set, nearby-spot lookups disabled")
	}

	// History store is optional too.
	var historyService *services.HistoryService
	if err := database.InitFirebase(); err != nil {
		log.Println("History store disabled:", err)
	} else {
		historyService = services.NewHistoryService(database.GetFirestoreClient())
	}

	vlmService := services.NewVLMService(environment.GetVLMBaseURL())
	ragService := services.NewRAGService(environment.GetRAGAPIURL(), environment.GetRAGAPIToken())
	guideService := services.NewGuideService(spotService, vlmService, ragService, historyService, environment.GetLocationTopK())

	// Setup Gin router
	r := gin.Default()

	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ArGuide API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Register all routes
	v1.RegisterRoutes(r, guideService, spotService, historyService)

	port := environment.GetPort()
	log.Println("Server running on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed:", err)
	}
}
