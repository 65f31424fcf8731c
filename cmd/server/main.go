package main

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prakulkashyap2-hub/teamsync/internal/config"
	"github.com/prakulkashyap2-hub/teamsync/internal/database"
	"github.com/prakulkashyap2-hub/teamsync/internal/handlers"
	"github.com/prakulkashyap2-hub/teamsync/internal/logger"
	"github.com/prakulkashyap2-hub/teamsync/internal/repository"
	"github.com/prakulkashyap2-hub/teamsync/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.AppEnv)
	defer log.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	// Run migrations, then seed the two tables on first run. Both happen
	// before the listener starts accepting traffic.
	if err := database.Migrate(); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}
	if err := database.Seed(); err != nil {
		log.Fatalw("failed to seed database", "error", err)
	}
	log.Infow("database ready", "driver", cfg.DBDriver)

	// Initialize Gin router
	r := gin.Default()

	if cfg.GinMode != gin.ReleaseMode {
		// The SPA runs on the Vite dev server in development and calls
		// the API cross-origin.
		r.Use(cors.New(cors.Config{
			AllowOrigins: []string{cfg.CORSOrigin},
			AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
		}))
	}

	db := database.GetDB()

	// Initialize handlers
	teamHandler := handlers.NewTeamHandler(services.NewTeamService(repository.NewTeamMemberRepository(db)))
	taskHandler := handlers.NewTaskHandler(services.NewTaskService(repository.NewTaskRepository(db)))
	statsHandler := handlers.NewStatsHandler(services.NewStatsService(repository.NewStatsRepository(db)))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "TeamSync API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		api.GET("/team", teamHandler.ListMembers)
		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.PATCH("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
		api.GET("/stats", statsHandler.GetStats)
	}

	// In release mode the built SPA is served from the static dir.
	if cfg.GinMode == gin.ReleaseMode {
		registerStatic(r, cfg.StaticDir)
	}

	// Start server
	addr := ":" + cfg.Port
	log.Infow("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalw("failed to start server", "error", err)
	}
}

// registerStatic serves the built client. The SPA uses history-mode
// routing, so unknown non-API paths fall back to the shell page.
func registerStatic(r *gin.Engine, dir string) {
	index := filepath.Join(dir, "index.html")

	r.Static("/assets", filepath.Join(dir, "assets"))
	r.StaticFile("/", index)
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.File(index)
	})
}
