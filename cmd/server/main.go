package main

import (
	"os"
	"time"

	"github.com/collabide/server/internal/api/handlers"
	"github.com/collabide/server/internal/api/middleware"
	"github.com/collabide/server/internal/config"
	"github.com/collabide/server/internal/execution"
	"github.com/collabide/server/internal/room"
	"github.com/collabide/server/internal/websocket"
	"github.com/collabide/server/pkg/logger"
	"github.com/collabide/server/pkg/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load(config.Overrides{})
	if err != nil {
		logger.Errorf("Failed to load config: %v", err)
		os.Exit(1)
	}

	if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if cfg.Debug {
		logger.SetLevel(logger.LevelDebug)
	}

	// Set Gin mode
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Room state and execution bridge are owned here and passed by handle;
	// nothing reaches them through package globals.
	rooms := room.NewService(time.Now, types.NewEventID)
	execClient := execution.NewClient(cfg.ExecutionEndpoint, cfg.ExecutionTimeout)

	// Initialize Socket.IO server
	logger.Infof("Initializing Socket.IO server...")
	socketIOServer := websocket.NewSocketIOServer(rooms, execClient)
	defer socketIOServer.Close()

	// Create Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Logging middleware
	router.Use(middleware.LoggingMiddleware())

	// Root endpoint - returns plain text for client validation
	router.GET("/", func(c *gin.Context) {
		c.String(200, "Welcome to CollabIDE Server!")
	})

	// Liveness endpoint
	router.GET("/api/health", handlers.Health)

	// Accounts are out of scope for the room service; the frontend falls
	// back to anonymous display names when auth answers 503.
	router.Any("/api/auth/*any", handlers.AuthDisabled)

	// Mount Socket.IO at the default path the frontend client expects.
	router.Any("/socket.io", socketIOServer.HandleSocketIO())
	router.Any("/socket.io/*any", socketIOServer.HandleSocketIO())

	// Start HTTP server
	addr := cfg.Addr()
	logger.Infof("CollabIDE Server starting on http://localhost%s", addr)
	logger.Infof("Execution backend: %s (timeout %s)", cfg.ExecutionEndpoint, cfg.ExecutionTimeout)

	if err := router.Run(addr); err != nil {
		logger.Errorf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
