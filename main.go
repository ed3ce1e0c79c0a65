package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"restaurant-picker-api/config"
	"restaurant-picker-api/handlers"
	"restaurant-picker-api/picker"
	"restaurant-picker-api/provider"
	"restaurant-picker-api/routes"
	"restaurant-picker-api/store"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	gin.SetMode(cfg.GinMode)

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	log.Info().Str("path", cfg.DBPath).Msg("database connected and migrated")

	st := store.New(db)

	var p provider.Provider
	switch cfg.Provider {
	case "database":
		p = provider.NewStore(st)
	default:
		p = provider.NewMock()
	}
	log.Info().Str("provider", p.Name()).Msg("discovery provider configured")

	h := handlers.New(st, p, picker.New())

	// Gin router with default middleware (logger + recovery).
	r := gin.Default()
	r.Use(corsMiddleware())
	routes.SetupRoutes(r, h)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// corsMiddleware allows browser frontends to call the API directly.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
