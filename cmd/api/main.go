package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ostech-br/os-manager/internal/config"
	dbpkg "github.com/ostech-br/os-manager/internal/db"
	"github.com/ostech-br/os-manager/internal/logger"
	"github.com/ostech-br/os-manager/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log := logger.Init(logger.Options{Level: "error"})
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
		Output: os.Stdout,
	})

	if cfg.UsingDevSecret() {
		log.Warn().Msg("JWT_SECRET not set, using insecure development secret")
	}

	db := dbpkg.NewDB(cfg)
	redisClient := dbpkg.NewRedis(cfg)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, redisClient, cfg)

	log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
