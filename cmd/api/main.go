package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/merakistudio/interior-api/internal/cache"
	"github.com/merakistudio/interior-api/internal/config"
	"github.com/merakistudio/interior-api/internal/db"
	"github.com/merakistudio/interior-api/internal/middleware"
	"github.com/merakistudio/interior-api/internal/routes"
)

func main() {
	cfg := config.Load()

	setupLogger(cfg.LogLevel)

	store := db.Connect(cfg)
	readCache := cache.New(cfg)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL))

	if err := routes.RegisterRoutes(r, store, readCache, cfg); err != nil {
		log.Fatal().Err(err).Msg("route setup failed")
	}

	log.Info().Str("addr", cfg.Addr()).Msg("server listening")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
