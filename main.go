package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/padraicbc/gridapi/compose"
	"github.com/padraicbc/gridapi/config"
	"github.com/padraicbc/gridapi/db"
	"github.com/padraicbc/gridapi/f1api"
	"github.com/padraicbc/gridapi/handlers"
	applog "github.com/padraicbc/gridapi/logger"
	mw "github.com/padraicbc/gridapi/middleware"
	"github.com/padraicbc/gridapi/store"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	bdb := db.Setup(cfg)
	defer bdb.Close()

	if err := db.CreateTables(context.Background(), bdb); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}

	contentStore := store.New(bdb)
	images, err := store.NewImageStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		logger.Fatal("image store setup failed", zap.Error(err))
	}

	stats := f1api.New(cfg.F1APIURL, logger)
	composer := compose.New(cfg.Season, stats, contentStore, compose.DefaultLapCounts, logger)

	h := handlers.New(bdb, composer, contentStore, images, cfg.JWTKey())

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))

	// Public
	e.POST("/api/signin", h.Signin)
	e.GET("/api/home", h.Home)
	e.GET("/api/drivers", h.Drivers)
	e.GET("/api/teams", h.Teams)
	e.GET("/api/circuits", h.Circuits)
	e.GET("/api/schedule", h.Schedule)
	e.GET("/api/standings", h.Standings)
	e.GET("/api/results", h.Results)
	e.GET("/api/news", h.News)
	e.GET("/api/news/:id", h.NewsDetail)

	// Uploaded blobs, publicly resolvable
	e.Static("/media", cfg.MediaDir)

	// Protected – require valid JWT in Authorization header
	admin := e.Group("/api/admin", mw.JWT(cfg.JWTKey()))
	admin.GET("/news", h.AdminListNews)
	admin.POST("/news", h.CreateNews)
	admin.PUT("/news/:id", h.UpdateNews)
	admin.DELETE("/news/:id", h.DeleteNews)
	admin.GET("/drivers/:id", h.GetDriverMedia)
	admin.PUT("/drivers/:id", h.SaveDriverMedia)
	admin.POST("/images", h.UploadImage)

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
