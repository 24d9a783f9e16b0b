// @title Interview Prep API
// @version 1.0
// @description Chat-style interview preparation assistant: filtered interview questions by company, experience, category and difficulty.
// @host localhost:8090
// @BasePath /api
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interview-prep/internal/adapter"
	"interview-prep/internal/cache"
	"interview-prep/internal/config"
	"interview-prep/internal/database"
	"interview-prep/internal/domain"
	"interview-prep/internal/handler"
	"interview-prep/internal/logger"
	"interview-prep/internal/middleware"
	"interview-prep/internal/repository"
	"interview-prep/internal/service"
	"interview-prep/internal/store"
	"interview-prep/internal/websearch"

	_ "interview-prep/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Question database. A failed load is not fatal: the store
	// serves an empty snapshot and every lookup degrades to an
	// unresolvable-company error.
	st := store.New(cfg.Database.QuestionsPath)
	if err := st.Load(); err != nil {
		appLogger.Warn("Starting with empty question database", zap.Error(err))
	}

	// Supplementary "web search" provider, optionally fronted by a
	// redis cache.
	var provider domain.SupplementaryProvider
	if cfg.Search.Enabled {
		provider = websearch.NewMultiProvider(websearch.NewTemplateProvider())
		if cfg.Redis.Enabled {
			client, err := cache.NewRedisClient(cfg.Redis)
			if err != nil {
				appLogger.Warn("Redis unavailable, supplementary cache disabled", zap.Error(err))
			} else {
				provider = websearch.NewCachedProvider(provider, adapter.NewRedisCacheAdapter(client), cfg.Search.CacheTTL)
			}
		}
	}

	retrievalService := service.NewRetrievalService(
		st,
		cfg.Matcher.Threshold,
		provider,
		cfg.Search.MaxResults,
		cfg.Search.DefaultRole,
	)

	// Lookup history, best effort: if the SQLite store cannot be
	// opened or migrated the API runs without history.
	var historyService service.HistoryService
	db, err := database.NewSQLiteDB(cfg.Database.HistoryPath)
	if err != nil {
		appLogger.Warn("Lookup history disabled", zap.Error(err))
	} else {
		defer db.Close()
		if err := database.RunMigrations(db); err != nil {
			appLogger.Warn("Lookup history disabled", zap.Error(err))
		} else {
			historyService = service.NewHistoryService(repository.NewSQLXLookupRepository(db))
		}
	}

	h := handler.NewRetrievalHandler(retrievalService, historyService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestLogger())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Get("/questions", h.GetQuestions)
	api.Get("/companies", h.ListCompanies)
	api.Get("/companies/resolve", h.ResolveCompany)
	api.Get("/categories", h.ListCategories)
	api.Get("/difficulties", h.ListDifficulties)
	api.Get("/sources", h.ListSources)
	api.Get("/history", h.GetHistory)
	api.Post("/admin/reload", h.ReloadDatabase)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		appLogger.Info("Starting server", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown failed", zap.Error(err))
	}
}
