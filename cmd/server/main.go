package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"phonebook-service/internal/adapters/primary/http/handlers"
	"phonebook-service/internal/adapters/primary/http/middleware"
	"phonebook-service/internal/config"
	"phonebook-service/internal/core/services"
	"phonebook-service/internal/logging"
	"phonebook-service/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logging.Init(cfg.Logger, nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := storage.Open(ctx, *cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer closeRepo()

	phonebookSvc := services.NewPhonebookService(repo)
	phonebookSvc.RefreshMetrics(ctx)

	h := handlers.New(phonebookSvc)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/phonebook")
	h.RegisterRoutes(api)

	router.GET("/healthz", func(c *gin.Context) {
		if _, err := repo.Count(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server forced shutdown: %v", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
