package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "resume-analyzer/docs" // Swagger docs
	"resume-analyzer/internal/api"
	"resume-analyzer/internal/config"
	"resume-analyzer/internal/logger"
)

// @title AI Resume Analyzer API
// @version 1.0
// @description Web service that analyzes resumes: skills, experience highlights, quality score, feedback and recommendations

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api/v1

func main() {
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatal("logger init:", err)
	}
	defer zlog.Sync()

	apiSrv := api.NewAPI(context.Background(), cfg, zlog)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second, // file uploads
		WriteTimeout: 2 * time.Minute,  // analysis incl. LLM entity extraction
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			zlog.Warn("server shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	zlog.Info("API server listening", zap.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal("server failed", zap.Error(err))
	}

	<-idleConnsClosed
}
