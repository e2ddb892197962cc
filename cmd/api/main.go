// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package main is the entry point for the QR render service. The HTTP
// service generates QR codes from text in multiple visual styles (basic,
// colored, vector, high quality) and output formats (PNG, JPEG, WEBP, SVG),
// with optional background transparency.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/config"
	"github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/logger"
	"github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/qr"
	transport "github.com/wso2-open-operations/common-tools/operations/qr-render-service/internal/transport/http"
)

func main() {
	log := logger.InitLogger()
	defer logger.Sync()

	// .env is optional in production.
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()

	svc := qr.NewService(log, cfg.BatchWorkers)
	h := transport.NewHandler(svc, log, cfg.MaxBodySize, cfg.MaxBatchItems)

	mux := http.NewServeMux()
	mux.HandleFunc("/generate", h.Generate)
	mux.HandleFunc("/generate/batch", h.GenerateBatch)
	mux.HandleFunc("/validate", h.Validate)
	mux.HandleFunc("/formats", h.Formats)
	mux.HandleFunc("/health", h.HealthCheck)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           transport.RequestLoggingMiddleware(log)(mux),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Starting server",
			zap.String("port", cfg.Port),
			zap.Int("batch_workers", cfg.BatchWorkers),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	log.Info("Server exited")
}
