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

// Package logger provides centralized logging configuration for the QR
// render service, based on LOG_ENV (dev/prod) and LOG_LEVEL
// (debug/info/warn/error).
package logger

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. Call InitLogger before use; components
// receive it by injection so tests can substitute their own.
var Logger *zap.Logger

var initOnce sync.Once

var levelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// InitLogger initializes the logger. Production (LOG_ENV=prod) uses JSON
// output for structured log parsing; anything else uses the human-readable
// development format.
func InitLogger() *zap.Logger {
	initOnce.Do(func() {
		logEnv := os.Getenv("LOG_ENV")
		level := getLogLevelFromEnv()

		var cfg zap.Config
		if logEnv == "prod" {
			cfg = zap.NewProductionConfig()
		} else {
			cfg = zap.NewDevelopmentConfig()
		}
		cfg.Level = zap.NewAtomicLevelAt(level)

		logger, err := cfg.Build()
		if err != nil {
			logger = zap.NewNop()
		}
		Logger = logger

		Logger.Info("Logger initialized",
			zap.String("LOG_ENV", logEnv),
			zap.String("LOG_LEVEL", level.String()),
		)
	})
	return Logger
}

// Sync flushes any buffered log entries. Call it via defer from main.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// getLogLevelFromEnv parses LOG_LEVEL, defaulting to info.
func getLogLevelFromEnv() zapcore.Level {
	if level, ok := levelMap[strings.ToLower(os.Getenv("LOG_LEVEL"))]; ok {
		return level
	}
	return zapcore.InfoLevel
}
