// ====================================
// File: cmd/assetmath/main.go
// ====================================
package main

import (
	"go.uber.org/zap"

	"github.com/rovshanmuradov/assetmath/internal/cli"
)

func main() {
	// Console logger for the final error only; command logs go to the log file
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	logger, _ := cfg.Build()
	defer logger.Sync()

	if err := cli.Execute(); err != nil {
		logger.Fatal("Command failed", zap.Error(err))
	}
}
