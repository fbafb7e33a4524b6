// Package cli provides CLI commands for the tripline application.
package cli

import (
	gocontext "context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/example/tripline/internal/config"
	"github.com/example/tripline/internal/ctxutil"
	"github.com/example/tripline/internal/db"
	"github.com/example/tripline/internal/wire"
)

var (
	// globalActor is recorded on trip events for this invocation.
	globalActor string
	logger      = zap.NewNop()
)

// Bootstrap loads configuration and builds the logger for this invocation.
// Should be called once at CLI startup in PersistentPreRunE.
func Bootstrap(verbose bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadOrDefault(cwd)
	if err != nil {
		return err
	}
	globalActor = cfg.Actor
	if cfg.DBPath != "" {
		db.SetPath(cfg.DBPath)
	}

	logger, err = newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	wire.SetLogger(logger)

	return nil
}

// Shutdown flushes the logger and closes the database.
// Should be called in PersistentPostRun.
func Shutdown() {
	_ = logger.Sync()
	_ = db.Close()
}

// NewContext creates a context.Background() with the current actor embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() gocontext.Context {
	return ctxutil.WithActor(gocontext.Background(), globalActor)
}

// newLogger builds a production logger on stderr. Only warnings are shown
// unless verbose is set, so normal command output stays readable.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
