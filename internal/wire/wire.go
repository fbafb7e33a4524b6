// Package wire provides dependency injection for the tripline application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/tripline/internal/adapters/cli"
	"github.com/example/tripline/internal/adapters/filesystem"
	"github.com/example/tripline/internal/adapters/sqlite"
	"github.com/example/tripline/internal/app"
	"github.com/example/tripline/internal/db"
	"github.com/example/tripline/internal/ports/primary"
)

var (
	tripService primary.TripService
	logger      = zap.NewNop()
	once        sync.Once
)

// SetLogger sets the logger handed to services. Must be called before the
// first service is requested.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// TripService returns the singleton TripService instance.
func TripService() primary.TripService {
	once.Do(initServices)
	return tripService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	tripRepo := sqlite.NewTripRepository(database)
	legRepo := sqlite.NewLegRepository(database)
	eventRepo := sqlite.NewTripEventRepository(database)

	tripService = app.NewTripService(tripRepo, legRepo, eventRepo, logger.Named("trips"))
}

// TripAdapter returns a new TripAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func TripAdapter() *cliadapter.TripAdapter {
	return TripAdapterWithOutput(os.Stdout)
}

// TripAdapterWithOutput returns a new TripAdapter writing to the given output.
func TripAdapterWithOutput(out io.Writer) *cliadapter.TripAdapter {
	return cliadapter.NewTripAdapter(TripService(), out)
}

// IndicatorAdapter returns a new IndicatorAdapter writing to stdout.
// It reads leg files directly and never opens the database.
func IndicatorAdapter() *cliadapter.IndicatorAdapter {
	return IndicatorAdapterWithOutput(os.Stdout)
}

// IndicatorAdapterWithOutput returns a new IndicatorAdapter writing to the given output.
func IndicatorAdapterWithOutput(out io.Writer) *cliadapter.IndicatorAdapter {
	return cliadapter.NewIndicatorAdapter(filesystem.NewLegFileSource(), out)
}
