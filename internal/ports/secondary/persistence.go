// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrTripNotFound is returned by repositories when a trip does not exist.
var ErrTripNotFound = errors.New("trip not found")

// TripRepository defines the secondary port for trip persistence.
type TripRepository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *TripRecord) error

	// GetByID retrieves a trip by its ID.
	GetByID(ctx context.Context, id string) (*TripRecord, error)

	// List retrieves trips matching the given filters.
	List(ctx context.Context, filters TripFilters) ([]*TripRecord, error)

	// UpdateStatus sets a trip's status. setDelivered stamps delivered_at.
	UpdateStatus(ctx context.Context, id, status string, setDelivered bool) error

	// Delete removes a trip from persistence.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available trip ID.
	GetNextID(ctx context.Context) (string, error)
}

// TripRecord represents a trip as stored in persistence.
type TripRecord struct {
	ID          string
	Reference   string
	Description string
	Status      string
	CreatedAt   string
	UpdatedAt   string
	DeliveredAt string
}

// TripFilters contains filter options for querying trips.
type TripFilters struct {
	Status string
}

// LegRepository defines the secondary port for trip leg persistence.
type LegRepository interface {
	// CreateBatch persists the legs of a trip in route order.
	CreateBatch(ctx context.Context, tripID string, names []string) error

	// ListByTrip retrieves a trip's legs in route order.
	ListByTrip(ctx context.Context, tripID string) ([]*LegRecord, error)

	// SetFulfilled updates the fulfilled flag of one leg.
	SetFulfilled(ctx context.Context, tripID, name string, fulfilled bool) error
}

// LegRecord represents a trip leg as stored in persistence.
type LegRecord struct {
	TripID      string
	Name        string
	Position    int
	Fulfilled   bool
	FulfilledAt string
}

// TripEventRepository defines the secondary port for the trip audit trail.
type TripEventRepository interface {
	// Create persists a new event.
	Create(ctx context.Context, event *TripEventRecord) error

	// ListByTrip retrieves a trip's events, oldest first.
	ListByTrip(ctx context.Context, tripID string) ([]*TripEventRecord, error)

	// GetNextID returns the next available event ID.
	GetNextID(ctx context.Context) (string, error)
}

// TripEventRecord represents an audit entry as stored in persistence.
type TripEventRecord struct {
	ID        string
	TripID    string
	Action    string // "create", "fulfill", "reopen", "cancel"
	Leg       string // Empty for trip-level actions
	Actor     string
	CreatedAt string
}

// LegSource loads a leg snapshot from outside the ledger, such as a file
// exported from a carrier API.
type LegSource interface {
	Load(ctx context.Context, path string) ([]LegSnapshot, error)
}

// LegSnapshot is a leg as described by an external source.
type LegSnapshot struct {
	Name      string
	Fulfilled bool
}
