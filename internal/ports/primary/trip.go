// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI drives the application.
package primary

import "context"

// TripService defines the primary port for trip operations.
type TripService interface {
	// CreateTrip creates a new trip. An empty leg list means the standard route.
	CreateTrip(ctx context.Context, req CreateTripRequest) (*CreateTripResponse, error)

	// GetTrip retrieves a trip by ID.
	GetTrip(ctx context.Context, tripID string) (*Trip, error)

	// ListTrips lists trips with optional filters.
	ListTrips(ctx context.Context, filters TripFilters) ([]*Trip, error)

	// GetProgress returns a trip with every leg and its active indicator.
	GetProgress(ctx context.Context, tripID string) (*TripProgress, error)

	// FulfillLeg marks a leg of the trip as fulfilled.
	FulfillLeg(ctx context.Context, tripID, leg string) error

	// ReopenLeg resets a fulfilled leg to pending.
	ReopenLeg(ctx context.Context, tripID, leg string) error

	// CancelTrip cancels an active trip.
	CancelTrip(ctx context.Context, tripID string) error

	// DeleteTrip deletes a trip together with its legs and events.
	DeleteTrip(ctx context.Context, tripID string) error

	// ListEvents returns the audit trail of a trip, oldest first.
	ListEvents(ctx context.Context, tripID string) ([]*TripEvent, error)
}

// CreateTripRequest contains parameters for creating a trip.
type CreateTripRequest struct {
	Reference   string
	Description string
	Legs        []string // Optional - leg statuses in route order
}

// CreateTripResponse contains the result of creating a trip.
type CreateTripResponse struct {
	TripID string
	Trip   *Trip
}

// Trip represents a trip at the port boundary.
// Status lifecycle: active → delivered, or active → cancelled
type Trip struct {
	ID          string
	Reference   string
	Description string
	Status      string
	CreatedAt   string
	UpdatedAt   string
	DeliveredAt string
}

// TripFilters contains filter options for listing trips.
type TripFilters struct {
	Status string
}

// LegView is a single leg as shown in a progress display.
type LegView struct {
	Name        string
	Label       string
	Fulfilled   bool
	Active      bool
	FulfilledAt string
}

// TripProgress is a trip together with its leg progress.
type TripProgress struct {
	Trip *Trip
	Legs []LegView
}

// ActiveLeg returns the first active leg, or nil when none is active.
func (p *TripProgress) ActiveLeg() *LegView {
	for i := range p.Legs {
		if p.Legs[i].Active {
			return &p.Legs[i]
		}
	}
	return nil
}

// TripEvent is one entry of a trip's audit trail.
type TripEvent struct {
	ID        string
	TripID    string
	Action    string
	Leg       string
	Actor     string
	CreatedAt string
}
