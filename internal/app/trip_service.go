package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	coretrip "github.com/example/tripline/internal/core/trip"
	"github.com/example/tripline/internal/ctxutil"
	"github.com/example/tripline/internal/ports/primary"
	"github.com/example/tripline/internal/ports/secondary"
)

// Trip event actions recorded in the audit trail.
const (
	EventActionCreate  = "create"
	EventActionFulfill = "fulfill"
	EventActionReopen  = "reopen"
	EventActionCancel  = "cancel"
)

// TripServiceImpl implements the TripService interface.
type TripServiceImpl struct {
	tripRepo  secondary.TripRepository
	legRepo   secondary.LegRepository
	eventRepo secondary.TripEventRepository
	logger    *zap.Logger
}

// NewTripService creates a new TripService with injected dependencies.
// A nil logger is replaced with a no-op logger.
func NewTripService(
	tripRepo secondary.TripRepository,
	legRepo secondary.LegRepository,
	eventRepo secondary.TripEventRepository,
	logger *zap.Logger,
) *TripServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TripServiceImpl{
		tripRepo:  tripRepo,
		legRepo:   legRepo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// CreateTrip creates a new trip with its legs.
func (s *TripServiceImpl) CreateTrip(ctx context.Context, req primary.CreateTripRequest) (*primary.CreateTripResponse, error) {
	legs, err := parseLegList(req.Legs)
	if err != nil {
		return nil, err
	}

	if result := coretrip.CanCreateTrip(coretrip.CreateTripContext{
		Reference: req.Reference,
		Legs:      legs,
	}); !result.Allowed {
		return nil, result.Error()
	}

	nextID, err := s.tripRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate trip ID: %w", err)
	}

	record := &secondary.TripRecord{
		ID:          nextID,
		Reference:   req.Reference,
		Description: req.Description,
		Status:      coretrip.TripStatusActive,
	}
	if err := s.tripRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	names := make([]string, len(legs))
	for i, l := range legs {
		names[i] = string(l)
	}
	if err := s.legRepo.CreateBatch(ctx, nextID, names); err != nil {
		return nil, fmt.Errorf("failed to create legs: %w", err)
	}

	s.recordEvent(ctx, nextID, EventActionCreate, "")
	s.logger.Info("trip created",
		zap.String("trip_id", nextID),
		zap.String("reference", req.Reference),
		zap.Int("legs", len(legs)),
	)

	created, err := s.tripRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created trip: %w", err)
	}

	return &primary.CreateTripResponse{
		TripID: created.ID,
		Trip:   recordToTrip(created),
	}, nil
}

// GetTrip retrieves a trip by ID.
func (s *TripServiceImpl) GetTrip(ctx context.Context, tripID string) (*primary.Trip, error) {
	record, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return recordToTrip(record), nil
}

// ListTrips lists trips with optional filters.
func (s *TripServiceImpl) ListTrips(ctx context.Context, filters primary.TripFilters) ([]*primary.Trip, error) {
	records, err := s.tripRepo.List(ctx, secondary.TripFilters{Status: filters.Status})
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	trips := make([]*primary.Trip, len(records))
	for i, r := range records {
		trips[i] = recordToTrip(r)
	}
	return trips, nil
}

// GetProgress returns a trip with each leg's active indicator.
func (s *TripServiceImpl) GetProgress(ctx context.Context, tripID string) (*primary.TripProgress, error) {
	record, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	legRecords, err := s.legRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get legs for trip: %w", err)
	}

	progress := coretrip.Progress(recordsToLegs(legRecords))
	views := make([]primary.LegView, len(progress))
	for i, p := range progress {
		views[i] = primary.LegView{
			Name:        string(p.Name),
			Label:       p.Name.Label(),
			Fulfilled:   p.Fulfilled,
			Active:      p.Active,
			FulfilledAt: legRecords[i].FulfilledAt,
		}
	}

	return &primary.TripProgress{
		Trip: recordToTrip(record),
		Legs: views,
	}, nil
}

// FulfillLeg marks a leg as fulfilled and re-derives the trip status.
func (s *TripServiceImpl) FulfillLeg(ctx context.Context, tripID, leg string) error {
	return s.transitionLeg(ctx, tripID, leg, true)
}

// ReopenLeg resets a fulfilled leg to pending and re-derives the trip status.
func (s *TripServiceImpl) ReopenLeg(ctx context.Context, tripID, leg string) error {
	return s.transitionLeg(ctx, tripID, leg, false)
}

func (s *TripServiceImpl) transitionLeg(ctx context.Context, tripID, leg string, fulfilled bool) error {
	status, err := coretrip.ParseStatus(leg)
	if err != nil {
		return err
	}

	guardCtx := coretrip.LegTransitionContext{
		TripID: tripID,
		Leg:    status,
	}

	record, err := s.tripRepo.GetByID(ctx, tripID)
	switch {
	case errors.Is(err, secondary.ErrTripNotFound):
		// Guard reports the missing trip.
	case err != nil:
		return err
	default:
		guardCtx.TripExists = true
		guardCtx.TripStatus = record.Status

		legRecords, err := s.legRepo.ListByTrip(ctx, tripID)
		if err != nil {
			return fmt.Errorf("failed to get legs for trip: %w", err)
		}
		guardCtx.Legs = recordsToLegs(legRecords)
	}

	guard, action := coretrip.CanReopenLeg, EventActionReopen
	if fulfilled {
		guard, action = coretrip.CanFulfillLeg, EventActionFulfill
	}
	if result := guard(guardCtx); !result.Allowed {
		return result.Error()
	}

	if err := s.legRepo.SetFulfilled(ctx, tripID, string(status), fulfilled); err != nil {
		return err
	}
	s.recordEvent(ctx, tripID, action, string(status))

	// Re-derive the trip status from the updated legs
	updated := make([]coretrip.Leg, len(guardCtx.Legs))
	for i, l := range guardCtx.Legs {
		if l.Name == status {
			l.Fulfilled = fulfilled
		}
		updated[i] = l
	}
	newStatus := coretrip.DeriveTripStatus(updated)
	if newStatus != record.Status {
		if err := s.tripRepo.UpdateStatus(ctx, tripID, newStatus, newStatus == coretrip.TripStatusDelivered); err != nil {
			return err
		}
		s.logger.Info("trip status changed",
			zap.String("trip_id", tripID),
			zap.String("from", record.Status),
			zap.String("to", newStatus),
		)
	}

	s.logger.Debug("leg updated",
		zap.String("trip_id", tripID),
		zap.String("leg", string(status)),
		zap.Bool("fulfilled", fulfilled),
	)
	return nil
}

// CancelTrip cancels an active trip.
func (s *TripServiceImpl) CancelTrip(ctx context.Context, tripID string) error {
	record, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return err
	}

	if result := coretrip.CanCancelTrip(coretrip.CancelTripContext{
		TripID:     tripID,
		TripStatus: record.Status,
	}); !result.Allowed {
		return result.Error()
	}

	if err := s.tripRepo.UpdateStatus(ctx, tripID, coretrip.TripStatusCancelled, false); err != nil {
		return err
	}
	s.recordEvent(ctx, tripID, EventActionCancel, "")
	s.logger.Info("trip cancelled", zap.String("trip_id", tripID))
	return nil
}

// DeleteTrip deletes a trip. Legs and events are removed by cascade.
func (s *TripServiceImpl) DeleteTrip(ctx context.Context, tripID string) error {
	if err := s.tripRepo.Delete(ctx, tripID); err != nil {
		return err
	}
	s.logger.Info("trip deleted", zap.String("trip_id", tripID))
	return nil
}

// ListEvents returns a trip's audit trail.
func (s *TripServiceImpl) ListEvents(ctx context.Context, tripID string) ([]*primary.TripEvent, error) {
	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		return nil, err
	}

	records, err := s.eventRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip events: %w", err)
	}

	events := make([]*primary.TripEvent, len(records))
	for i, r := range records {
		events[i] = &primary.TripEvent{
			ID:        r.ID,
			TripID:    r.TripID,
			Action:    r.Action,
			Leg:       r.Leg,
			Actor:     r.Actor,
			CreatedAt: r.CreatedAt,
		}
	}
	return events, nil
}

// recordEvent writes an audit entry. Failures are logged, never returned:
// the state change has already been committed.
func (s *TripServiceImpl) recordEvent(ctx context.Context, tripID, action, leg string) {
	id, err := s.eventRepo.GetNextID(ctx)
	if err == nil {
		err = s.eventRepo.Create(ctx, &secondary.TripEventRecord{
			ID:     id,
			TripID: tripID,
			Action: action,
			Leg:    leg,
			Actor:  ctxutil.ActorFromContext(ctx),
		})
	}
	if err != nil {
		s.logger.Warn("failed to record trip event",
			zap.String("trip_id", tripID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func parseLegList(raw []string) ([]coretrip.Status, error) {
	if len(raw) == 0 {
		return coretrip.Statuses(), nil
	}

	legs := make([]coretrip.Status, len(raw))
	for i, r := range raw {
		status, err := coretrip.ParseStatus(r)
		if err != nil {
			return nil, err
		}
		legs[i] = status
	}
	return legs, nil
}

func recordsToLegs(records []*secondary.LegRecord) []coretrip.Leg {
	legs := make([]coretrip.Leg, len(records))
	for i, r := range records {
		legs[i] = coretrip.Leg{
			Name:      coretrip.Status(r.Name),
			Fulfilled: r.Fulfilled,
		}
	}
	return legs
}

func recordToTrip(r *secondary.TripRecord) *primary.Trip {
	return &primary.Trip{
		ID:          r.ID,
		Reference:   r.Reference,
		Description: r.Description,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		DeliveredAt: r.DeliveredAt,
	}
}
