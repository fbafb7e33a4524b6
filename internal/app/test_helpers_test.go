package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/example/tripline/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

var (
	_ secondary.TripRepository      = (*mockTripRepository)(nil)
	_ secondary.LegRepository       = (*mockLegRepository)(nil)
	_ secondary.TripEventRepository = (*mockTripEventRepository)(nil)
)

// mockTripRepository implements secondary.TripRepository for testing.
type mockTripRepository struct {
	trips           map[string]*secondary.TripRecord
	nextID          int
	createErr       error
	getErr          error
	updateStatusErr error
}

func newMockTripRepository() *mockTripRepository {
	return &mockTripRepository{
		trips: make(map[string]*secondary.TripRecord),
	}
}

func (m *mockTripRepository) Create(ctx context.Context, trip *secondary.TripRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.trips[trip.ID] = trip
	return nil
}

func (m *mockTripRepository) GetByID(ctx context.Context, id string) (*secondary.TripRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if trip, ok := m.trips[id]; ok {
		return trip, nil
	}
	return nil, fmt.Errorf("trip %s: %w", id, secondary.ErrTripNotFound)
}

func (m *mockTripRepository) List(ctx context.Context, filters secondary.TripFilters) ([]*secondary.TripRecord, error) {
	var result []*secondary.TripRecord
	for _, t := range m.trips {
		if filters.Status != "" && t.Status != filters.Status {
			continue
		}
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockTripRepository) UpdateStatus(ctx context.Context, id, status string, setDelivered bool) error {
	if m.updateStatusErr != nil {
		return m.updateStatusErr
	}
	trip, ok := m.trips[id]
	if !ok {
		return fmt.Errorf("trip %s: %w", id, secondary.ErrTripNotFound)
	}
	trip.Status = status
	trip.DeliveredAt = ""
	if setDelivered {
		trip.DeliveredAt = "2026-01-20T10:00:00Z"
	}
	return nil
}

func (m *mockTripRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.trips[id]; !ok {
		return fmt.Errorf("trip %s: %w", id, secondary.ErrTripNotFound)
	}
	delete(m.trips, id)
	return nil
}

func (m *mockTripRepository) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("TRIP-%03d", m.nextID), nil
}

// mockLegRepository implements secondary.LegRepository for testing.
type mockLegRepository struct {
	legs      map[string][]*secondary.LegRecord
	createErr error
}

func newMockLegRepository() *mockLegRepository {
	return &mockLegRepository{
		legs: make(map[string][]*secondary.LegRecord),
	}
}

func (m *mockLegRepository) CreateBatch(ctx context.Context, tripID string, names []string) error {
	if m.createErr != nil {
		return m.createErr
	}
	for i, n := range names {
		m.legs[tripID] = append(m.legs[tripID], &secondary.LegRecord{
			TripID:   tripID,
			Name:     n,
			Position: i,
		})
	}
	return nil
}

func (m *mockLegRepository) ListByTrip(ctx context.Context, tripID string) ([]*secondary.LegRecord, error) {
	return m.legs[tripID], nil
}

func (m *mockLegRepository) SetFulfilled(ctx context.Context, tripID, name string, fulfilled bool) error {
	for _, l := range m.legs[tripID] {
		if l.Name == name {
			l.Fulfilled = fulfilled
			return nil
		}
	}
	return errors.New("leg not found")
}

// mockTripEventRepository implements secondary.TripEventRepository for testing.
type mockTripEventRepository struct {
	events    []*secondary.TripEventRecord
	createErr error
}

func newMockTripEventRepository() *mockTripEventRepository {
	return &mockTripEventRepository{}
}

func (m *mockTripEventRepository) Create(ctx context.Context, event *secondary.TripEventRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockTripEventRepository) ListByTrip(ctx context.Context, tripID string) ([]*secondary.TripEventRecord, error) {
	var result []*secondary.TripEventRecord
	for _, e := range m.events {
		if e.TripID == tripID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockTripEventRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("EVT-%04d", len(m.events)+1), nil
}
