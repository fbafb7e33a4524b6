// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting, but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/tripline/internal/ports/primary"
)

var (
	activeColor    = color.New(color.FgHiMagenta, color.Bold)
	fulfilledColor = color.New(color.FgHiGreen)
	pendingColor   = color.New(color.FgHiBlack)
)

// TripAdapter is a thin adapter that translates CLI operations to TripService calls.
// It depends only on the TripService interface, enabling easy testing with mocks.
type TripAdapter struct {
	service primary.TripService
	out     io.Writer
}

// NewTripAdapter creates a new TripAdapter with the given service.
func NewTripAdapter(service primary.TripService, out io.Writer) *TripAdapter {
	return &TripAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a new trip.
func (a *TripAdapter) Create(ctx context.Context, reference, description string, legs []string) error {
	resp, err := a.service.CreateTrip(ctx, primary.CreateTripRequest{
		Reference:   reference,
		Description: description,
		Legs:        legs,
	})
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Created trip %s: %s\n", resp.TripID, resp.Trip.Reference)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Next steps:")
	fmt.Fprintf(a.out, "   tripline trip fulfill %s carrier_accepted\n", resp.TripID)
	return nil
}

// List lists trips with an optional status filter.
func (a *TripAdapter) List(ctx context.Context, status string) error {
	trips, err := a.service.ListTrips(ctx, primary.TripFilters{Status: status})
	if err != nil {
		return fmt.Errorf("failed to list trips: %w", err)
	}

	if len(trips) == 0 {
		fmt.Fprintln(a.out, "No trips found.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREFERENCE\tSTATUS\tCREATED")
	fmt.Fprintln(w, "--\t---------\t------\t-------")
	for _, t := range trips {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Reference, t.Status, t.CreatedAt)
	}
	return w.Flush()
}

// Show displays a trip and its leg progress. The active leg is highlighted.
func (a *TripAdapter) Show(ctx context.Context, tripID string) error {
	progress, err := a.service.GetProgress(ctx, tripID)
	if err != nil {
		return fmt.Errorf("failed to get trip: %w", err)
	}

	trip := progress.Trip
	fmt.Fprintf(a.out, "Trip: %s\n", trip.ID)
	fmt.Fprintf(a.out, "Reference: %s\n", trip.Reference)
	if trip.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", trip.Description)
	}
	fmt.Fprintf(a.out, "Status: %s\n", trip.Status)
	fmt.Fprintf(a.out, "Created: %s\n", trip.CreatedAt)
	if trip.DeliveredAt != "" {
		fmt.Fprintf(a.out, "Delivered: %s\n", trip.DeliveredAt)
	}

	fmt.Fprintf(a.out, "\nLegs (%d):\n", len(progress.Legs))
	RenderLegs(a.out, progress.Legs)
	return nil
}

// RenderLegs writes one line per leg with its fulfilled/active markers.
func RenderLegs(out io.Writer, legs []primary.LegView) {
	for _, leg := range legs {
		icon := pendingColor.Sprint("○")
		if leg.Fulfilled {
			icon = fulfilledColor.Sprint("✓")
		}

		label := leg.Label
		if label == "" {
			label = leg.Name
		}

		marker := ""
		if leg.Active {
			label = activeColor.Sprint(label)
			marker = activeColor.Sprint(" ← active")
		}

		line := fmt.Sprintf("  %s %s [%s]%s", icon, label, leg.Name, marker)
		if leg.FulfilledAt != "" {
			line += fmt.Sprintf(" (%s)", leg.FulfilledAt)
		}
		fmt.Fprintln(out, line)
	}
}

// Fulfill marks a trip leg as fulfilled.
func (a *TripAdapter) Fulfill(ctx context.Context, tripID, leg string) error {
	if err := a.service.FulfillLeg(ctx, tripID, leg); err != nil {
		return fmt.Errorf("failed to fulfill leg: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Leg %s of trip %s fulfilled\n", leg, tripID)
	return a.printActive(ctx, tripID)
}

// Reopen resets a fulfilled trip leg to pending.
func (a *TripAdapter) Reopen(ctx context.Context, tripID, leg string) error {
	if err := a.service.ReopenLeg(ctx, tripID, leg); err != nil {
		return fmt.Errorf("failed to reopen leg: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Leg %s of trip %s reopened\n", leg, tripID)
	return a.printActive(ctx, tripID)
}

// Cancel cancels a trip.
func (a *TripAdapter) Cancel(ctx context.Context, tripID string) error {
	if err := a.service.CancelTrip(ctx, tripID); err != nil {
		return fmt.Errorf("failed to cancel trip: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Trip %s cancelled\n", tripID)
	return nil
}

// Delete deletes a trip.
func (a *TripAdapter) Delete(ctx context.Context, tripID string) error {
	if err := a.service.DeleteTrip(ctx, tripID); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Trip %s deleted\n", tripID)
	return nil
}

// Events lists a trip's audit trail.
func (a *TripAdapter) Events(ctx context.Context, tripID string) error {
	events, err := a.service.ListEvents(ctx, tripID)
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	if len(events) == 0 {
		fmt.Fprintln(a.out, "No events recorded.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tACTION\tLEG\tACTOR\tAT")
	fmt.Fprintln(w, "--\t------\t---\t-----\t--")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Action, dash(e.Leg), dash(e.Actor), e.CreatedAt)
	}
	return w.Flush()
}

func (a *TripAdapter) printActive(ctx context.Context, tripID string) error {
	progress, err := a.service.GetProgress(ctx, tripID)
	if err != nil {
		return fmt.Errorf("failed to get trip progress: %w", err)
	}

	if leg := progress.ActiveLeg(); leg != nil {
		fmt.Fprintf(a.out, "  Active: %s\n", activeColor.Sprint(leg.Label))
	} else {
		fmt.Fprintf(a.out, "  Status: %s\n", strings.ToUpper(progress.Trip.Status))
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
