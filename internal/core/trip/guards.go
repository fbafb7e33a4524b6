package trip

import (
	"fmt"
	"strings"
)

// Trip status constants.
const (
	TripStatusActive    = "active"
	TripStatusDelivered = "delivered"
	TripStatusCancelled = "cancelled"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CreateTripContext provides context for trip creation guards.
type CreateTripContext struct {
	Reference string
	Legs      []Status
}

// LegTransitionContext provides context for fulfill/reopen guards.
type LegTransitionContext struct {
	TripID     string
	TripExists bool
	TripStatus string
	Leg        Status
	Legs       []Leg
}

// CancelTripContext provides context for cancellation guards.
type CancelTripContext struct {
	TripID     string
	TripStatus string
}

// CanCreateTrip evaluates whether a trip can be created.
// Rules:
// - Reference must not be empty
// - Each status may appear at most once in the leg list
func CanCreateTrip(ctx CreateTripContext) GuardResult {
	if strings.TrimSpace(ctx.Reference) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "trip reference is required",
		}
	}

	seen := make(map[Status]bool, len(ctx.Legs))
	var duplicates []string
	for _, s := range ctx.Legs {
		if seen[s] {
			duplicates = append(duplicates, string(s))
			continue
		}
		seen[s] = true
	}
	if len(duplicates) > 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("duplicate legs not allowed: %s", strings.Join(duplicates, ", ")),
		}
	}

	return GuardResult{Allowed: true}
}

// CanFulfillLeg evaluates whether a leg can be marked fulfilled.
// Rules:
// - Trip must exist and not be cancelled
// - Leg must be part of the trip
// - Leg must not already be fulfilled
func CanFulfillLeg(ctx LegTransitionContext) GuardResult {
	if result := checkLegTransition(ctx); !result.Allowed {
		return result
	}

	if isFulfilled(ctx.Legs, ctx.Leg) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("leg %s of trip %s is already fulfilled", ctx.Leg, ctx.TripID),
		}
	}

	return GuardResult{Allowed: true}
}

// CanReopenLeg evaluates whether a fulfilled leg can be reset to pending.
// Rules:
// - Trip must exist and not be cancelled
// - Leg must be part of the trip
// - Leg must currently be fulfilled
func CanReopenLeg(ctx LegTransitionContext) GuardResult {
	if result := checkLegTransition(ctx); !result.Allowed {
		return result
	}

	if !isFulfilled(ctx.Legs, ctx.Leg) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("leg %s of trip %s is not fulfilled", ctx.Leg, ctx.TripID),
		}
	}

	return GuardResult{Allowed: true}
}

// CanCancelTrip evaluates whether a trip can be cancelled.
// Rules:
// - Trip must not already be cancelled or delivered
func CanCancelTrip(ctx CancelTripContext) GuardResult {
	switch ctx.TripStatus {
	case TripStatusCancelled:
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("trip %s is already cancelled", ctx.TripID),
		}
	case TripStatusDelivered:
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot cancel delivered trip %s", ctx.TripID),
		}
	}

	return GuardResult{Allowed: true}
}

// DeriveTripStatus computes the trip status implied by its legs.
// Cancellation is never derived; it is set explicitly.
func DeriveTripStatus(legs []Leg) string {
	if isFulfilled(legs, StatusDelivered) {
		return TripStatusDelivered
	}
	return TripStatusActive
}

func checkLegTransition(ctx LegTransitionContext) GuardResult {
	if !ctx.TripExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("trip %s not found", ctx.TripID),
		}
	}

	if ctx.TripStatus == TripStatusCancelled {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("trip %s is cancelled", ctx.TripID),
		}
	}

	if _, ok := find(ctx.Legs, ctx.Leg); !ok {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("trip %s has no %s leg", ctx.TripID, ctx.Leg),
		}
	}

	return GuardResult{Allowed: true}
}
