// Package trip contains the pure business logic for shipment trips.
// Nothing here performs I/O; callers own the leg slices passed in and
// every function only reads them.
package trip

// Leg is one stage of a trip and whether it has been completed.
type Leg struct {
	Name      Status
	Fulfilled bool
}

// LegProgress pairs a leg with its active indicator.
type LegProgress struct {
	Leg
	Active bool
}

// IsActive reports whether the leg named current should be shown as the
// currently active stage of the trip described by legs.
//
// Rules:
//   - started_for_pickup: own leg fulfilled and in_transit not yet fulfilled
//   - in_transit: own leg fulfilled and offloaded not yet fulfilled
//   - delivered: own leg not fulfilled and offloaded fulfilled
//   - assigned_to_driver: carrier_accepted fulfilled and either the own leg
//     is not fulfilled or started_for_pickup is still pending
//   - any other status is never active
//
// Missing legs count as "not found" and never cause an error.
func IsActive(current Status, legs []Leg) bool {
	own, _ := find(legs, current)
	ownFulfilled := own.Fulfilled

	switch current {
	case StatusStartedForPickup:
		if ownFulfilled {
			return !isFulfilled(legs, StatusInTransit)
		}
	case StatusInTransit:
		if ownFulfilled {
			return !isFulfilled(legs, StatusOffloaded)
		}
	case StatusDelivered:
		if !ownFulfilled {
			return isFulfilled(legs, StatusOffloaded)
		}
	case StatusDriverAssigned:
		carrierAccepted := isFulfilled(legs, StatusCarrierAccepted)
		if !ownFulfilled && carrierAccepted {
			return true
		}
		return carrierAccepted && isUnfulfilled(legs, StatusStartedForPickup)
	}

	return false
}

// Progress evaluates the active indicator for every leg, preserving order.
func Progress(legs []Leg) []LegProgress {
	progress := make([]LegProgress, len(legs))
	for i, leg := range legs {
		progress[i] = LegProgress{
			Leg:    leg,
			Active: IsActive(leg.Name, legs),
		}
	}
	return progress
}

// isFulfilled reports whether some leg named s is fulfilled.
func isFulfilled(legs []Leg, s Status) bool {
	return hasLeg(legs, s, true)
}

// isUnfulfilled reports whether some leg named s is still pending.
func isUnfulfilled(legs []Leg, s Status) bool {
	return hasLeg(legs, s, false)
}

func hasLeg(legs []Leg, s Status, fulfilled bool) bool {
	for _, leg := range legs {
		if leg.Name == s && leg.Fulfilled == fulfilled {
			return true
		}
	}
	return false
}

// find returns the first leg named s. Trips hold at most one leg per status.
func find(legs []Leg, s Status) (Leg, bool) {
	for _, leg := range legs {
		if leg.Name == s {
			return leg, true
		}
	}
	return Leg{}, false
}
