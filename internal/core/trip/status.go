package trip

import (
	"fmt"
	"strings"
)

// Status identifies one stage of a shipment trip.
type Status string

// Trip leg statuses, in standard route order.
const (
	StatusDriverAssigned   Status = "assigned_to_driver"
	StatusCarrierAccepted  Status = "carrier_accepted"
	StatusStartedForPickup Status = "started_for_pickup"
	StatusInTransit        Status = "in_transit"
	StatusOffloaded        Status = "offloaded"
	StatusDelivered        Status = "delivered"
)

var statusLabels = map[Status]string{
	StatusDriverAssigned:   "Driver assigned",
	StatusCarrierAccepted:  "Carrier accepted",
	StatusStartedForPickup: "Started for pickup",
	StatusInTransit:        "In transit",
	StatusOffloaded:        "Truck offloaded",
	StatusDelivered:        "Delivered",
}

// Statuses returns every leg status in standard route order.
// A new trip without an explicit leg list gets one leg per entry.
func Statuses() []Status {
	return []Status{
		StatusDriverAssigned,
		StatusCarrierAccepted,
		StatusStartedForPickup,
		StatusInTransit,
		StatusOffloaded,
		StatusDelivered,
	}
}

// ParseStatus converts user input into a Status.
// Matching is case-insensitive and accepts '-' or ' ' in place of '_'.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	status := Status(normalized)
	if !status.Valid() {
		return "", fmt.Errorf("unknown leg status %q (valid: %s)", s, validStatusList())
	}
	return status, nil
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns a human readable name for the status.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s Status) String() string {
	return string(s)
}

func validStatusList() string {
	names := make([]string, 0, len(statusLabels))
	for _, s := range Statuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
