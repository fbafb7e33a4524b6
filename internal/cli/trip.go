package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/tripline/internal/wire"
)

// TripCmd returns the trip command
func TripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Manage shipment trips",
		Long:  "Create trips, fulfill their legs, and follow which leg is currently active.",
	}

	cmd.AddCommand(tripCreateCmd())
	cmd.AddCommand(tripListCmd())
	cmd.AddCommand(tripShowCmd())
	cmd.AddCommand(tripFulfillCmd())
	cmd.AddCommand(tripReopenCmd())
	cmd.AddCommand(tripCancelCmd())
	cmd.AddCommand(tripDeleteCmd())
	cmd.AddCommand(tripEventsCmd())

	return cmd
}

func tripCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [reference]",
		Short: "Create a new trip",
		Long: `Create a new trip for a shipment reference.

Without --legs the trip follows the standard route:
  assigned_to_driver, carrier_accepted, started_for_pickup,
  in_transit, offloaded, delivered`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			legs, _ := cmd.Flags().GetStringSlice("legs")
			return wire.TripAdapter().Create(NewContext(), args[0], description, legs)
		},
	}
	cmd.Flags().StringP("description", "d", "", "Trip description")
	cmd.Flags().StringSlice("legs", nil, "Comma-separated leg statuses in route order")
	return cmd
}

func tripListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			return wire.TripAdapter().List(NewContext(), status)
		},
	}
	cmd.Flags().StringP("status", "s", "", "Filter by status (active, delivered, cancelled)")
	return cmd
}

func tripShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [trip-id]",
		Short: "Show trip details and leg progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.TripAdapter().Show(NewContext(), normalizeTripID(args[0]))
		},
	}
}

func tripFulfillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fulfill [trip-id] [leg]",
		Short: "Mark a trip leg as fulfilled",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.TripAdapter().Fulfill(NewContext(), normalizeTripID(args[0]), args[1])
		},
	}
}

func tripReopenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reopen [trip-id] [leg]",
		Short: "Reset a fulfilled trip leg to pending",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.TripAdapter().Reopen(NewContext(), normalizeTripID(args[0]), args[1])
		},
	}
}

func tripCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [trip-id]",
		Short: "Cancel an active trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.TripAdapter().Cancel(NewContext(), normalizeTripID(args[0]))
		},
	}
}

func tripDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [trip-id]",
		Short: "Delete a trip with its legs and events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.TripAdapter().Delete(NewContext(), normalizeTripID(args[0]))
		},
	}
}

func tripEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events [trip-id]",
		Short: "Show a trip's audit trail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.TripAdapter().Events(NewContext(), normalizeTripID(args[0]))
		},
	}
}

// normalizeTripID upper-cases IDs so "trip-001" finds TRIP-001.
func normalizeTripID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
