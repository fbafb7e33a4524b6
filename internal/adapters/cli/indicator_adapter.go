package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	coretrip "github.com/example/tripline/internal/core/trip"
	"github.com/example/tripline/internal/ports/primary"
	"github.com/example/tripline/internal/ports/secondary"
)

// IndicatorAdapter evaluates active indicators for leg snapshots that live
// outside the ledger. No database is involved.
type IndicatorAdapter struct {
	source secondary.LegSource
	out    io.Writer
}

// NewIndicatorAdapter creates a new IndicatorAdapter reading from source.
func NewIndicatorAdapter(source secondary.LegSource, out io.Writer) *IndicatorAdapter {
	return &IndicatorAdapter{
		source: source,
		out:    out,
	}
}

// Evaluate prints "true" or "false" for the current leg against the legs in path.
func (a *IndicatorAdapter) Evaluate(ctx context.Context, path, current string) error {
	status, err := coretrip.ParseStatus(current)
	if err != nil {
		return err
	}

	legs, err := a.load(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, strconv.FormatBool(coretrip.IsActive(status, legs)))
	return nil
}

// Progress prints every leg in path with its active indicator.
func (a *IndicatorAdapter) Progress(ctx context.Context, path string) error {
	legs, err := a.load(ctx, path)
	if err != nil {
		return err
	}

	progress := coretrip.Progress(legs)
	views := make([]primary.LegView, len(progress))
	for i, p := range progress {
		views[i] = primary.LegView{
			Name:      string(p.Name),
			Label:     p.Name.Label(),
			Fulfilled: p.Fulfilled,
			Active:    p.Active,
		}
	}

	RenderLegs(a.out, views)
	return nil
}

func (a *IndicatorAdapter) load(ctx context.Context, path string) ([]coretrip.Leg, error) {
	snapshots, err := a.source.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	legs := make([]coretrip.Leg, len(snapshots))
	for i, s := range snapshots {
		legs[i] = coretrip.Leg{
			Name:      coretrip.Status(s.Name),
			Fulfilled: s.Fulfilled,
		}
	}
	return legs, nil
}
