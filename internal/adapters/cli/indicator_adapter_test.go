package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/tripline/internal/ports/secondary"
)

// mockLegSource implements secondary.LegSource for testing
type mockLegSource struct {
	legs     []secondary.LegSnapshot
	err      error
	lastPath string
}

func (m *mockLegSource) Load(ctx context.Context, path string) ([]secondary.LegSnapshot, error) {
	m.lastPath = path
	return m.legs, m.err
}

func TestIndicatorAdapter_Evaluate(t *testing.T) {
	source := &mockLegSource{
		legs: []secondary.LegSnapshot{
			{Name: "delivered", Fulfilled: false},
			{Name: "offloaded", Fulfilled: true},
		},
	}

	tests := []struct {
		current string
		want    string
	}{
		{current: "delivered", want: "true"},
		{current: "offloaded", want: "false"},
		{current: "In-Transit", want: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			var out bytes.Buffer
			adapter := NewIndicatorAdapter(source, &out)

			if err := adapter.Evaluate(context.Background(), "legs.yaml", tt.current); err != nil {
				t.Fatalf("Evaluate failed: %v", err)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("Evaluate(%s) printed %q, want %q", tt.current, got, tt.want)
			}
			if source.lastPath != "legs.yaml" {
				t.Errorf("expected path 'legs.yaml', got %q", source.lastPath)
			}
		})
	}
}

func TestIndicatorAdapter_Evaluate_UnknownStatus(t *testing.T) {
	var out bytes.Buffer
	adapter := NewIndicatorAdapter(&mockLegSource{}, &out)

	if err := adapter.Evaluate(context.Background(), "legs.yaml", "teleported"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestIndicatorAdapter_Evaluate_SourceError(t *testing.T) {
	var out bytes.Buffer
	adapter := NewIndicatorAdapter(&mockLegSource{err: errors.New("no such file")}, &out)

	err := adapter.Evaluate(context.Background(), "missing.yaml", "delivered")
	if err == nil || !strings.Contains(err.Error(), "no such file") {
		t.Errorf("expected source error, got %v", err)
	}
}

func TestIndicatorAdapter_Progress(t *testing.T) {
	source := &mockLegSource{
		legs: []secondary.LegSnapshot{
			{Name: "started_for_pickup", Fulfilled: true},
			{Name: "in_transit", Fulfilled: false},
		},
	}
	var out bytes.Buffer
	adapter := NewIndicatorAdapter(source, &out)

	if err := adapter.Progress(context.Background(), "legs.yaml"); err != nil {
		t.Fatalf("Progress failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "Started for pickup [started_for_pickup] ← active") {
		t.Errorf("expected first leg active, got %q", lines[0])
	}
	if strings.Contains(lines[1], "active") {
		t.Errorf("expected second leg inactive, got %q", lines[1])
	}
}
