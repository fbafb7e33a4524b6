package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/tripline/internal/ports/secondary"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLegFileSource_LoadYAML(t *testing.T) {
	path := writeFile(t, "legs.yaml", `
legs:
  - name: started_for_pickup
    fulfilled: true
  - name: In-Transit
    fulfilled: false
  - name: delivered
`)

	legs, err := NewLegFileSource().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []secondary.LegSnapshot{
		{Name: "started_for_pickup", Fulfilled: true},
		{Name: "in_transit", Fulfilled: false},
		{Name: "delivered", Fulfilled: false},
	}
	if diff := cmp.Diff(want, legs); diff != "" {
		t.Errorf("legs mismatch (-want +got):\n%s", diff)
	}
}

func TestLegFileSource_LoadJSON(t *testing.T) {
	path := writeFile(t, "legs.json", `{"legs": [{"name": "offloaded", "fulfilled": true}]}`)

	legs, err := NewLegFileSource().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(legs) != 1 || legs[0].Name != "offloaded" || !legs[0].Fulfilled {
		t.Errorf("unexpected legs: %+v", legs)
	}
}

func TestLegFileSource_EmptyFile(t *testing.T) {
	path := writeFile(t, "legs.yaml", "")

	legs, err := NewLegFileSource().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(legs) != 0 {
		t.Errorf("expected no legs, got %+v", legs)
	}
}

func TestLegFileSource_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown status",
			content: "legs:\n  - name: teleported\n",
			wantErr: "leg 1: unknown leg status",
		},
		{
			name:    "malformed yaml",
			content: "legs: [",
			wantErr: "failed to parse leg file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "legs.yaml", tt.content)
			_, err := NewLegFileSource().Load(context.Background(), path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestLegFileSource_MissingFile(t *testing.T) {
	_, err := NewLegFileSource().Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
