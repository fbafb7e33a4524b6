// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	coretrip "github.com/example/tripline/internal/core/trip"
	"github.com/example/tripline/internal/ports/secondary"
)

// LegFileSource implements secondary.LegSource for YAML or JSON files.
type LegFileSource struct{}

// NewLegFileSource creates a new file-backed leg source.
func NewLegFileSource() *LegFileSource {
	return &LegFileSource{}
}

type legFile struct {
	Legs []legEntry `yaml:"legs"`
}

type legEntry struct {
	Name      string `yaml:"name"`
	Fulfilled bool   `yaml:"fulfilled"`
}

// Load reads a leg snapshot. Status names are normalized; an unknown name
// is an error so typos don't silently evaluate to "inactive".
func (s *LegFileSource) Load(ctx context.Context, path string) ([]secondary.LegSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read leg file: %w", err)
	}

	var file legFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse leg file %s: %w", path, err)
	}

	legs := make([]secondary.LegSnapshot, len(file.Legs))
	for i, entry := range file.Legs {
		status, err := coretrip.ParseStatus(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: leg %d: %w", path, i+1, err)
		}
		legs[i] = secondary.LegSnapshot{
			Name:      string(status),
			Fulfilled: entry.Fulfilled,
		}
	}

	return legs, nil
}
