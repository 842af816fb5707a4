// SPDX-License-Identifier: Apache-2.0

// Package training loads per-epoch training statistics and renders them as
// loss and accuracy curves.
package training

import (
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/goccy/go-yaml"
)

var (
	// ErrNoStats indicates an empty statistics sequence.
	ErrNoStats = errors.New("training: no epoch statistics")

	// ErrInvalidStats indicates a record that fails schema validation.
	ErrInvalidStats = errors.New("training: invalid epoch statistics")
)

// EpochStats is one record written by the trainer after each epoch.
type EpochStats struct {
	Epoch          int     `yaml:"epoch,omitempty" json:"epoch,omitempty"`
	TrainingLoss   float64 `yaml:"Training Loss" json:"Training Loss"`
	ValidLoss      float64 `yaml:"Valid. Loss" json:"Valid. Loss"`
	ValidAccuracy  float64 `yaml:"Valid. Accur." json:"Valid. Accur."`
	TrainingTime   string  `yaml:"Training Time,omitempty" json:"Training Time,omitempty"`
	ValidationTime string  `yaml:"Validation Time,omitempty" json:"Validation Time,omitempty"`
}

// statsSchema constrains a statistics file. Records stay open so trainers
// may add fields of their own.
const statsSchema = `
#Epoch: {
	epoch?:             int & >=0
	"Training Loss":    number & >=0
	"Valid. Loss":      number & >=0
	"Valid. Accur.":    number & >=0 & <=1
	"Training Time"?:   string
	"Validation Time"?: string
	...
}

#Stats: [...#Epoch]
`

// LoadStats reads a YAML or JSON list of epoch records from path.
func LoadStats(path string) ([]EpochStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read training stats file: %w", err)
	}
	return ParseStats(data)
}

// ParseStats decodes and validates a YAML or JSON list of epoch records.
func ParseStats(data []byte) ([]EpochStats, error) {
	var raw []map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse training stats: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNoStats
	}
	if err := validateStats(raw); err != nil {
		return nil, err
	}

	var stats []EpochStats
	if err := yaml.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to parse training stats: %w", err)
	}
	return stats, nil
}

func validateStats(raw []map[string]interface{}) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(statsSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling stats schema: %w", err)
	}

	value := ctx.Encode(raw)
	if err := value.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStats, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Stats")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStats, err)
	}
	return nil
}
