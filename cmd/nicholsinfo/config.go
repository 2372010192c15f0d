package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	StageTransferFunction StageKind = "tf"
	StageStateSpace       StageKind = "ss"
	StageGain             StageKind = "gain"
)

var validStageKinds = map[StageKind]struct{}{
	StageTransferFunction: {},
	StageStateSpace:       {},
	StageGain:             {},
}

var errNoStages = errors.New("config: at least one stage is required")

type StageKind string

func (k StageKind) String() string {
	return string(k)
}

// Config describes a cascade of systems and the grid it is evaluated on.
type Config struct {
	Grid   GridConfig    `yaml:"grid"`
	GainDB float64       `yaml:"gainDB"`
	Unwrap bool          `yaml:"unwrap"`
	Stages []StageConfig `yaml:"stages"`
}

// GridConfig is a logarithmic frequency grid in rad/s.
type GridConfig struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Points int     `yaml:"points"`
}

// StageConfig is one system in the cascade. Which fields apply depends on
// Kind: tf uses Num and Den, ss uses A, B, C and D, gain uses K.
type StageConfig struct {
	Name string      `yaml:"name"`
	Kind StageKind   `yaml:"kind"`
	Num  []float64   `yaml:"num"`
	Den  []float64   `yaml:"den"`
	A    [][]float64 `yaml:"a"`
	B    [][]float64 `yaml:"b"`
	C    [][]float64 `yaml:"c"`
	D    [][]float64 `yaml:"d"`
	K    float64     `yaml:"k"`
}

// DefaultConfig returns a two-decade grid around 1 rad/s with no stages.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Min:    0.01,
			Max:    100,
			Points: 25,
		},
	}
}

// LoadConfig decodes YAML from r on top of [DefaultConfig] and validates it.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: failed to decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the grid and every stage.
func (c *Config) Validate() error {
	if !(c.Grid.Min > 0) || !(c.Grid.Max > c.Grid.Min) {
		return fmt.Errorf("config: grid must satisfy 0 < min < max, got [%v, %v]", c.Grid.Min, c.Grid.Max)
	}
	if c.Grid.Points < 2 {
		return fmt.Errorf("config: grid needs at least 2 points, got %d", c.Grid.Points)
	}
	if len(c.Stages) == 0 {
		return errNoStages
	}

	for i, s := range c.Stages {
		if _, ok := validStageKinds[s.Kind]; !ok {
			return fmt.Errorf("config: stage %d (%s): unknown kind %q", i, s.Name, s.Kind)
		}
		switch s.Kind {
		case StageTransferFunction:
			if len(s.Num) == 0 || len(s.Den) == 0 {
				return fmt.Errorf("config: stage %d (%s): tf needs num and den", i, s.Name)
			}
		case StageStateSpace:
			if len(s.A) == 0 || len(s.B) == 0 || len(s.C) == 0 {
				return fmt.Errorf("config: stage %d (%s): ss needs a, b and c", i, s.Name)
			}
		}
	}
	return nil
}

// parseCoefficients parses a comma-separated coefficient list such as "1, 2, 1".
func parseCoefficients(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}
