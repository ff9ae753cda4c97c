// Package config provides YAML-based configuration for the tetris variants,
// with environment overrides and tick-cadence conversion.
package config

import (
	"errors"
	"fmt"
)

// Variant IDs. They double as registry IDs and score-table keys.
const (
	VariantClassic = "tetris"
	VariantWide    = "tetris_wide"
)

// MinBoardSize mirrors the rule engine's lower bound on width and height.
const MinBoardSize = 4

// ErrUnknownVariant is returned by Board for an unrecognised variant ID.
var ErrUnknownVariant = errors.New("config: unknown variant")

// TetrisConfig contains all configuration for the tetris variants.
type TetrisConfig struct {
	Boards  BoardsConfig  `yaml:"boards"`
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
}

// BoardsConfig holds the well dimensions of each variant.
type BoardsConfig struct {
	Classic BoardPreset `yaml:"classic" envPrefix:"CLASSIC_"`
	Wide    BoardPreset `yaml:"wide"    envPrefix:"WIDE_"`
}

// BoardPreset is a well size in cells.
type BoardPreset struct {
	Width  int `yaml:"width"  env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`
}

// TimingConfig defines the two driver cadences in milliseconds.
type TimingConfig struct {
	GravityMS int `yaml:"gravity_ms" env:"GRAVITY_MS"` // One SoftDropTick per interval
	InputMS   int `yaml:"input_ms"   env:"INPUT_MS"`   // Buffered input is applied at this rate
}

// DisplayConfig toggles optional HUD elements.
type DisplayConfig struct {
	Ghost        bool `yaml:"ghost"         env:"GHOST"`
	Preview      bool `yaml:"preview"       env:"PREVIEW"`
	PreviewCount int  `yaml:"preview_count" env:"PREVIEW_COUNT"`
}

// Board returns the preset for a variant ID.
func (c TetrisConfig) Board(variant string) (BoardPreset, error) {
	switch variant {
	case VariantClassic:
		return c.Boards.Classic, nil
	case VariantWide:
		return c.Boards.Wide, nil
	default:
		return BoardPreset{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}

// Validate checks that every value describes a playable game.
func (c TetrisConfig) Validate() error {
	var errs []error

	for name, b := range map[string]BoardPreset{"classic": c.Boards.Classic, "wide": c.Boards.Wide} {
		if b.Width < MinBoardSize || b.Height < MinBoardSize {
			errs = append(errs, fmt.Errorf("config: board %s %dx%d is smaller than %dx%d",
				name, b.Width, b.Height, MinBoardSize, MinBoardSize))
		}
	}
	if c.Timing.GravityMS <= 0 {
		errs = append(errs, fmt.Errorf("config: gravity_ms must be positive, got %d", c.Timing.GravityMS))
	}
	if c.Timing.InputMS <= 0 {
		errs = append(errs, fmt.Errorf("config: input_ms must be positive, got %d", c.Timing.InputMS))
	}
	if c.Display.PreviewCount < 0 {
		errs = append(errs, fmt.Errorf("config: preview_count must not be negative, got %d", c.Display.PreviewCount))
	}

	return errors.Join(errs...)
}
