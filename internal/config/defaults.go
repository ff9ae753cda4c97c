package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded defaults, used when the embedded YAML cannot be parsed.
// The wide preset is the classic 800×640 px field at 20 px per cell.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Boards: BoardsConfig{
			Classic: BoardPreset{Width: 10, Height: 20},
			Wide:    BoardPreset{Width: 40, Height: 32},
		},
		Timing: TimingConfig{
			GravityMS: 200, // 5 drops per second
			InputMS:   15,
		},
		Display: DisplayConfig{
			Ghost:        true,
			Preview:      true,
			PreviewCount: 1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
