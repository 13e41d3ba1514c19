package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Rows: 30,
			Cols: 120,
		},
		CompactBoard: BoardConfig{
			Rows: 16,
			Cols: 60,
		},
		Rules: SnakeRules{
			StartLength: 3,
			FoodReward:  7,
		},
		Timing: TimingConfig{
			TickMS: 30,
		},
		Glyphs: GlyphConfig{
			Body: "O",
			Food: "*",
		},
		Audio: AudioConfig{
			Enabled:    false,
			EatToneHz:  880,
			LoseToneHz: 220,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
