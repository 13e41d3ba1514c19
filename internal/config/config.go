// Package config provides YAML-based game configuration loading for the
// snake platform.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for the Snake game.
// Every value is fixed for the lifetime of a session.
type SnakeConfig struct {
	Board        BoardConfig  `yaml:"board"`
	CompactBoard BoardConfig  `yaml:"compact_board"`
	Rules        SnakeRules   `yaml:"rules"`
	Timing       TimingConfig `yaml:"timing"`
	Glyphs       GlyphConfig  `yaml:"glyphs"`
	Audio        AudioConfig  `yaml:"audio"`
}

// BoardConfig defines the playing field size in cells.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SnakeRules defines scoring and the starting body.
type SnakeRules struct {
	StartLength int `yaml:"start_length"`
	FoodReward  int `yaml:"food_reward"` // Points per food eaten
}

// TimingConfig defines the simulation pace.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"` // Step interval and input poll timeout
}

// GlyphConfig defines the characters used to draw the field.
type GlyphConfig struct {
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// AudioConfig defines the optional sound effects.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	EatToneHz  float64 `yaml:"eat_tone_hz"`
	LoseToneHz float64 `yaml:"lose_tone_hz"`
}

// Tick returns the step interval as a duration.
func (t TimingConfig) Tick() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// BodyRune returns the first rune of the body glyph.
func (g GlyphConfig) BodyRune() rune {
	r, _ := utf8.DecodeRuneInString(g.Body)
	return r
}

// FoodRune returns the first rune of the food glyph.
func (g GlyphConfig) FoodRune() rune {
	r, _ := utf8.DecodeRuneInString(g.Food)
	return r
}

// Validate checks that the configuration can start a session.
func (c SnakeConfig) Validate() error {
	if err := c.Board.validate("board"); err != nil {
		return err
	}
	if err := c.CompactBoard.validate("compact_board"); err != nil {
		return err
	}

	// The starting body is laid out on a single row.
	minCols := min(c.Board.Cols, c.CompactBoard.Cols)
	if c.Rules.StartLength < 1 || c.Rules.StartLength > minCols {
		return fmt.Errorf("%w: rules.start_length %d must be within [1, %d]",
			ErrInvalidConfig, c.Rules.StartLength, minCols)
	}
	if c.Rules.FoodReward <= 0 {
		return fmt.Errorf("%w: rules.food_reward must be positive, got %d",
			ErrInvalidConfig, c.Rules.FoodReward)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("%w: timing.tick_ms must be positive, got %d",
			ErrInvalidConfig, c.Timing.TickMS)
	}
	if c.Glyphs.Body == "" || c.Glyphs.Food == "" {
		return fmt.Errorf("%w: glyphs.body and glyphs.food must be set", ErrInvalidConfig)
	}
	if c.Glyphs.BodyRune() == c.Glyphs.FoodRune() {
		return fmt.Errorf("%w: body and food glyphs must differ", ErrInvalidConfig)
	}
	return nil
}

func (b BoardConfig) validate(name string) error {
	if b.Rows <= 0 || b.Cols <= 0 {
		return fmt.Errorf("%w: %s must have positive rows and cols, got %dx%d",
			ErrInvalidConfig, name, b.Rows, b.Cols)
	}
	// Food needs at least one cell next to a minimal body.
	if b.Rows*b.Cols < 2 {
		return fmt.Errorf("%w: %s needs at least 2 cells", ErrInvalidConfig, name)
	}
	return nil
}
