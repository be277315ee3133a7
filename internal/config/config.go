// Package config loads and saves the spinwheel.conf file of the demo binary.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ayn2op/spinwheel"
	"github.com/ayn2op/spinwheel/wheel"
	"gopkg.in/ini.v1"
)

// Config represents the demo configuration.
//
// INI format:
//
//	[wheel]
//	visible_items = 5
//	cyclic = false
//	orientation = vertical
//	dimmed_alpha = 0.2
//	border = plain
//
//	[scroller]
//	duration_ms = 400
//	min_fling_velocity = 80
//	max_fling_velocity = 4000
//	deceleration = 400
type Config struct {
	Wheel    WheelConfig
	Scroller ScrollerConfig
}

// WheelConfig contains the look of the wheels.
type WheelConfig struct {
	// VisibleItems is the number of items shown around the selection.
	// Minimum: 1, Default: 5
	VisibleItems int `ini:"visible_items"`

	// Cyclic makes wheels wrap around. Demos that need a specific behavior
	// ignore it. Default: false
	Cyclic bool `ini:"cyclic"`

	// Orientation is "vertical" or "horizontal". Default: vertical
	Orientation string `ini:"orientation"`

	// DimmedAlpha is the opacity of items next to the selection at rest.
	// Range: 0 to 1
	DimmedAlpha float64 `ini:"dimmed_alpha"`

	// Border is the frame drawn around wheels: hidden, plain, round, thick
	// or double. Default: plain
	Border string `ini:"border"`
}

// ScrollerConfig contains the scroll physics.
type ScrollerConfig struct {
	// DurationMS is the duration of programmatic scrolls in milliseconds.
	DurationMS int `ini:"duration_ms"`

	// Velocities in scroll units per second, deceleration in units per
	// second squared. A terminal cell is spinwheel.UnitsPerCell units.
	MinFlingVelocity float64 `ini:"min_fling_velocity"`
	MaxFlingVelocity float64 `ini:"max_fling_velocity"`
	Deceleration     float64 `ini:"deceleration"`
}

const (
	OrientationVertical   = "vertical"
	OrientationHorizontal = "horizontal"
)

// Validation errors
var (
	ErrInvalidVisibleItems = errors.New("visible_items must be at least 1")
	ErrInvalidOrientation  = errors.New("orientation must be vertical or horizontal")
	ErrInvalidDimmedAlpha  = errors.New("dimmed_alpha must be between 0 and 1")
	ErrInvalidDuration     = errors.New("duration_ms must not be negative")
	ErrInvalidBorder       = errors.New("border must be hidden, plain, round, thick or double")
)

// DefaultPath returns the default location of spinwheel.conf, in the user's
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "spinwheel", "spinwheel.conf"), nil
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Wheel: WheelConfig{
			VisibleItems: 5,
			Cyclic:       wheel.DefaultCyclic,
			Orientation:  OrientationVertical,
			DimmedAlpha:  spinwheel.DefaultDimmedAlpha,
			Border:       "plain",
		},
		Scroller: ScrollerConfig{
			DurationMS:       int(wheel.DefaultScrollDuration / time.Millisecond),
			MinFlingVelocity: wheel.DefaultMinFlingVelocity,
			MaxFlingVelocity: wheel.DefaultMaxFlingVelocity,
			Deceleration:     wheel.DefaultDeceleration,
		},
	}
}

// Load loads configuration from path, or from DefaultPath if path is empty.
// A missing file yields the defaults and no error. The loaded configuration
// is validated.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, nil
		}
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}

	def := New()
	wheelSection := file.Section("wheel")
	cfg.Wheel.VisibleItems = wheelSection.Key("visible_items").MustInt(def.Wheel.VisibleItems)
	cfg.Wheel.Cyclic = wheelSection.Key("cyclic").MustBool(def.Wheel.Cyclic)
	cfg.Wheel.Orientation = wheelSection.Key("orientation").In(def.Wheel.Orientation, []string{OrientationVertical, OrientationHorizontal})
	cfg.Wheel.DimmedAlpha = wheelSection.Key("dimmed_alpha").MustFloat64(def.Wheel.DimmedAlpha)
	cfg.Wheel.Border = wheelSection.Key("border").MustString(def.Wheel.Border)

	scrollerSection := file.Section("scroller")
	cfg.Scroller.DurationMS = scrollerSection.Key("duration_ms").MustInt(def.Scroller.DurationMS)
	cfg.Scroller.MinFlingVelocity = scrollerSection.Key("min_fling_velocity").MustFloat64(def.Scroller.MinFlingVelocity)
	cfg.Scroller.MaxFlingVelocity = scrollerSection.Key("max_fling_velocity").MustFloat64(def.Scroller.MaxFlingVelocity)
	cfg.Scroller.Deceleration = scrollerSection.Key("deceleration").MustFloat64(def.Scroller.Deceleration)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Save writes cfg to path, or to DefaultPath if path is empty. Parent
// directories are created.
func Save(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to determine config path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := toINI(cfg)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := file.SaveTo(tmpPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Write writes cfg to w in the format read by Load.
func Write(cfg *Config, w io.Writer) error {
	file, err := toINI(cfg)
	if err != nil {
		return err
	}
	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func toINI(cfg *Config) (*ini.File, error) {
	file := ini.Empty()
	wheelSection, err := file.NewSection("wheel")
	if err != nil {
		return nil, fmt.Errorf("failed to create wheel section: %w", err)
	}
	wheelSection.Key("visible_items").SetValue(strconv.Itoa(cfg.Wheel.VisibleItems))
	wheelSection.Key("cyclic").SetValue(strconv.FormatBool(cfg.Wheel.Cyclic))
	wheelSection.Key("orientation").SetValue(cfg.Wheel.Orientation)
	wheelSection.Key("dimmed_alpha").SetValue(strconv.FormatFloat(cfg.Wheel.DimmedAlpha, 'f', -1, 64))
	wheelSection.Key("border").SetValue(cfg.Wheel.Border)

	scrollerSection, err := file.NewSection("scroller")
	if err != nil {
		return nil, fmt.Errorf("failed to create scroller section: %w", err)
	}
	scrollerSection.Key("duration_ms").SetValue(strconv.Itoa(cfg.Scroller.DurationMS))
	scrollerSection.Key("min_fling_velocity").SetValue(strconv.FormatFloat(cfg.Scroller.MinFlingVelocity, 'f', -1, 64))
	scrollerSection.Key("max_fling_velocity").SetValue(strconv.FormatFloat(cfg.Scroller.MaxFlingVelocity, 'f', -1, 64))
	scrollerSection.Key("deceleration").SetValue(strconv.FormatFloat(cfg.Scroller.Deceleration, 'f', -1, 64))

	return file, nil
}

// Validate returns an error describing the first invalid setting.
func (cfg *Config) Validate() error {
	if cfg.Wheel.VisibleItems < 1 {
		return ErrInvalidVisibleItems
	}
	if cfg.Wheel.Orientation != OrientationVertical && cfg.Wheel.Orientation != OrientationHorizontal {
		return ErrInvalidOrientation
	}
	if cfg.Wheel.DimmedAlpha < 0 || cfg.Wheel.DimmedAlpha > 1 {
		return ErrInvalidDimmedAlpha
	}
	if _, ok := spinwheel.BorderSetByName(cfg.Wheel.Border); !ok {
		return ErrInvalidBorder
	}
	if cfg.Scroller.DurationMS < 0 {
		return ErrInvalidDuration
	}
	return nil
}

// Horizontal reports whether wheels scroll horizontally.
func (cfg *Config) Horizontal() bool {
	return cfg.Wheel.Orientation == OrientationHorizontal
}

// BorderSet returns the border set named by Wheel.Border, or the plain set
// if the name is unknown.
func (cfg *Config) BorderSet() spinwheel.BorderSet {
	set, ok := spinwheel.BorderSetByName(cfg.Wheel.Border)
	if !ok {
		return spinwheel.BorderSetPlain
	}
	return set
}

// Engine returns the engine options. Zero physics values fall back to the
// engine defaults.
func (cfg *Config) Engine() wheel.Config {
	engine := wheel.DefaultConfig()
	engine.VisibleItems = cfg.Wheel.VisibleItems
	engine.Cyclic = cfg.Wheel.Cyclic
	if cfg.Scroller.DurationMS > 0 {
		engine.ScrollDuration = time.Duration(cfg.Scroller.DurationMS) * time.Millisecond
	}
	if cfg.Scroller.MinFlingVelocity > 0 {
		engine.MinFlingVelocity = cfg.Scroller.MinFlingVelocity
	}
	if cfg.Scroller.MaxFlingVelocity > 0 {
		engine.MaxFlingVelocity = cfg.Scroller.MaxFlingVelocity
	}
	if cfg.Scroller.Deceleration > 0 {
		engine.Deceleration = cfg.Scroller.Deceleration
	}
	return engine
}
