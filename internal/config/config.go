package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	WindowWidth  = 600
	WindowHeight = 400
	WindowTitle  = "ESP Overlay - Space: rainbow, L: labels, E: export PDF, Esc/Q: quit"

	// Rainbow parameters
	RainbowEnabled   = true
	RainbowFrequency = 3.0
	TickInterval     = time.Millisecond

	// Lock-on cue
	CueEnabled    = false
	CueSampleRate = 44100
	CueFrequency  = 880.0
	CueDuration   = 60 * time.Millisecond
	CueVolume     = 0.3

	ShowHUD = true
)

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Rainbow struct {
	Enabled   bool          `toml:"enabled"`
	Frequency float64       `toml:"frequency"`
	Interval  time.Duration `toml:"interval"`
}

type Cue struct {
	Enabled    bool          `toml:"enabled"`
	SampleRate int           `toml:"sample_rate"`
	Frequency  float64       `toml:"frequency"`
	Duration   time.Duration `toml:"duration"`
	Volume     float64       `toml:"volume"`
}

type HUD struct {
	Show bool `toml:"show"`
}

// Config is the runtime configuration. Keys absent from a file keep their
// defaults.
type Config struct {
	Window  Window            `toml:"window"`
	Rainbow Rainbow           `toml:"rainbow"`
	Cue     Cue               `toml:"cue"`
	HUD     HUD               `toml:"hud"`
	Fonts   map[string]string `toml:"fonts"`
}

// Default builds a Config from the package constants.
func Default() Config {
	return Config{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Rainbow: Rainbow{
			Enabled:   RainbowEnabled,
			Frequency: RainbowFrequency,
			Interval:  TickInterval,
		},
		Cue: Cue{
			Enabled:    CueEnabled,
			SampleRate: CueSampleRate,
			Frequency:  CueFrequency,
			Duration:   CueDuration,
			Volume:     CueVolume,
		},
		HUD: HUD{
			Show: ShowHUD,
		},
		Fonts: map[string]string{},
	}
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if cfg.Fonts == nil {
		cfg.Fonts = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise break the window or audio.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Rainbow.Interval < 0:
		return fmt.Errorf("%w: negative rainbow interval %v", ErrInvalid, c.Rainbow.Interval)
	case c.Cue.SampleRate <= 0:
		return fmt.Errorf("%w: cue sample rate %d", ErrInvalid, c.Cue.SampleRate)
	case c.Cue.Frequency <= 0:
		return fmt.Errorf("%w: cue frequency %v", ErrInvalid, c.Cue.Frequency)
	case c.Cue.Duration <= 0:
		return fmt.Errorf("%w: cue duration %v", ErrInvalid, c.Cue.Duration)
	case c.Cue.Volume < 0 || c.Cue.Volume > 1:
		return fmt.Errorf("%w: cue volume %v", ErrInvalid, c.Cue.Volume)
	}
	return nil
}
