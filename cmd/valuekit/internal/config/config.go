// Package config loads tween presets from an optional valuekit.yaml.
package config

import (
	stderrors "errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/valuekit/pkg/animation"
	"github.com/go-drift/valuekit/pkg/easing"
	"github.com/go-drift/valuekit/pkg/errors"
)

// FileName is the name of the configuration file looked up by LoadOptional.
const FileName = "valuekit.yaml"

// DefaultPreset is the preset used when none is named.
const DefaultPreset = "default"

// Strategy names accepted in a preset.
const (
	StrategyFrame = "frame"
	StrategyTimer = "timer"
)

var (
	// ErrUnknownPreset is returned by Resolve for a preset that is neither
	// built in nor defined in valuekit.yaml.
	ErrUnknownPreset = stderrors.New("unknown preset")
	// ErrHzWithFrame is returned when a preset sets hz without the timer
	// strategy.
	ErrHzWithFrame = stderrors.New("hz is only valid with the timer strategy")
)

// Config represents the optional valuekit.yaml configuration.
type Config struct {
	Presets map[string]Preset `yaml:"presets"`
	Frames  FrameConfig       `yaml:"frames"`
}

// Preset describes one tween run.
type Preset struct {
	From       float64  `yaml:"from"`
	To         float64  `yaml:"to"`
	DurationMS *float64 `yaml:"duration_ms,omitempty"`
	Easing     string   `yaml:"easing,omitempty"`
	Strategy   string   `yaml:"strategy,omitempty"`
	Hz         float64  `yaml:"hz,omitempty"`
}

// FrameConfig controls the frame loop used by frame-synchronized presets.
type FrameConfig struct {
	FPS float64 `yaml:"fps,omitempty"`
}

// Resolved is a preset turned into tween options. Callbacks are left for
// the caller to fill in.
type Resolved struct {
	Name          string
	To            float64
	Options       animation.Options
	FrameInterval time.Duration
}

// builtins are available without a configuration file. Presets of the same
// name in valuekit.yaml replace them.
var builtins = map[string]Preset{
	DefaultPreset: {From: 0, To: 1},
	"fade-in":     {From: 0, To: 1, DurationMS: ms(300), Easing: "ease-out"},
	"fade-out":    {From: 1, To: 0, DurationMS: ms(300), Easing: "ease-in"},
	"bounce":      {From: 0, To: 100, DurationMS: ms(800), Easing: "easeOutBounce", Strategy: StrategyTimer, Hz: 60},
	"snap":        {From: 0, To: 1, DurationMS: ms(0)},
}

func ms(v float64) *float64 { return &v }

// LoadOptional reads valuekit.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads valuekit.yaml (if present) from dir and resolves the named
// preset. An empty name selects DefaultPreset.
func Resolve(dir, name string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(name)
}

// PresetNames returns the built-in and configured preset names, sorted.
func (c *Config) PresetNames() []string {
	seen := make(map[string]bool, len(builtins)+len(c.Presets))
	var names []string
	for _, m := range []map[string]Preset{builtins, c.Presets} {
		for name := range m {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named preset, preferring the configuration file over
// the built-ins.
func (c *Config) Lookup(name string) (Preset, bool) {
	if p, ok := c.Presets[name]; ok {
		return p, true
	}
	p, ok := builtins[name]
	return p, ok
}

// Resolve validates the named preset and fills in defaults.
func (c *Config) Resolve(name string) (*Resolved, error) {
	const op = "config.Resolve"

	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultPreset
	}
	p, ok := c.Lookup(name)
	if !ok {
		return nil, errors.New(op, errors.KindConfig, fmt.Errorf("%w: %q", ErrUnknownPreset, name))
	}

	r, err := p.resolve()
	if err != nil {
		return nil, errors.New(op, errors.KindOf(err), fmt.Errorf("preset %q: %w", name, err))
	}
	r.Name = name

	fps := c.Frames.FPS
	if fps == 0 {
		fps = 60
	}
	if math.IsNaN(fps) || math.IsInf(fps, 0) || fps < 0 {
		return nil, errors.New(op, errors.KindConfig, fmt.Errorf("frames.fps must be a finite positive number, got %v", fps))
	}
	r.FrameInterval = time.Duration(float64(time.Second) / fps)
	return r, nil
}

func (p Preset) resolve() (*Resolved, error) {
	r := &Resolved{To: p.To}
	r.Options.From = p.From

	if p.DurationMS != nil {
		d := *p.DurationMS
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, parseError("duration_ms", "finite milliseconds", d)
		}
		r.Options.Duration = animation.DurationOf(time.Duration(d * float64(time.Millisecond)))
	}

	if p.Easing != "" {
		fn, ok := easing.Lookup(p.Easing)
		if !ok {
			return nil, parseError("easing", "easing name", p.Easing)
		}
		r.Options.Easing = fn
	}

	switch strings.ToLower(strings.TrimSpace(p.Strategy)) {
	case "", StrategyFrame:
		if p.Hz != 0 {
			return nil, errors.New("config.Preset", errors.KindConfig, ErrHzWithFrame)
		}
		r.Options.Strategy = animation.FrameSynced{}
	case StrategyTimer:
		r.Options.Strategy = animation.TimerDriven{Hz: p.Hz}
	default:
		return nil, parseError("strategy", "frame or timer", p.Strategy)
	}
	return r, nil
}

func parseError(field, dataType string, got any) error {
	return errors.New("config.Preset", errors.KindParse, &errors.ParseError{
		Field:    field,
		DataType: dataType,
		Got:      got,
	})
}
