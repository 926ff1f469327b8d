package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/go-drift/valuekit/pkg/animation"
	"github.com/go-drift/valuekit/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if len(cfg.Presets) != 0 {
		t.Errorf("expected no presets, got %v", cfg.Presets)
	}
}

func TestLoadOptional_Invalid(t *testing.T) {
	dir := writeConfig(t, "presets: [not, a, map")
	if _, err := LoadOptional(dir); err == nil {
		t.Error("expected a parse error")
	}
}

func TestResolve_FromFile(t *testing.T) {
	dir := writeConfig(t, `
frames:
  fps: 30
presets:
  slide:
    from: 10
    to: 250
    duration_ms: 450
    easing: easeInOutCubic
    strategy: timer
    hz: 30
`)

	r, err := Resolve(dir, "slide")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if r.Name != "slide" || r.To != 250 || r.Options.From != 10 {
		t.Errorf("resolved %+v", r)
	}
	if d := *r.Options.Duration; d != 450*time.Millisecond {
		t.Errorf("duration = %v, want 450ms", d)
	}
	if s, ok := r.Options.Strategy.(animation.TimerDriven); !ok || s.Hz != 30 {
		t.Errorf("strategy = %#v, want TimerDriven{Hz: 30}", r.Options.Strategy)
	}
	if r.Options.Easing == nil || r.Options.Easing(0.5) != 0.5 {
		t.Error("expected easeInOutCubic to be resolved")
	}
	if r.FrameInterval != time.Second/30 {
		t.Errorf("FrameInterval = %v", r.FrameInterval)
	}
}

func TestResolve_Defaults(t *testing.T) {
	r, err := Resolve(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if r.Name != DefaultPreset || r.To != 1 {
		t.Errorf("resolved %+v", r)
	}
	if r.Options.Duration != nil || r.Options.Easing != nil {
		t.Error("default preset should leave duration and easing to the tween")
	}
	if _, ok := r.Options.Strategy.(animation.FrameSynced); !ok {
		t.Errorf("strategy = %#v, want FrameSynced", r.Options.Strategy)
	}
	if r.FrameInterval != time.Second/60 {
		t.Errorf("FrameInterval = %v, want 1/60s", r.FrameInterval)
	}
}

func TestResolve_FileOverridesBuiltin(t *testing.T) {
	dir := writeConfig(t, `
presets:
  default:
    to: 5
`)
	r, err := Resolve(dir, "default")
	if err != nil {
		t.Fatal(err)
	}
	if r.To != 5 {
		t.Errorf("To = %v, want 5", r.To)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		preset   string
		wantKind errors.ErrorKind
		wantErr  error
	}{
		{"unknown preset", "", "nope", errors.KindConfig, ErrUnknownPreset},
		{"unknown easing", "presets: {p: {easing: wobble}}", "p", errors.KindParse, nil},
		{"unknown strategy", "presets: {p: {strategy: vsync}}", "p", errors.KindParse, nil},
		{"hz with frame", "presets: {p: {strategy: frame, hz: 30}}", "p", errors.KindConfig, ErrHzWithFrame},
		{"bad fps", "frames: {fps: -1}\npresets: {p: {}}", "p", errors.KindConfig, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			_, err := Resolve(dir, tt.preset)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.KindOf(err); got != tt.wantKind {
				t.Errorf("KindOf = %v, want %v (%v)", got, tt.wantKind, err)
			}
			if tt.wantErr != nil && !stderrors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolve_ParseErrorDetails(t *testing.T) {
	dir := writeConfig(t, "presets: {p: {easing: wobble}}")
	_, err := Resolve(dir, "p")

	var pe *errors.ParseError
	if !stderrors.As(err, &pe) {
		t.Fatalf("expected a ParseError, got %v", err)
	}
	if pe.Field != "easing" || pe.Got != "wobble" {
		t.Errorf("ParseError = %+v", pe)
	}
}

func TestPresetNames(t *testing.T) {
	dir := writeConfig(t, "presets: {zoom: {to: 2}, default: {to: 3}}")
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatal(err)
	}
	names := cfg.PresetNames()
	if !slices.IsSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	for _, want := range []string{"default", "fade-in", "zoom"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing preset %q in %v", want, names)
		}
	}
	if n := len(slices.Compact(slices.Clone(names))); n != len(names) {
		t.Errorf("duplicate names in %v", names)
	}
}
