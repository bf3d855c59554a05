package blitter

import (
	"log/slog"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BLITTER_ASPECT", "")
	t.Setenv("FPS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := LoadConfig()
	if cfg.Aspect != AspectStandard {
		t.Errorf("Aspect = %v, want standard", cfg.Aspect)
	}
	if cfg.ShowFPS {
		t.Error("ShowFPS should default to false")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}

	w, h := cfg.ScreenResolution()
	if w != 320 || h != 240 {
		t.Errorf("resolution = %dx%d, want 320x240", w, h)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("BLITTER_ASPECT", "ultrawide")
	t.Setenv("FPS", "1")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadConfig()
	if cfg.Aspect != AspectUltrawide {
		t.Errorf("Aspect = %v, want ultrawide", cfg.Aspect)
	}
	if !cfg.ShowFPS {
		t.Error("ShowFPS = false, want true")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestLoadConfigUnknownValues(t *testing.T) {
	t.Setenv("BLITTER_ASPECT", "cinemascope")
	t.Setenv("LOG_LEVEL", "loud")

	// Unknown values warn and fall back to defaults.
	cfg := LoadConfig()
	if cfg.Aspect != AspectStandard {
		t.Errorf("Aspect = %v, want standard fallback", cfg.Aspect)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info fallback", cfg.LogLevel)
	}
}

func TestScreenResolutions(t *testing.T) {
	cases := []struct {
		aspect AspectRatio
		width  int
	}{
		{AspectStandard, 320},
		{AspectWide, 427},
		{AspectUltrawide, 573},
	}
	for _, c := range cases {
		w, h := Config{Aspect: c.aspect}.ScreenResolution()
		if w != c.width || h != 240 {
			t.Errorf("aspect %v = %dx%d, want %dx240", c.aspect, w, h, c.width)
		}
	}
}

func TestConfigDir(t *testing.T) {
	dir, err := ConfigDir("blitter")
	if err != nil {
		t.Skipf("no user config dir in this environment: %v", err)
	}
	if dir == "" {
		t.Error("ConfigDir returned empty path")
	}
}
