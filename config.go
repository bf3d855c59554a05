package blitter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// AspectRatio selects one of the fixed screen resolutions. The height is
// always 240; the width varies with the ratio.
type AspectRatio uint8

const (
	AspectStandard  AspectRatio = iota // 4:3, 320×240
	AspectWide                         // 16:9, 427×240
	AspectUltrawide                    // 21:9, 573×240
)

// Screen resolutions for aspect ratios 4:3, 16:9, and 21:9.
const (
	widthStandard  = 320
	widthWide      = 427
	widthUltrawide = 573
	screenHeight   = 240
)

// Config holds the host-facing settings the compositor cares about. Values
// come from the environment; nothing here is required, every field has a
// working default.
type Config struct {
	Aspect   AspectRatio
	ShowFPS  bool
	LogLevel slog.Level
}

// LoadConfig resolves a Config from the environment:
//
//	BLITTER_ASPECT  standard | wide | ultrawide
//	FPS             1 to enable frame-rate logging
//	LOG_LEVEL       debug | info | warn | error
func LoadConfig() Config {
	cfg := Config{
		Aspect:   AspectStandard,
		LogLevel: slog.LevelInfo,
	}

	switch ar := os.Getenv("BLITTER_ASPECT"); ar {
	case "", "standard":
	case "wide":
		cfg.Aspect = AspectWide
	case "ultrawide":
		cfg.Aspect = AspectUltrawide
	default:
		fmt.Fprintf(os.Stderr, "unknown aspect ratio: %s\n", ar)
	}

	cfg.ShowFPS = os.Getenv("FPS") == "1"

	switch level := os.Getenv("LOG_LEVEL"); level {
	case "":
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "info":
		cfg.LogLevel = slog.LevelInfo
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "unknown log level: %s\n", level)
	}

	return cfg
}

// ScreenResolution returns the pixel dimensions for the configured aspect
// ratio.
func (c Config) ScreenResolution() (width, height int) {
	switch c.Aspect {
	case AspectWide:
		return widthWide, screenHeight
	case AspectUltrawide:
		return widthUltrawide, screenHeight
	default:
		return widthStandard, screenHeight
	}
}

// ConfigDir returns the per-user configuration directory for the given
// application name, creating nothing.
func ConfigDir(app string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, app), nil
}
