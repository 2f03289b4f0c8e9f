package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/levels"
)

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)

	return cfg, nil
}

// levelLoaders returns the loaders levels are looked up in, the user
// directory first.
func levelLoaders() []*levels.Loader {
	var loaders []*levels.Loader
	if flagLevelsDir != "" {
		loaders = append(loaders, levels.NewLoader(flagLevelsDir))
	}
	return append(loaders, levels.Builtin())
}

// loadLevels loads the configured playlist.
func loadLevels(cfg config.BreakoutConfig) ([]levels.Level, error) {
	return levels.LoadPlaylist(cfg.Gameplay.Levels, levelLoaders()...)
}

// levelIndex returns the playlist position of the level with the given ID.
func levelIndex(lvls []levels.Level, id string) (int, error) {
	if id == "" {
		return 0, nil
	}
	for i, l := range lvls {
		if l.ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q (run 'breakout levels' to list them)", id)
}

// resolveSeed returns the seed flag, or a time-based seed when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger creates the logger selected by the log flags. Without a log
// file, logs go to fallback. The returned close function must be called
// when done.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "breakout",
		Level:           level,
	})
	return logger, closeFn, nil
}
