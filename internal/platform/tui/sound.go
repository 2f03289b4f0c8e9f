package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

// LogSound is a sound player for terminals without audio: it logs each
// cue at debug level.
type LogSound struct {
	logger *log.Logger
}

// NewLogSound creates a sound player writing to logger.
func NewLogSound(logger *log.Logger) *LogSound {
	return &LogSound{logger: logger}
}

// Play logs the cue.
func (s *LogSound) Play(cue breakout.Sound, loop bool) {
	s.logger.Debug("sound", "cue", cue, "loop", loop)
}
