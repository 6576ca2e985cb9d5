package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging
type Logger struct {
	*logrus.Logger
}

// Config for logger initialization
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	Output io.Writer
}

// New creates a new logger instance
func New(cfg Config) *Logger {
	log := logrus.New()

	// Unknown levels fall back to info
	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if cfg.Output != nil {
		log.SetOutput(cfg.Output)
	} else {
		log.SetOutput(os.Stderr)
	}

	return &Logger{Logger: log}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return New(Config{Level: "panic", Output: io.Discard})
}

// WithPlaylist scopes log entries to one playlist
func (l *Logger) WithPlaylist(playlistID string) *logrus.Entry {
	return l.Logger.WithField("playlist_id", playlistID)
}

// WithSong adds the song fields used across playlist logs
func (l *Logger) WithSong(playlistID, name string, weight int64) *logrus.Entry {
	return l.Logger.WithFields(logrus.Fields{
		"playlist_id": playlistID,
		"name":        name,
		"weight":      weight,
	})
}
