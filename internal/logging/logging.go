// Package logging sets up the shared zerolog logger writing to console and
// to a session log file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the shared application logger. It discards everything until
// Setup is called.
var Logger = zerolog.Nop()

// Setup initializes the logger. logsDir is created if missing; the returned
// file must be closed by the caller on shutdown.
func Setup(logsDir, logLevel string) (*os.File, error) {
	var level zerolog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = zerolog.DebugLevel
	case "INFO":
		level = zerolog.InfoLevel
	case "WARN":
		level = zerolog.WarnLevel
	case "ERROR":
		level = zerolog.ErrorLevel
	case "TRACE":
		level = zerolog.TraceLevel
	default:
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating logs dir: %v", err)
	}
	name := fmt.Sprintf("armorcalc_%s.log", time.Now().UTC().Format("2006-01-02_15-04-05"))
	file, err := os.Create(filepath.Join(logsDir, name))
	if err != nil {
		return nil, fmt.Errorf("error creating log file: %v", err)
	}

	mlw := zerolog.MultiLevelWriter(
		// write console format with colors to console
		zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		},
		// write console format without colors to file
		zerolog.ConsoleWriter{
			Out:        file,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		},
	)

	Logger = zerolog.New(mlw).With().Timestamp().Logger()
	Logger.Info().Str("loglevel", Logger.GetLevel().String()).Msg("Logging set up")

	return file, nil
}
