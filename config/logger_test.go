package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("parses level", func(t *testing.T) {
		SetupLogger(LogConfig{Level: "debug"})
		if zerolog.GlobalLevel() != zerolog.DebugLevel {
			t.Errorf("GlobalLevel() = %v, want debug", zerolog.GlobalLevel())
		}
	})

	t.Run("falls back to info for unknown level", func(t *testing.T) {
		SetupLogger(LogConfig{Level: "chatty"})
		if zerolog.GlobalLevel() != zerolog.InfoLevel {
			t.Errorf("GlobalLevel() = %v, want info", zerolog.GlobalLevel())
		}
	})

	t.Run("writes to log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "unipro.log")
		logger := SetupLogger(LogConfig{Level: "info", File: path})

		logger.Info().Str("component", "test").Msg("hello")

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if len(data) == 0 {
			t.Error("log file is empty")
		}
	})
}
