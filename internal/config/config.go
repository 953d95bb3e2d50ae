// Package config reads the editor's diagnostic settings from the environment.
package config

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"quill/internal/document"
)

const (
	EnvLogLevel      = "QUILL_LOG_LEVEL"
	EnvJSONLogs      = "QUILL_JSON_LOGS"
	EnvNativeDialogs = "QUILL_NATIVE_DIALOGS"
	EnvHistoryLimit  = "QUILL_HISTORY_LIMIT"
)

type Config struct {
	LogLevel      zerolog.Level
	JSONLogs      bool
	NativeDialogs bool
	HistoryLimit  int
}

func Default() Config {
	return Config{
		LogLevel:     zerolog.InfoLevel,
		HistoryLimit: document.DefaultHistoryLimit,
	}
}

// FromEnv overlays environment settings on Default. Unparseable values are
// ignored and reported in the returned warnings.
func FromEnv(lookup func(string) (string, bool)) (Config, []string) {
	cfg := Default()
	var warnings []string

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			warnings = append(warnings, EnvLogLevel+": "+err.Error())
		} else {
			cfg.LogLevel = level
		}
	}

	if v, ok := lookup(EnvJSONLogs); ok {
		cfg.JSONLogs = isTrue(v)
	}

	if v, ok := lookup(EnvNativeDialogs); ok {
		cfg.NativeDialogs = isTrue(v)
	}

	if v, ok := lookup(EnvHistoryLimit); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			warnings = append(warnings, EnvHistoryLimit+": want a non-negative integer, got "+strconv.Quote(v))
		} else {
			cfg.HistoryLimit = n
		}
	}

	return cfg, warnings
}

func isTrue(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}
