package config

import (
	"github.com/knadh/koanf/v2"
)

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"server.host": "0.0.0.0",
		"server.port": 8080,

		"limits.max_upload_bytes": 10 * 1024 * 1024,
		"limits.max_input_chars":  6000,

		"poll.interval":     "2s",
		"poll.max_attempts": 30,

		"logging.level":  "info",
		"logging.format": "pretty",
	}

	for key, val := range defaults {
		k.Set(key, val)
	}
	return nil
}
