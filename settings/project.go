package settings

import (
	"fmt"
	"log/slog"

	"github.com/sagarc03/website/server"
)

// ServerConfig projects s onto the defaults of env. Fields left nil keep the
// server default. An unrecognized log level becomes server.LogNormal.
//
// Extras are applied all or nothing: when any entry cannot be converted the
// defaults are kept and the failure is logged on logger (slog.Default() when nil).
func (s Settings) ServerConfig(env server.Environment, logger *slog.Logger) server.Config {
	cfg := server.DefaultConfig(env)

	if s.Address != nil {
		cfg.Address = *s.Address
	}
	if s.Port != nil {
		cfg.Port = *s.Port
	}
	if s.Log != nil {
		level, err := server.ParseLogLevel(*s.Log)
		if err != nil {
			level = server.LogNormal
		}
		cfg.LogLevel = level
	}
	if s.Workers != nil {
		cfg.Workers = *s.Workers
	}
	if s.SecretKey != nil {
		cfg.SecretKey = *s.SecretKey
	}

	extras, err := convertExtras(s.Extras)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("extras not applied", "err", err)
	} else {
		cfg.Extras = extras
	}

	return cfg
}

func convertExtras(extras map[string]string) (map[string]server.Value, error) {
	out := make(map[string]server.Value, len(extras))
	for key, raw := range extras {
		v, err := server.ToValue(raw)
		if err != nil {
			return nil, fmt.Errorf("extra %q: %w", key, err)
		}
		out[key] = v
	}
	return out, nil
}
