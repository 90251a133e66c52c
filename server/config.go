package server

import (
	"fmt"
	"math"
	"net"
	"runtime"
	"strconv"
	"strings"
)

type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ParseEnvironment accepts the full environment names and their short forms
// (dev, stage, prod), case-insensitively.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return Development, nil
	case "staging", "stage":
		return Staging, nil
	case "production", "prod":
		return Production, nil
	default:
		return "", fmt.Errorf("%w: %q (valid environments: development, staging, production)", ErrInvalidEnvironment, s)
	}
}

// ActiveEnvironment resolves the environment the server runs in from the raw
// selector value. An empty selector means development; an unrecognized one falls
// back to production.
func ActiveEnvironment(selector string) Environment {
	if selector == "" {
		return Development
	}
	env, err := ParseEnvironment(selector)
	if err != nil {
		return Production
	}
	return env
}

// DefaultPort is the port used when none is configured.
const DefaultPort uint16 = 8000

// Config is the runtime configuration consumed by New.
type Config struct {
	Environment Environment
	Address     string
	Port        uint16
	LogLevel    LogLevel
	Workers     uint16
	SecretKey   string
	Extras      map[string]Value
}

// DefaultConfig returns the built-in configuration for env.
func DefaultConfig(env Environment) Config {
	cfg := Config{
		Environment: env,
		Address:     "0.0.0.0",
		Port:        DefaultPort,
		LogLevel:    LogNormal,
		Workers:     defaultWorkers(),
		Extras:      map[string]Value{},
	}

	switch env {
	case Development:
		cfg.Address = "localhost"
	case Production:
		cfg.LogLevel = LogCritical
	}

	return cfg
}

func defaultWorkers() uint16 {
	return uint16(min(runtime.NumCPU()*2, math.MaxUint16))
}

// Addr returns the host:port pair the server listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(int(c.Port)))
}

// Extra returns the extras value stored under key.
func (c Config) Extra(key string) (Value, bool) {
	v, ok := c.Extras[key]
	return v, ok
}

// ExtraString returns the extras value stored under key if it is a string.
func (c Config) ExtraString(key string) (string, bool) {
	v, ok := c.Extras[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
