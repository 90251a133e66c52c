package server_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/website/server"
)

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		input string
		want  server.Environment
	}{
		{"development", server.Development},
		{"dev", server.Development},
		{"Staging", server.Staging},
		{"stage", server.Staging},
		{"PRODUCTION", server.Production},
		{"prod", server.Production},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := server.ParseEnvironment(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEnvironment_Invalid(t *testing.T) {
	_, err := server.ParseEnvironment("qa")
	assert.ErrorIs(t, err, server.ErrInvalidEnvironment)
}

func TestActiveEnvironment(t *testing.T) {
	assert.Equal(t, server.Development, server.ActiveEnvironment(""))
	assert.Equal(t, server.Staging, server.ActiveEnvironment("staging"))
	assert.Equal(t, server.Production, server.ActiveEnvironment("unknown_value"))
}

func TestDefaultConfig(t *testing.T) {
	dev := server.DefaultConfig(server.Development)
	assert.Equal(t, server.Development, dev.Environment)
	assert.Equal(t, "localhost", dev.Address)
	assert.Equal(t, server.DefaultPort, dev.Port)
	assert.Equal(t, server.LogNormal, dev.LogLevel)
	assert.Positive(t, dev.Workers)
	assert.Empty(t, dev.SecretKey)
	assert.NotNil(t, dev.Extras)
	assert.Empty(t, dev.Extras)

	staging := server.DefaultConfig(server.Staging)
	assert.Equal(t, "0.0.0.0", staging.Address)
	assert.Equal(t, server.LogNormal, staging.LogLevel)

	prod := server.DefaultConfig(server.Production)
	assert.Equal(t, "0.0.0.0", prod.Address)
	assert.Equal(t, server.LogCritical, prod.LogLevel)
}

func TestConfig_Addr(t *testing.T) {
	cfg := server.DefaultConfig(server.Development)
	assert.Equal(t, "localhost:8000", cfg.Addr())

	cfg.Address = "::1"
	cfg.Port = 9000
	assert.Equal(t, "[::1]:9000", cfg.Addr())
}

func TestConfig_Extras(t *testing.T) {
	cfg := server.DefaultConfig(server.Development)
	cfg.Extras["name"] = "demo"
	cfg.Extras["count"] = int64(3)

	v, ok := cfg.Extra("count")
	assert.True(t, ok)
	assert.Equal(t, int64(3), v)

	s, ok := cfg.ExtraString("name")
	assert.True(t, ok)
	assert.Equal(t, "demo", s)

	_, ok = cfg.ExtraString("count")
	assert.False(t, ok)

	_, ok = cfg.Extra("missing")
	assert.False(t, ok)
}
