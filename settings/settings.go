package settings

import "maps"

// Settings is the merged application configuration.
type Settings struct {
	// StaticDir is the directory holding static assets.
	StaticDir string `mapstructure:"static_dir" json:"static_dir" yaml:"static_dir" toml:"static_dir" validate:"required"`
	// StaticRoute is the URL prefix static assets are served under.
	StaticRoute string `mapstructure:"static_route" json:"static_route" yaml:"static_route" toml:"static_route" validate:"required,startswith=/"`

	// The remaining fields fall back to the server defaults when nil.

	Address   *string `mapstructure:"address" json:"address,omitempty" yaml:"address,omitempty" toml:"address,omitempty"`
	Port      *uint16 `mapstructure:"port" json:"port,omitempty" yaml:"port,omitempty" toml:"port,omitempty"`
	Log       *string `mapstructure:"log" json:"log,omitempty" yaml:"log,omitempty" toml:"log,omitempty"`
	Workers   *uint16 `mapstructure:"workers" json:"workers,omitempty" yaml:"workers,omitempty" toml:"workers,omitempty" validate:"omitempty,min=1"`
	SecretKey *string `mapstructure:"secret_key" json:"secret_key,omitempty" yaml:"secret_key,omitempty" toml:"secret_key,omitempty"`

	// Extras holds APP_ prefixed environment values that are not settings fields.
	Extras map[string]string `mapstructure:"extras" json:"extras" yaml:"extras" toml:"extras"`
}

// reservedKeys are excluded from Extras because they are fields of Settings.
var reservedKeys = []string{
	"static_dir",
	"static_route",
	"address",
	"port",
	"log",
	"workers",
	"secret_key",
	"extras",
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	c := s
	c.Address = clonePtr(s.Address)
	c.Port = clonePtr(s.Port)
	c.Log = clonePtr(s.Log)
	c.Workers = clonePtr(s.Workers)
	c.SecretKey = clonePtr(s.SecretKey)
	c.Extras = maps.Clone(s.Extras)
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
