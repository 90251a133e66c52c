package settings

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/sagarc03/website"
)

const (
	// EnvPrefix selects the environment variables merged as settings and extras.
	EnvPrefix = "APP"
	// EnvSelector names the variable selecting the environment-specific config file.
	EnvSelector = "APP_ENV"

	DefaultStaticDir   = "public"
	DefaultStaticRoute = "/static"

	baseConfigName = "config"
)

// environments are the EnvSelector values that have their own config file.
var environments = map[string]bool{
	"development": true,
	"production":  true,
	"staging":     true,
}

// DirectEnv maps settings keys to environment variables that are read without
// the APP_ prefix.
var DirectEnv = EnvMapping{
	"port": "PORT",
}

// Sources are the inputs Load reads from. Zero fields use the process
// environment, the OS filesystem and the working directory.
type Sources struct {
	Env Env
	Fs  afero.Fs
	// Dir is searched for config.<ext> and config-<env>.<ext>.
	Dir string
	// Required maps settings keys to environment variables that must be set.
	// They are applied together with DirectEnv.
	Required EnvMapping
}

func (s Sources) withDefaults() Sources {
	if s.Env == nil {
		s.Env = OSEnv{}
	}
	if s.Fs == nil {
		s.Fs = afero.NewOsFs()
	}
	if s.Dir == "" {
		s.Dir = "."
	}
	return s
}

func defaults() map[string]any {
	return map[string]any{
		"static_dir":   DefaultStaticDir,
		"static_route": DefaultStaticRoute,
	}
}

// Load merges every settings source and returns the typed result.
// Order of precedence (lowest to highest):
//
//  1. Defaults
//  2. DirectEnv and Sources.Required
//  3. config.<ext>
//  4. config-<env>.<ext> when APP_ENV is development, production or staging
//  5. APP_ prefixed environment variables, ignoring empty values
//
// Extras are the APP_ prefixed variables left over once settings fields are
// removed.
func Load(src Sources) (*Settings, error) {
	src = src.withDefaults()
	merged := make(map[string]any)

	// 1. Defaults
	mergeInto(merged, defaults())

	// 2. Direct environment mappings
	mergeInto(merged, DirectEnv.Lookup(src.Env))
	if len(src.Required) > 0 {
		required, err := src.Required.LookupStrict(src.Env)
		if err != nil {
			return nil, err
		}
		mergeInto(merged, required)
	}

	// 3. Base config file
	base, err := readConfigFile(src.Fs, src.Dir, baseConfigName)
	if err != nil {
		return nil, err
	}
	mergeInto(merged, base)

	// 4. Environment-specific config file
	if appEnv, _ := src.Env.LookupEnv(EnvSelector); environments[appEnv] {
		envConf, err := readConfigFile(src.Fs, src.Dir, baseConfigName+"-"+appEnv)
		if err != nil {
			return nil, err
		}
		mergeInto(merged, envConf)
	}

	// 5. Prefixed environment variables
	for k, v := range prefixed(src.Env, EnvPrefix) {
		merged[k] = v
	}

	extras := prefixed(src.Env, EnvPrefix)
	for _, key := range reservedKeys {
		delete(extras, key)
	}
	merged["extras"] = extras

	var s Settings
	if err := decode(merged, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", website.ErrTypeMismatch, err)
	}

	if err := validator.New().Struct(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", website.ErrInvalidSettings, err)
	}

	return &s, nil
}

// readConfigFile reads name.<ext> from dir. A missing file yields no values.
func readConfigFile(fs afero.Fs, dir, name string) (map[string]any, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(name)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}

		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("%w: %s: %w", website.ErrConfigParse, v.ConfigFileUsed(), err)
		}

		return nil, fmt.Errorf("%w: %s: %w", website.ErrConfigRead, v.ConfigFileUsed(), err)
	}

	return v.AllSettings(), nil
}

// mergeInto copies src over dst, merging nested maps key by key.
func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		if srcMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				mergeInto(dstMap, srcMap)
				continue
			}
		}
		dst[k] = v
	}
}

func decode(input map[string]any, out *Settings) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       uint16RangeHook,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// uint16RangeHook rejects values that would wrap when stored in a uint16.
// Strings must be plain decimal numbers; the decoder alone would turn "" into 0
// and accept hex or octal prefixes.
func uint16RangeHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Uint16 {
		return data, nil
	}

	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.String:
		n, err := strconv.ParseUint(v.String(), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid uint16", v.String())
		}
		return uint16(n), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n := v.Int(); n < 0 || n > math.MaxUint16 {
			return nil, fmt.Errorf("%d out of range for uint16", n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n := v.Uint(); n > math.MaxUint16 {
			return nil, fmt.Errorf("%d out of range for uint16", n)
		}
	case reflect.Float32, reflect.Float64:
		if f := v.Float(); f < 0 || f > math.MaxUint16 || f != math.Trunc(f) {
			return nil, fmt.Errorf("%v is not a valid uint16", f)
		}
	}

	return data, nil
}
