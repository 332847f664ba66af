// Package recordkeep contains shared configuration for the record demo
// applications.
package recordkeep

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is a structure used for application configuration.
// It is intended to be mapped by viper.
type Config struct {
	ApplicationName string `mapstructure:"application_name"`

	Environment Environment `mapstructure:"environment"`

	Log   Log   `mapstructure:"log"`
	Store Store `mapstructure:"store"`
}

const (
	LocalEnv Environment = "local"
	TestEnv  Environment = "test"
)

// Environments is the list of all supported environments.
func Environments() []Environment {
	return []Environment{LocalEnv, TestEnv}
}

type Environment string

type (
	// Log configures the console logger of the demos.
	Log struct {
		Level string `mapstructure:"level"`
	}

	// Store configures the optional local JSON store.
	// The demos run purely in memory unless Enabled is set.
	Store struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"`
	}
)

// DefaultViper returns a new viper instance with all default values
// from Config set.
func DefaultViper() *Viper {
	vip := viper.New()

	vip.SetDefault("application_name", "")

	vip.SetDefault("environment", "local")

	vip.SetDefault("log.level", "info")

	vip.SetDefault("store.enabled", false)
	vip.SetDefault("store.path", "./data")

	return &Viper{Viper: vip}
}

var errConfigLoadFailed = errors.New("loading configuration failed")

// Viper is a wrapper around viper.Viper for configuration loading.
// The only purpose is to overwrite the Unmarshal method, so that only
// supported environments are accepted and the developer does not have to
// think about it when using DefaultViper.
type Viper struct {
	*viper.Viper
}

func (vip *Viper) Unmarshal(rawVal any, _ ...viper.DecoderConfigOption) error {
	err := vip.Viper.Unmarshal(rawVal, viper.DecodeHook(allowedEnvironmentHookFunc()))
	if err != nil {
		return fmt.Errorf("%w: could not decode configuration into struct: %v", errConfigLoadFailed, err)
	}

	return nil
}

func allowedEnvironmentHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(Environment("")) {
			return data, nil
		}

		env := Environments()
		if slices.Contains(env, Environment(data.(string))) {
			return data, nil
		}

		e := make([]string, 0, len(env))
		for _, env := range env {
			e = append(e, string(env))
		}

		return data, fmt.Errorf("value is not allowed, use one of: %s", strings.Join(e, ", ")) //nolint:err113 // accept dynamic error
	}
}
