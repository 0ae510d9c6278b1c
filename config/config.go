// Package config loads application configuration from a YAML file with
// environment variable overrides. Secrets (the JWT signing key, database
// credentials) are expected to arrive through the environment in production;
// nothing here is hard-coded.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	// envPrefix namespaces the override variables: TODO_JWT_SECRET maps to
	// the jwt.secret key, TODO_HTTP_PORT to http.port, and so on.
	envPrefix = "TODO_"

	defaultHTTPPort = 8080
	defaultTokenTTL = time.Hour * 24 * 7
)

// Log holds logger settings.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// Config is the root configuration for the service.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"servicename" yaml:"servicename"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readtimeout" yaml:"readtimeout"`
			ReadHeaderTimeout time.Duration `json:"readheadertimeout" yaml:"readheadertimeout"`
			WriteTimeout      time.Duration `json:"writetimeout" yaml:"writetimeout"`
			IdleTimeout       time.Duration `json:"idletimeout" yaml:"idletimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	JWT struct {
		// Secret signs session tokens. Required; there is no default.
		Secret string `json:"secret" yaml:"secret"`
		// TTL is the token lifetime. Defaults to 7 days.
		TTL time.Duration `json:"ttl" yaml:"ttl"`
	} `json:"jwt" yaml:"jwt"`
}

// Load reads <env>.yaml from the first search path that has it, then overlays
// TODO_-prefixed environment variables.
func Load(currEnv string, searchPaths ...string) (*Config, error) {
	cfg := new(Config)
	koanfInstance := koanf.New(".")

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// TODO_JWT_SECRET -> jwt.secret. Config keys are all lowercase,
			// so a plain lowering lines env keys up with the YAML tree.
			key := strings.ToLower(strings.TrimPrefix(k, envPrefix))

			return strings.ReplaceAll(key, "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching so env overrides land on the
				// right struct fields.
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	cfg.applyDefaults()

	return cfg, nil
}

// New loads the default configuration for the running service.
func New() (*Config, error) {
	return Load("config", ".", "config", "../config", "../../config")
}

func (cfg *Config) applyDefaults() {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = defaultTokenTTL
	}
}
