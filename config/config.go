// Package config loads the client configuration from YAML files with
// environment variable overrides.
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
)

const (
	defaultBaseURL  = "http://localhost:5000/api"
	defaultTimeout  = 10 * time.Second
	defaultStateDir = ".storefront"
	defaultLogLevel = "info"
	defaultStubPort = 5000
	defaultTokenTTL = 7 * 24 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// API configures the outbound gateway client.
	API struct {
		BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
		Timeout time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"api" yaml:"api"`

	// State configures where the session credentials persist across
	// process restarts.
	State struct {
		Dir string `json:"dir" yaml:"dir"`
	} `json:"state" yaml:"state"`

	// Stub configures the local in-memory API server.
	Stub StubConfig `json:"stub" yaml:"stub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StubConfig defines the local development server settings.
type StubConfig struct {
	Port      int           `json:"port" yaml:"port"`
	JWTSecret string        `json:"jwtSecret" yaml:"jwtSecret"`
	TokenTTL  time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// LoadWithEnv loads <name>.yaml through koanf and overlays environment
// variables (API_BASEURL, STATE_DIR, ...). A missing file is not an
// error for a client binary; defaults plus environment apply.
func LoadWithEnv[T any](name string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := append([]string{"."}, configPath...)

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile != "" {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", name)
		}
	}

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// API_BASEURL -> api.baseurl; matching is case-insensitive below.
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
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
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

// New loads the configuration and applies defaults.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config")
	if err != nil {
		return nil, err
	}

	if cfg.Env.ServiceName == "" {
		cfg.Env.ServiceName = "storefront"
	}
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = defaultLogLevel
	}
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		cfg.API.BaseURL = defaultBaseURL
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultTimeout
	}
	if strings.TrimSpace(cfg.State.Dir) == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolve home directory")
		}
		cfg.State.Dir = filepath.Join(home, defaultStateDir)
	}
	if cfg.Stub.Port == 0 {
		cfg.Stub.Port = defaultStubPort
	}
	if cfg.Stub.TokenTTL <= 0 {
		cfg.Stub.TokenTTL = defaultTokenTTL
	}

	return cfg, nil
}
