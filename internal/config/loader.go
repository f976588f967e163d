package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/esomanifest-go/internal/utils"
)

// EnvPrefix is the prefix of environment overrides (ESOMANIFEST_CACHE_ENABLED, ...)
const EnvPrefix = "ESOMANIFEST"

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings. An empty
// configFile searches ConfigDir() and the working directory.
func Load(configFile string) (*Config, error) {
	return load(viper.GetViper(), configFile)
}

// LoadWithViper loads configuration into a fresh viper instance and returns it
func LoadWithViper(configFile string) (*Config, *viper.Viper, error) {
	v := viper.New()
	cfg, err := load(v, configFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

func load(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Cache.Directory = utils.ExpandPath(cfg.Cache.Directory)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("validation.full", DefaultFullValidation)
	v.SetDefault("validation.strict", DefaultStrict)

	v.SetDefault("source.encoding", DefaultEncoding)
	v.SetDefault("source.max_line_bytes", DefaultMaxLineBytes)

	v.SetDefault("cache.enabled", DefaultCacheEnabled)
	v.SetDefault("cache.ttl", DefaultCacheTTL)
	v.SetDefault("cache.directory", CacheDir())

	v.SetDefault("concurrency.workers", DefaultWorkers)

	v.SetDefault("output.format", DefaultOutputFormat)
	v.SetDefault("output.color", DefaultOutputColor)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

// Save writes cfg as YAML to path, creating the parent directory
func Save(cfg *Config, path string) error {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	return utils.EnsureDir(ConfigDir())
}

// EnsureCacheDir creates the cache directory if it doesn't exist
func EnsureCacheDir() error {
	return utils.EnsureDir(CacheDir())
}
