// Package config loads the defaults of the pbs commands from a configuration
// file, the environment and a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "PBS"

// Config holds the defaults of the simulation and tiers commands.
type Config struct {
	Trials    int    `mapstructure:"trials"`
	Seed      uint64 `mapstructure:"seed"`
	Shards    int    `mapstructure:"shards"`
	Tiers     string `mapstructure:"tiers"`
	TiersPath string `mapstructure:"tiers-path"`
	Currency  string `mapstructure:"currency"`
	Bins      int    `mapstructure:"bins"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Trials:    100_000,
		Seed:      0,
		Shards:    runtime.NumCPU(),
		Tiers:     "",
		TiersPath: "$",
		Currency:  "GBP",
		Bins:      20,
	}
}

// Options tells Load where to look.
type Options struct {
	File   string // configuration file, empty to search pbs.yaml
	DotEnv string // .env file, empty for ".env" in the current directory
}

// Load reads the configuration. Values are taken, by decreasing priority, from
// PBS_* environment variables (including the ones set by the .env file), the
// configuration file and Default. A missing .env or searched configuration
// file is not an error, a missing explicit File is.
func Load(opts Options) (*Config, error) {
	dotenv := opts.DotEnv
	if dotenv == "" {
		dotenv = ".env"
	}
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load %q: %w", dotenv, err)
	}

	v := viper.New()
	def := Default()
	v.SetDefault("trials", def.Trials)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("shards", def.Shards)
	v.SetDefault("tiers", def.Tiers)
	v.SetDefault("tiers-path", def.TiersPath)
	v.SetDefault("currency", def.Currency)
	v.SetDefault("bins", def.Bins)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName("pbs")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/pbs")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("cannot read configuration: %w", err)
		}
	} else {
		log.WithField("file", v.ConfigFileUsed()).Debug("configuration loaded")
	}

	cfg := &Config{
		Trials:    v.GetInt("trials"),
		Seed:      v.GetUint64("seed"),
		Shards:    v.GetInt("shards"),
		Tiers:     v.GetString("tiers"),
		TiersPath: v.GetString("tiers-path"),
		Currency:  strings.ToUpper(v.GetString("currency")),
		Bins:      v.GetInt("bins"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	var errs []error
	if c.Trials <= 0 {
		errs = append(errs, fmt.Errorf("trials must be positive, got %d", c.Trials))
	}
	if c.Shards <= 0 {
		errs = append(errs, fmt.Errorf("shards must be positive, got %d", c.Shards))
	}
	if c.Bins < 0 {
		errs = append(errs, fmt.Errorf("bins cannot be negative, got %d", c.Bins))
	}
	if c.Currency == "" {
		errs = append(errs, errors.New("currency is missing"))
	}
	return errors.Join(errs...)
}
