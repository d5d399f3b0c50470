package loader

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a configuration value is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix prefixes every environment override, e.g. UNISIM_FUNDING
const EnvPrefix = "UNISIM"

// Config keys
const (
	KeyStaffFile   = "staff_file"
	KeyFunding     = "funding"
	KeyYears       = "years"
	KeySeed        = "seed"
	KeyDelay       = "delay"
	KeyInteractive = "interactive"
	KeyQuiet       = "quiet"
	KeyJournal     = "journal"
	KeyReport      = "report"
	KeyMetrics     = "metrics"
	KeyVerbose     = "verbose"
)

// Config holds the run settings merged from flags, environment and file
type Config struct {
	StaffFile   string        `mapstructure:"staff_file"`
	Funding     float64       `mapstructure:"funding"`
	Years       int           `mapstructure:"years"`
	Seed        int64         `mapstructure:"seed"`
	Delay       time.Duration `mapstructure:"delay"`
	Interactive bool          `mapstructure:"interactive"`
	Quiet       bool          `mapstructure:"quiet"`
	Journal     string        `mapstructure:"journal"`
	Report      string        `mapstructure:"report"`
	Metrics     string        `mapstructure:"metrics"`
	Verbose     bool          `mapstructure:"verbose"`
}

// SetDefaults registers the default of every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyStaffFile, "")
	v.SetDefault(KeyFunding, 1000.0)
	v.SetDefault(KeyYears, 10)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyDelay, 500*time.Millisecond)
	v.SetDefault(KeyInteractive, true)
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyJournal, "")
	v.SetDefault(KeyReport, "")
	v.SetDefault(KeyMetrics, "")
	v.SetDefault(KeyVerbose, false)
}

// LoadConfig reads the optional config file, applies environment overrides
// and validates the merged result. Flags must already be bound to v.
func LoadConfig(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every value is usable
func (c Config) Validate() error {
	switch {
	case c.StaffFile == "":
		return fmt.Errorf("%w: staff file is required", ErrInvalidConfig)
	case c.Funding < 0:
		return fmt.Errorf("%w: funding must be >= 0, got %v", ErrInvalidConfig, c.Funding)
	case c.Years < 1:
		return fmt.Errorf("%w: years must be >= 1, got %d", ErrInvalidConfig, c.Years)
	case c.Delay < 0:
		return fmt.Errorf("%w: delay must be >= 0, got %s", ErrInvalidConfig, c.Delay)
	}
	return nil
}
