package quno

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/theapemachine/errnie"
)

type Config struct {
	// Shots is the sample count of one amplification run.
	Shots int `mapstructure:"shots"`

	// Seed feeds the PCG source of a deck; zero derives one from the clock.
	Seed uint64 `mapstructure:"seed"`

	// SuperpositionChance is the probability a dealt card has two branches.
	SuperpositionChance float64 `mapstructure:"superposition_chance"`

	// PhaseStep is the RX angle one AddPhase applies to the top card.
	PhaseStep float64 `mapstructure:"phase_step"`
}

func NewConfig() *Config {
	return &Config{
		Shots:               1024,
		Seed:                0,
		SuperpositionChance: 0.25,
		PhaseStep:           math.Pi / 2,
	}
}

/*
LoadConfig layers an optional quno.yaml from the working directory and
QUNO_* environment variables over NewConfig's defaults. A missing file is
not an error; a malformed one is.
*/
func LoadConfig(paths ...string) (*Config, error) {
	cfg := NewConfig()
	v := viper.New()

	v.SetDefault("shots", cfg.Shots)
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("superposition_chance", cfg.SuperpositionChance)
	v.SetDefault("phase_step", cfg.PhaseStep)

	v.SetConfigName("quno")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("quno")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.Shots <= 0 {
		errnie.Info("LoadConfig - shots %d not positive, using default", cfg.Shots)
		cfg.Shots = NewConfig().Shots
	}

	return cfg, nil
}

// seed resolves the configured seed, falling back to the clock.
func (c *Config) seed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
