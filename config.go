package guessx

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/projectdiscovery/guessx/scoring"
	"gopkg.in/yaml.v3"
)

//go:embed estimator.yaml
var defaultConfigBin []byte

// DefaultConfig is the embedded estimator configuration
var DefaultConfig *Config

func init() {
	cfg, err := parseConfig(defaultConfigBin)
	if err != nil {
		panic(fmt.Sprintf("embedded estimator config: %v", err))
	}
	DefaultConfig = cfg
}

// CrackRate is an attack scenario, in guesses per second
type CrackRate struct {
	Name      string  `yaml:"name" validate:"required"`
	PerSecond float64 `yaml:"per-second" validate:"gt=0"`
}

// Config is the tuning table of the engine
type Config struct {
	// MaxLength is the longest password accepted, in runes
	MaxLength int `yaml:"max-length" validate:"gte=1"`
	// Truncate estimates the prefix of longer passwords instead of failing
	Truncate          bool           `yaml:"truncate"`
	MaxL33tSubs       int            `yaml:"max-l33t-subs" validate:"gte=0"`
	ParallelThreshold int            `yaml:"parallel-threshold" validate:"gte=0"`
	SequenceMaxDelta  int            `yaml:"sequence-max-delta" validate:"gte=1"`
	DateMinYear       int            `yaml:"date-min-year" validate:"gte=100"`
	DateMaxYear       int            `yaml:"date-max-year" validate:"gtfield=DateMinYear"`
	ScoreThresholds   []float64      `yaml:"score-thresholds" validate:"len=4,dive,gte=1"`
	CrackRates        []CrackRate    `yaml:"crack-rates" validate:"min=1,dive"`
	Params            scoring.Params `yaml:"params"`
}

// Validate checks field constraints and that thresholds ascend
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for i := 1; i < len(c.ScoreThresholds); i++ {
		if c.ScoreThresholds[i] <= c.ScoreThresholds[i-1] {
			return fmt.Errorf("%w: score-thresholds must be strictly ascending", ErrInvalidConfig)
		}
	}
	return nil
}

// Clone returns a deep copy of the config
func (c *Config) Clone() *Config {
	clone := *c
	clone.ScoreThresholds = append([]float64(nil), c.ScoreThresholds...)
	clone.CrackRates = append([]CrackRate(nil), c.CrackRates...)
	return &clone
}

// NewConfig reads config from file, unset fields keep their defaults
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return parseConfig(bin)
}

func parseConfig(bin []byte) (*Config, error) {
	var cfg Config
	if DefaultConfig != nil {
		cfg = *DefaultConfig.Clone()
	}
	if err := yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	return os.WriteFile(filePath, defaultConfigBin, 0644)
}
