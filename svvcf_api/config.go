package svvcf_api

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

var ErrInvalidConfig = errors.New("invalid config")

// The struct representing the configuration file
// The config file is a YAML file
type Config struct {
	// The value of the ##source header line
	Source string `yaml:"source"`

	// The value of the ##reference header line
	Reference string `yaml:"reference"`

	// The names of the sample columns
	Samples []string `yaml:"samples"`

	// The contigs to declare in the header
	Contigs []HeaderLineIdLength `yaml:"contigs"`

	// The filter labels and thresholds
	Filters FilterConfig `yaml:"filters"`

	// The scores used by the aligner that produced the candidates
	Alignment AlignmentScores[int] `yaml:"alignment"`
}

// The filter labels and the thresholds interpolated into their descriptions
type FilterConfig struct {
	MaxDepthFilterLabel string  `yaml:"maxDepthFilterLabel"`
	MaxDepthFactor      float64 `yaml:"maxDepthFactor"`
	MaxMQ0FracLabel     string  `yaml:"maxMQ0FracLabel"`
	MaxMQ0Frac          float64 `yaml:"maxMQ0Frac"`
	NoPairSupportLabel  string  `yaml:"noPairSupportLabel"`
	MinAltFilterLabel   string  `yaml:"minAltFilterLabel"`
	MinPassAltScore     int     `yaml:"minPassAltScore"`
	MinGTFilterLabel    string  `yaml:"minGTFilterLabel"`
	MinPassGTScore      int     `yaml:"minPassGTScore"`
	RnaFilterLabel      string  `yaml:"rnaFilterLabel"`
}

// Read-only alignment scoring parameters
type AlignmentScores[T ~int | ~float64] struct {
	Match    T `yaml:"match"`
	Mismatch T `yaml:"mismatch"`
	Open     T `yaml:"open"`
	Extend   T `yaml:"extend"`
}

// Returns a config with all thresholds set to their defaults
func DefaultConfig() *Config {
	return &Config{
		Samples: []string{"SAMPLE"},
		Filters: FilterConfig{
			MaxDepthFilterLabel: "MaxDepth",
			MaxDepthFactor:      3.0,
			MaxMQ0FracLabel:     "MaxMQ0Frac",
			MaxMQ0Frac:          0.4,
			NoPairSupportLabel:  "NoPairSupport",
			MinAltFilterLabel:   "MinQUAL",
			MinPassAltScore:     20,
			MinGTFilterLabel:    "MinGQ",
			MinPassGTScore:      15,
			RnaFilterLabel:      "RNAFusionSupport",
		},
		Alignment: AlignmentScores[int]{
			Match:    1,
			Mismatch: -4,
			Open:     -6,
			Extend:   -1,
		},
	}
}

// Read the configuration file, cast it to its struct and validate
func ReadConfig(path string) (*Config, error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the config file: %w", err)
	}
	return ParseConfig(configFile)
}

// Parse the YAML contents of a configuration file
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse the config file: %w", err)
	}

	config.defineMissing()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Define all missing mandatory fields
func (config *Config) defineMissing() {
	defaults := DefaultConfig()
	if len(config.Samples) == 0 {
		config.Samples = defaults.Samples
	}

	labels := []struct {
		value    *string
		fallback string
	}{
		{&config.Filters.MaxDepthFilterLabel, defaults.Filters.MaxDepthFilterLabel},
		{&config.Filters.MaxMQ0FracLabel, defaults.Filters.MaxMQ0FracLabel},
		{&config.Filters.NoPairSupportLabel, defaults.Filters.NoPairSupportLabel},
		{&config.Filters.MinAltFilterLabel, defaults.Filters.MinAltFilterLabel},
		{&config.Filters.MinGTFilterLabel, defaults.Filters.MinGTFilterLabel},
		{&config.Filters.RnaFilterLabel, defaults.Filters.RnaFilterLabel},
	}
	for _, label := range labels {
		if *label.value == "" {
			*label.value = label.fallback
		}
	}
}

// Validate the thresholds and labels of the config
func (config *Config) Validate() error {
	f := config.Filters
	if f.MaxDepthFactor <= 0 {
		return fmt.Errorf("%w: maxDepthFactor must be positive, got %v", ErrInvalidConfig, f.MaxDepthFactor)
	}
	if f.MaxMQ0Frac < 0 || f.MaxMQ0Frac > 1 {
		return fmt.Errorf("%w: maxMQ0Frac must be within [0,1], got %v", ErrInvalidConfig, f.MaxMQ0Frac)
	}
	if f.MinPassAltScore < 0 || f.MinPassGTScore < 0 {
		return fmt.Errorf("%w: minimum scores can't be negative", ErrInvalidConfig)
	}

	seen := map[string]bool{}
	for _, label := range []string{f.MaxDepthFilterLabel, f.MaxMQ0FracLabel, f.NoPairSupportLabel, f.MinAltFilterLabel, f.MinGTFilterLabel, f.RnaFilterLabel} {
		if label == PassFilter {
			return fmt.Errorf("%w: filter label %q is reserved", ErrInvalidConfig, label)
		}
		if seen[label] {
			return fmt.Errorf("%w: filter label %q is used more than once", ErrInvalidConfig, label)
		}
		seen[label] = true
	}

	samples := map[string]bool{}
	for _, sample := range config.Samples {
		if sample == "" || samples[sample] {
			return fmt.Errorf("%w: sample names must be unique and non-empty", ErrInvalidConfig)
		}
		samples[sample] = true
	}

	return config.Alignment.Validate()
}

func (scores AlignmentScores[T]) Validate() error {
	if scores.Match <= 0 {
		return fmt.Errorf("%w: alignment match score must be positive", ErrInvalidConfig)
	}
	if scores.Mismatch > 0 || scores.Open > 0 || scores.Extend > 0 {
		return fmt.Errorf("%w: alignment mismatch, open and extend scores can't be positive", ErrInvalidConfig)
	}
	return nil
}
