package utils

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Fantom-foundation/Tally/logger"
	"github.com/Fantom-foundation/Tally/probability"
	"github.com/urfave/cli/v2"
)

// Config summarizes the options of a tally command.
type Config struct {
	AppName     string
	CommandName string

	Bigram     bool    // condition generated symbols on their predecessor
	Bins       int     // number of possible samples; 0 selects the estimator's default
	Cache      int     // number of conditional estimates kept in memory
	Estimator  string  // name of the probability estimator
	Gamma      float64 // constant of the lidstone estimator
	LogLevel   string  // level of the logging
	Lowercase  bool    // fold the case of symbols
	NumSamples int     // number of generated samples
	Output     string  // output path of the ECDF in JSON format
	RandomSeed int64   // seed of the random generator
	Suffix     string  // suffix of files read from directories
	Top        int     // number of rows in printed tables; 0 prints all
}

type configContext struct {
	log       logger.Logger   // logger for printing logs in config functions
	cfg       *Config         // run configuration
	specified map[string]bool // flags given by the user
}

func NewConfigContext(cfg *Config, specified map[string]bool) *configContext {
	return &configContext{
		log:       logger.NewLogger(cfg.LogLevel, "Config"),
		cfg:       cfg,
		specified: specified,
	}
}

// NewTestConfig creates a new config for test purpose
func NewTestConfig(t *testing.T, estimator string, seed int64) *Config {
	if !isEstimator(estimator) {
		t.Fatalf("unknown estimator %v", estimator)
	}
	return &Config{
		Bins:       0,
		Cache:      CacheFlag.Value,
		Estimator:  estimator,
		Gamma:      GammaFlag.Value,
		LogLevel:   "Critical",
		NumSamples: NumSamplesFlag.Value,
		RandomSeed: seed,
		Top:        TopFlag.Value,
	}
}

// NewConfig creates and initializes Config with commandline arguments.
func NewConfig(ctx *cli.Context) (*Config, error) {
	// create config with user flag values, if not set default values are used
	cfg, specified, err := createConfigFromFlags(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot read flags; %w", err)
	}

	cc := NewConfigContext(cfg, specified)

	if err = cc.validate(); err != nil {
		return nil, err
	}

	cc.adjustMissingConfigValues()
	cc.reportNewConfig()

	return cfg, nil
}

func isEstimator(name string) bool {
	for _, known := range probability.EstimatorNames {
		if name == known {
			return true
		}
	}
	return false
}

// validate checks the option values; wrong values wrap probability.ErrValue.
func (cc *configContext) validate() error {
	cfg := cc.cfg
	cfg.Estimator = strings.ToLower(cfg.Estimator)
	if !isEstimator(cfg.Estimator) {
		return fmt.Errorf("unknown estimator %q, expected one of %v: %w", cfg.Estimator, strings.Join(probability.EstimatorNames, ", "), probability.ErrValue)
	}
	if cfg.Gamma < 0 {
		return fmt.Errorf("gamma must not be negative (%v): %w", cfg.Gamma, probability.ErrValue)
	}
	if cfg.Bins < 0 {
		return fmt.Errorf("number of bins must not be negative (%v): %w", cfg.Bins, probability.ErrValue)
	}
	if cfg.NumSamples < 1 {
		return fmt.Errorf("number of samples must be positive (%v): %w", cfg.NumSamples, probability.ErrValue)
	}
	if cfg.Cache < 0 {
		return fmt.Errorf("cache size must not be negative (%v): %w", cfg.Cache, probability.ErrValue)
	}
	if cfg.Top < 0 {
		return fmt.Errorf("number of rows must not be negative (%v): %w", cfg.Top, probability.ErrValue)
	}
	return nil
}

func (cc *configContext) adjustMissingConfigValues() {
	cfg := cc.cfg
	if cfg.RandomSeed < 0 {
		cfg.RandomSeed = time.Now().UnixNano()
		cc.log.Debugf("Random seed taken from the clock")
	}
	if cfg.Cache < 1 {
		cfg.Cache = probability.DefaultCacheSize
	}
	if cc.specified[GammaFlag.Name] && cfg.Estimator != probability.LidstoneName {
		cc.log.Warningf("Gamma is ignored by the %v estimator", cfg.Estimator)
	}
}

func (cc *configContext) reportNewConfig() {
	cfg := cc.cfg
	log := cc.log

	log.Noticef("Run config:")
	log.Infof("Estimator: %v", cfg.Estimator)
	if cfg.Estimator == probability.LidstoneName {
		log.Infof("Gamma: %v", cfg.Gamma)
	}
	if cfg.Bins > 0 {
		log.Infof("Bins: %v", cfg.Bins)
	}
	log.Infof("Random seed: %v", cfg.RandomSeed)
	if cfg.Lowercase {
		log.Infof("Case folding enabled")
	}
	if cfg.Bigram {
		log.Infof("Bigram estimates cached: %v", cfg.Cache)
	}
	if cfg.Output != "" {
		log.Infof("ECDF output file path: %v", cfg.Output)
	}
}
