package utils

import (
	"errors"
	"flag"
	"testing"

	"github.com/Fantom-foundation/Tally/logger"
	"github.com/Fantom-foundation/Tally/probability"
	"github.com/urfave/cli/v2"
)

func prepareMockCliContext(estimator string, gamma string, samples string) *cli.Context {
	flagSet := flag.NewFlagSet("utils_config_test", 0)
	flagSet.String(EstimatorFlag.Name, estimator, "probability estimator")
	flagSet.Float64(GammaFlag.Name, 0.5, "constant added to each count")
	flagSet.Int(NumSamplesFlag.Name, 10, "number of samples to generate")
	flagSet.Int64(RandomSeedFlag.Name, 7, "seed of the random generator")
	flagSet.Bool(LowercaseFlag.Name, true, "fold the case of symbols")
	flagSet.String(logger.LogLevelFlag.Name, "critical", "Level of the logging")
	if gamma != "" {
		flagSet.Set(GammaFlag.Name, gamma)
	}
	if samples != "" {
		flagSet.Set(NumSamplesFlag.Name, samples)
	}

	ctx := cli.NewContext(cli.NewApp(), flagSet, nil)

	command := &cli.Command{
		Name: "test_command",
		Flags: []cli.Flag{
			&EstimatorFlag,
			&GammaFlag,
			&NumSamplesFlag,
			&RandomSeedFlag,
			&LowercaseFlag,
			&logger.LogLevelFlag,
		},
	}
	ctx.Command = command

	return ctx
}

func TestUtilsConfig_NewConfig(t *testing.T) {
	ctx := prepareMockCliContext("lidstone", "0.25", "")

	cfg, err := NewConfig(ctx)
	if err != nil {
		t.Fatalf("Failed to create new config: %v", err)
	}
	if cfg.Estimator != probability.LidstoneName {
		t.Errorf("unexpected estimator %v", cfg.Estimator)
	}
	if cfg.Gamma != 0.25 {
		t.Errorf("unexpected gamma %v", cfg.Gamma)
	}
	if cfg.RandomSeed != 7 || !cfg.Lowercase {
		t.Errorf("flags were not read: %+v", cfg)
	}
	if cfg.CommandName != "test_command" {
		t.Errorf("unexpected command name %v", cfg.CommandName)
	}
}

func TestUtilsConfig_DefaultValues(t *testing.T) {
	ctx := prepareMockCliContext("MLE", "", "")

	cfg, err := NewConfig(ctx)
	if err != nil {
		t.Fatalf("Failed to create new config: %v", err)
	}
	if cfg.Estimator != probability.MLEName {
		t.Errorf("estimator name must be case insensitive, got %v", cfg.Estimator)
	}
	// flags not given to the command keep their defaults
	if cfg.Top != TopFlag.Value || cfg.Cache != CacheFlag.Value || cfg.Bins != 0 || cfg.Output != "" {
		t.Errorf("unexpected default values %+v", cfg)
	}
}

func TestUtilsConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		estimator string
		gamma     string
		samples   string
	}{
		{"unknown-estimator", "kneser-ney", "", ""},
		{"negative-gamma", "lidstone", "-1", ""},
		{"no-samples", "mle", "", "0"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := prepareMockCliContext(test.estimator, test.gamma, test.samples)
			_, err := NewConfig(ctx)
			if !errors.Is(err, probability.ErrValue) {
				t.Fatalf("expected ErrValue, got %v", err)
			}
		})
	}
}

func TestUtilsConfig_NewTestConfig(t *testing.T) {
	cfg := NewTestConfig(t, probability.WittenBellName, 3)
	if cfg.RandomSeed != 3 || cfg.NumSamples != NumSamplesFlag.Value {
		t.Fatalf("unexpected test config %+v", cfg)
	}
}

func prepareBigramCliContext(cache string) *cli.Context {
	flagSet := flag.NewFlagSet("utils_config_test", 0)
	flagSet.Bool(BigramFlag.Name, true, "condition on the predecessor")
	flagSet.Int(CacheFlag.Name, CacheFlag.Value, "number of conditional estimates")
	flagSet.String(logger.LogLevelFlag.Name, "critical", "Level of the logging")
	flagSet.Set(CacheFlag.Name, cache)

	ctx := cli.NewContext(cli.NewApp(), flagSet, nil)
	ctx.Command = &cli.Command{
		Name:  "test_command",
		Flags: []cli.Flag{&BigramFlag, &CacheFlag, &logger.LogLevelFlag},
	}
	return ctx
}

func TestUtilsConfig_Cache(t *testing.T) {
	cfg, err := NewConfig(prepareBigramCliContext("16"))
	if err != nil {
		t.Fatalf("Failed to create new config: %v", err)
	}
	if !cfg.Bigram || cfg.Cache != 16 {
		t.Errorf("flags were not read: %+v", cfg)
	}

	cfg, err = NewConfig(prepareBigramCliContext("0"))
	if err != nil {
		t.Fatalf("Failed to create new config: %v", err)
	}
	if cfg.Cache != probability.DefaultCacheSize {
		t.Errorf("expected default cache size, got %v", cfg.Cache)
	}

	if _, err = NewConfig(prepareBigramCliContext("-3")); !errors.Is(err, probability.ErrValue) {
		t.Fatalf("expected ErrValue, got %v", err)
	}
}
