package utils

import (
	"fmt"
	"reflect"

	"github.com/Fantom-foundation/Tally/logger"
	"github.com/urfave/cli/v2"
)

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) (*Config, map[string]bool, error) {
	cfg := &Config{}
	if ctx.App != nil {
		cfg.AppName = ctx.App.HelpName
	}
	if ctx.Command != nil {
		cfg.CommandName = ctx.Command.Name
	}

	// string of this map has to exactly match the name of the field in Config struct
	cfgFlags := map[string]interface{}{
		"Bigram":     BigramFlag,
		"Bins":       BinsFlag,
		"Cache":      CacheFlag,
		"Estimator":  EstimatorFlag,
		"Gamma":      GammaFlag,
		"LogLevel":   logger.LogLevelFlag,
		"Lowercase":  LowercaseFlag,
		"NumSamples": NumSamplesFlag,
		"Output":     OutputFlag,
		"RandomSeed": RandomSeedFlag,
		"Suffix":     SuffixFlag,
		"Top":        TopFlag,
	}

	cfgValue := reflect.ValueOf(cfg).Elem()

	specifiedFlags := make(map[string]bool)

	for cfgName, flag := range cfgFlags {
		value, isSpecified, flagName := getFlagValue(ctx, flag)
		if isSpecified {
			specifiedFlags[flagName] = true
		}

		field := cfgValue.FieldByName(cfgName)
		if !field.IsValid() {
			return nil, nil, fmt.Errorf("field %s is not valid", flagName)
		}
		if !field.CanSet() {
			return nil, nil, fmt.Errorf("field %s cannot be set", flagName)
		}

		field.Set(reflect.ValueOf(value))
	}

	return cfg, specifiedFlags, nil
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) (interface{}, bool, string) {
	var cmdFlags []cli.Flag
	if ctx.Command != nil {
		cmdFlags = ctx.Command.Flags
	}
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name), true, f.Name
			}

		case cli.Int64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int64(f.Name), true, f.Name
			}

		case cli.Float64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64(f.Name), true, f.Name
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name), true, f.Name
			}

		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name), true, f.Name
			}

		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name), true, f.Name
			}
		}
	}

	// If flag not found, return the default value of the flag and false
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value, false, f.Name
	case cli.Int64Flag:
		return f.Value, false, f.Name
	case cli.Float64Flag:
		return f.Value, false, f.Name
	case cli.StringFlag:
		return f.Value, false, f.Name
	case cli.PathFlag:
		return f.Value, false, f.Name
	case cli.BoolFlag:
		return f.Value, false, f.Name
	}
	return nil, false, ""
}
