package utils

import (
	"github.com/urfave/cli/v2"
)

// Command line options shared by the tally commands.
var (
	EstimatorFlag = cli.StringFlag{
		Name:    "estimator",
		Aliases: []string{"e"},
		Usage:   "probability estimator (\"mle\", \"lidstone\", \"laplace\", \"ele\", \"witten-bell\", \"good-turing\", \"exponential\")",
		Value:   "mle",
	}
	GammaFlag = cli.Float64Flag{
		Name:  "gamma",
		Usage: "constant added to each count by the lidstone estimator",
		Value: 0.5,
	}
	BinsFlag = cli.IntFlag{
		Name:  "bins",
		Usage: "number of possible samples including unseen ones; 0 selects the estimator's default",
		Value: 0,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the random generator; a negative seed is taken from the clock",
		Value: -1,
	}
	NumSamplesFlag = cli.IntFlag{
		Name:    "samples",
		Aliases: []string{"n"},
		Usage:   "number of samples to generate",
		Value:   10,
	}
	TopFlag = cli.IntFlag{
		Name:  "top",
		Usage: "number of rows in printed tables; 0 prints all",
		Value: 20,
	}
	LowercaseFlag = cli.BoolFlag{
		Name:  "lowercase",
		Usage: "fold the case of symbols before counting",
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output path of the ECDF in JSON format",
	}
	BigramFlag = cli.BoolFlag{
		Name:  "bigram",
		Usage: "draw each symbol conditioned on its predecessor",
	}
	CacheFlag = cli.IntFlag{
		Name:  "cache",
		Usage: "number of conditional estimates kept in memory",
		Value: 1024,
	}
	SuffixFlag = cli.StringFlag{
		Name:  "suffix",
		Usage: "only read files with this suffix when a directory is given",
	}
)
