package tally

import (
	"context"
	"io"
	"os"

	"github.com/Fantom-foundation/Tally/logger"
	"github.com/Fantom-foundation/Tally/probability"
	"github.com/Fantom-foundation/Tally/utils"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// StationaryCommand data structure for the stationary app.
var StationaryCommand = cli.Command{
	Action:    stationaryAction,
	Name:      "stationary",
	Usage:     "computes the long-run distribution of the symbol transitions in text files",
	ArgsUsage: "<file|directory>...",
	Flags: []cli.Flag{
		&utils.TopFlag,
		&utils.LowercaseFlag,
		&utils.SuffixFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The stationary command requires at least one argument:
<file|directory>...

Consecutive symbols of a file are counted as transitions of a Markov chain.
The stationary distribution of the chain is tabulated; symbols without a
successor continue with any symbol.`,
}

// stationaryAction implements the stationary command.
func stationaryAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Stationary")

	files, err := inputFiles(ctx, cfg)
	if err != nil {
		return err
	}
	cfd, err := countTransitions(ctx.Context, files, cfg.Lowercase, log)
	if err != nil {
		return err
	}

	log.Infof("Compute stationary distribution of %v states", len(cfd.Conditions()))
	d, err := probability.NewStationaryProbDist(cfd)
	if err != nil {
		return err
	}
	return reportStationary(os.Stdout, d, cfg.Top)
}

// countTransitions counts the pairs of consecutive symbols within each file.
func countTransitions(ctx context.Context, files []string, fold bool, log logger.Logger) (*probability.ConditionalFreqDist[string, string], error) {
	cfd := probability.NewConditionalFreqDist[string, string]()
	var prev string
	err := forEachSymbol(ctx, files, fold, log, func(symbol string, first bool) {
		if !first {
			cfd.Add(prev, symbol)
		}
		prev = symbol
	})
	if err != nil {
		return nil, err
	}
	return cfd, nil
}

// reportStationary sends the stationary distribution to the output writer.
func reportStationary(w io.Writer, d probability.ProbDist[string], top int) error {
	bold := color.New(color.Bold).SprintfFunc()
	output(w, "States:\t\t%s\n", bold("%d", len(d.Samples())))
	output(w, "Entropy:\t%s bits\n", bold("%.4f", probability.Entropy(d)))
	return probability.TabulateProbDist(w, d, top)
}
