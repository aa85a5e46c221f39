package tally

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Fantom-foundation/Tally/logger"
	"github.com/Fantom-foundation/Tally/probability"
	"github.com/Fantom-foundation/Tally/utils"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// GenerateCommand data structure for the generate app.
var GenerateCommand = cli.Command{
	Action:    generateAction,
	Name:      "generate",
	Usage:     "estimates a probability distribution from text files and draws samples from it",
	ArgsUsage: "<file|directory>...",
	Flags: []cli.Flag{
		&utils.EstimatorFlag,
		&utils.GammaFlag,
		&utils.BinsFlag,
		&utils.RandomSeedFlag,
		&utils.NumSamplesFlag,
		&utils.BigramFlag,
		&utils.CacheFlag,
		&utils.TopFlag,
		&utils.LowercaseFlag,
		&utils.SuffixFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The generate command requires at least one argument:
<file|directory>...

The symbols of the files are counted and the selected estimator derives a
probability distribution from the counts. The distribution is tabulated and
the requested number of samples is drawn from a seeded random generator.

With --bigram, every symbol after the first is drawn from the estimate of
the symbols that followed its predecessor. Estimates are built on demand and
at most --cache of them are kept in memory. Symbols without an estimate
continue with the distribution of all symbols.`,
}

// generateAction implements the generate command.
func generateAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Generate")

	files, err := inputFiles(ctx, cfg)
	if err != nil {
		return err
	}
	fd, cfd, err := countChain(ctx.Context, files, cfg.Lowercase, cfg.Bigram, log)
	if err != nil {
		return err
	}

	d, err := estimate(cfg, fd, log)
	if err != nil {
		return err
	}
	if err := reportProbDist(os.Stdout, d, cfg.Top); err != nil {
		return err
	}

	log.Noticef("Generate %v samples with seed %v", cfg.NumSamples, cfg.RandomSeed)
	src := probability.NewSource(cfg.RandomSeed)
	if !cfg.Bigram {
		return generateSamples(os.Stdout, d, src, cfg.NumSamples)
	}
	estimator, err := probability.NewEstimator[string](cfg.Estimator, cfg.Gamma, cfg.Bins)
	if err != nil {
		return err
	}
	cpd, err := probability.NewConditionalProbDist(cfd, estimator, cfg.Cache)
	if err != nil {
		return err
	}
	log.Infof("Draw from %v conditional estimates", len(cpd.Conditions()))
	return generateChain(os.Stdout, d, cpd, src, cfg.NumSamples)
}

// countChain counts the symbols of all files and, if bigram is set, the
// pairs of consecutive symbols within each file.
func countChain(ctx context.Context, files []string, fold, bigram bool, log logger.Logger) (*probability.FreqDist[string], *probability.ConditionalFreqDist[string, string], error) {
	fd := probability.NewFreqDist[string]()
	cfd := probability.NewConditionalFreqDist[string, string]()
	var prev string
	err := forEachSymbol(ctx, files, fold, log, func(symbol string, first bool) {
		fd.Add(symbol)
		if bigram && !first {
			cfd.Add(prev, symbol)
		}
		prev = symbol
	})
	if err != nil {
		return nil, nil, err
	}
	return fd, cfd, nil
}

// estimate derives the configured probability distribution from the counts.
func estimate(cfg *utils.Config, fd *probability.FreqDist[string], log logger.Logger) (probability.ProbDist[string], error) {
	estimator, err := probability.NewEstimator[string](cfg.Estimator, cfg.Gamma, cfg.Bins)
	if err != nil {
		return nil, err
	}
	log.Infof("Estimate %v distribution of %v symbols", cfg.Estimator, fd.N())
	d, err := estimator(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot estimate distribution; %w", err)
	}
	switch e := d.(type) {
	case *probability.SimpleGoodTuringProbDist[string]:
		if !e.ReliableFit() {
			log.Warningf("Good-Turing slope %.4f is not below -1; estimates are unreliable", e.Slope())
		}
	case *probability.ExponentialProbDist[string]:
		log.Infof("Fitted lambda %.4f", e.Lambda())
	}
	return d, nil
}

// reportProbDist sends a summary and a table of the most probable samples to the output writer.
func reportProbDist(w io.Writer, d probability.ProbDist[string], top int) error {
	bold := color.New(color.Bold).SprintfFunc()
	m := message.NewPrinter(language.English)

	output(w, "Samples:\t%s\n", bold(m.Sprintf("%d", len(d.Samples()))))
	output(w, "Entropy:\t%s bits\n", bold("%.4f", probability.Entropy(d)))
	output(w, "Discount:\t%s\n", bold("%.4f", probability.Discount(d)))
	if !probability.SumToOne(d) {
		output(w, "Unseen samples hold part of the probability mass\n")
	}
	return probability.TabulateProbDist(w, d, top)
}

// draw takes one sample of d. Exponential rank models are sampled by
// inverting their fitted CDF.
func draw(d probability.ProbDist[string], src probability.Source) (string, error) {
	if e, ok := d.(*probability.ExponentialProbDist[string]); ok {
		return e.SampleRank(src)
	}
	return probability.Generate(d, src)
}

// generateSamples writes n samples drawn from d, one per line.
func generateSamples(w io.Writer, d probability.ProbDist[string], src probability.Source, n int) error {
	for i := 0; i < n; i++ {
		s, err := draw(d, src)
		if err != nil {
			return err
		}
		output(w, "%s\n", s)
	}
	return nil
}

// generateChain writes n samples, one per line. The first sample is drawn
// from start, every further one from the estimate conditioned on its
// predecessor. Predecessors without successors or without a valid
// estimate continue with start.
func generateChain(w io.Writer, start probability.ProbDist[string], cpd *probability.ConditionalProbDist[string, string], src probability.Source, n int) error {
	var prev string
	for i := 0; i < n; i++ {
		d := start
		if i > 0 {
			next, err := cpd.Get(prev)
			switch {
			case err == nil:
				d = next
			case !errors.Is(err, probability.ErrEmptyDistribution) && !errors.Is(err, probability.ErrValue):
				return err
			}
		}
		s, err := draw(d, src)
		if err != nil {
			return err
		}
		output(w, "%s\n", s)
		prev = s
	}
	return nil
}
