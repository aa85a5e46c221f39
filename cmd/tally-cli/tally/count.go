package tally

import (
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

// CountCommand data structure for the count app.
var CountCommand = cli.Command{
	Action:    countAction,
	Name:      "count",
	Usage:     "counts the symbols of text files and prints their frequency distribution",
	ArgsUsage: "<file|directory>...",
	Flags: []cli.Flag{
		&utils.TopFlag,
		&utils.LowercaseFlag,
		&utils.OutputFlag,
		&utils.SuffixFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The count command requires at least one argument:
<file|directory>...

Symbols are separated by whitespace. Files ending in .gz are decompressed,
directories are searched for files and "-" reads stdin. The ECDF of the
ranked symbols is written in JSON format if an output file is given.`,
}

// countAction implements the count command.
func countAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Count")

	files, err := inputFiles(ctx, cfg)
	if err != nil {
		return err
	}
	fd, err := countSymbols(ctx.Context, files, cfg.Lowercase, log)
	if err != nil {
		return err
	}

	if err := reportCounts(os.Stdout, fd, cfg.Top); err != nil {
		return err
	}

	if cfg.Output != "" {
		log.Noticef("Write ECDF file %v", cfg.Output)
		ecdf := fd.NewFreqDistJSON()
		if err := ecdf.WriteJSON(cfg.Output); err != nil {
			return err
		}
	}
	return nil
}

// reportCounts sends a summary and a table of the most common symbols to the output writer.
func reportCounts(w io.Writer, fd *probability.FreqDist[string], top int) error {
	bold := color.New(color.Bold).SprintfFunc()
	colored := color.New(color.FgBlue, color.Bold).SprintfFunc()
	m := message.NewPrinter(language.English)

	output(w, "Symbols:\t%s\n", bold(m.Sprintf("%d", fd.N())))
	output(w, "Distinct:\t%s\n", bold(m.Sprintf("%d", fd.B())))
	output(w, "Hapaxes:\t%s\n", bold(m.Sprintf("%d", len(fd.Hapaxes()))))
	if max, ok := fd.Max(); ok {
		output(w, "Most common:\t%s (%s)\n", colored(max), m.Sprintf("%d", fd.Count(max)))
	}
	return fd.Tabulate(w, top)
}
