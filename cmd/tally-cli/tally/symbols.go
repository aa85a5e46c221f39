package tally

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/Fantom-foundation/Tally/corpus"
	"github.com/Fantom-foundation/Tally/logger"
	"github.com/Fantom-foundation/Tally/probability"
	"github.com/Fantom-foundation/Tally/utils"
	"github.com/urfave/cli/v2"
)

// symbolVisitor is called for every symbol read; first is set for the first symbol of a file.
type symbolVisitor func(symbol string, first bool)

// forEachSymbol reads the symbols of all files in order.
func forEachSymbol(ctx context.Context, files []string, fold bool, log logger.Logger, visit symbolVisitor) error {
	progress := utils.NewProgressTracker("symbols", utils.ProgressThreshold, log)
	for _, file := range files {
		log.Infof("Read symbols from %v", file)
		it, err := corpus.NewFileReader(ctx, file, fold)
		if err != nil {
			return err
		}
		first := true
		for it.Next() {
			visit(it.Value(), first)
			first = false
			progress.Step()
		}
		it.Close()
		if err := it.Error(); err != nil {
			return err
		}
	}
	progress.Finish()
	return nil
}

// countSymbols counts the symbols of all files.
func countSymbols(ctx context.Context, files []string, fold bool, log logger.Logger) (*probability.FreqDist[string], error) {
	fd := probability.NewFreqDist[string]()
	err := forEachSymbol(ctx, files, fold, log, func(symbol string, _ bool) {
		fd.Add(symbol)
	})
	if err != nil {
		return nil, err
	}
	return fd, nil
}

// inputFiles returns the files named by the command line arguments.
func inputFiles(ctx *cli.Context, cfg *utils.Config) ([]string, error) {
	if ctx.Args().Len() < 1 {
		return nil, fmt.Errorf("missing input file")
	}
	files, err := utils.ExpandPaths(cfg.Suffix, ctx.Args().Slice())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no input files found")
	}
	return files, nil
}

// output the given message with formatting.
func output(w io.Writer, format string, a ...any) {
	_, err := fmt.Fprintf(w, format, a...)
	if err != nil {
		log.Println("output error", err.Error())
	}
}
