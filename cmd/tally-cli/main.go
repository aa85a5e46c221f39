package main

import (
	"fmt"
	"os"

	"github.com/Fantom-foundation/Tally/cmd/tally-cli/tally"
	"github.com/urfave/cli/v2"
)

// initTallyApp initializes a tally-cli app. This function is
// called by the main function and unit tests.
func initTallyApp() *cli.App {
	return &cli.App{
		Name:      "Tally Frequency and Probability Distributions",
		HelpName:  "tally",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags:     []cli.Flag{},
		Commands: []*cli.Command{
			&tally.CountCommand,
			&tally.GenerateCommand,
			&tally.StationaryCommand,
		},
	}
}

// main implements "tally" cli application.
func main() {
	app := initTallyApp()
	if err := app.Run(os.Args); err != nil {
		code := 1
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}
