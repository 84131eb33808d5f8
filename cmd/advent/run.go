package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vancomm/advent/internal/download"
	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

var (
	runYear      int
	runDays      []int
	runExample   bool
	runBenchmark int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one or more solutions",
	Long: `Run the selected solutions against the real input, or against the
puzzle's example input with --example. The year defaults to the latest
year with a registered solution and the day to the latest day of that
year.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVarP(&runYear, "year", "y", 0, "puzzle year (default: latest)")
	runCmd.Flags().IntSliceVarP(&runDays, "day", "d", nil, "puzzle day, repeatable (default: latest of the year)")
	runCmd.Flags().BoolVarP(&runExample, "example", "e", false, "use the example input")
	runCmd.Flags().IntVarP(&runBenchmark, "benchmark", "b", 0, "average each part over N runs")
}

func runRun(cmd *cobra.Command, args []string) error {
	year := runYear
	if year == 0 {
		var err error
		if year, err = registry.LatestYear(); err != nil {
			return err
		}
	}

	days := runDays
	if len(days) == 0 {
		day, err := registry.LatestDay(year)
		if err != nil {
			return err
		}
		days = []int{day}
	}

	source := puzzle.UserInput
	if runExample {
		source = puzzle.ExampleInput
	}

	client := download.NewClient(config.Session, config.CacheDir)
	runBatch(cmd.Context(), os.Stdout, client, year, days, source)
	return nil
}

// runBatch runs every selected day. A failure in one day, or one part
// of a day, is printed and the batch moves on.
func runBatch(ctx context.Context, out io.Writer, fetcher puzzle.Fetcher, year int, days []int, source puzzle.InputSource) {
	for _, day := range days {
		runner, err := registry.Lookup(year, day)
		if err != nil {
			fmt.Fprintf(out, "%04d-12-%02d\n  error: %s\n", year, day, err)
			continue
		}
		if err := runner.ParseInputs(ctx, fetcher, source, verbose); err != nil {
			fmt.Fprintf(out, "%04d-12-%02d\n  error: parsing %s input: %s\n", year, day, source, err)
			continue
		}
		for _, part := range puzzle.Parts() {
			fmt.Fprintf(out, "%04d-12-%02d, %s\n", year, day, part)
			runOnePart(out, runner, part, source)
		}
	}
}

func runOnePart(out io.Writer, runner puzzle.Runner, part puzzle.Part, source puzzle.InputSource) {
	iterations := 1
	if runBenchmark > 0 {
		iterations = runBenchmark
	}

	var (
		result  string
		err     error
		started = time.Now()
	)
	for i := 0; i < iterations; i++ {
		result, err = runner.RunPart(part, source)
		if err != nil {
			fmt.Fprintf(out, "  error: %s\n", err)
			return
		}
	}
	elapsed := time.Since(started) / time.Duration(iterations)

	fmt.Fprintf(out, "  %s\n", result)
	if runBenchmark > 0 {
		fmt.Fprintf(out, "  avg %s over %d runs\n", elapsed, iterations)
	}
}
