package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/advent/internal/download"
	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

var (
	fetchYear  int
	fetchLimit int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Prefetch inputs for a year",
	Long: `Download and cache the real input of every registered day of a year,
so later runs work offline.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntVarP(&fetchYear, "year", "y", 0, "puzzle year (default: latest)")
	fetchCmd.Flags().IntVar(&fetchLimit, "parallel", 4, "max in-flight downloads")
}

func runFetch(cmd *cobra.Command, args []string) error {
	year := fetchYear
	if year == 0 {
		var err error
		if year, err = registry.LatestYear(); err != nil {
			return err
		}
	}
	days := registry.Days(year)
	if len(days) == 0 {
		return fmt.Errorf("no puzzles registered for year %d", year)
	}

	client := download.NewClient(config.Session, config.CacheDir)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(fetchLimit)
	for _, day := range days {
		g.Go(func() error {
			_, err := client.PuzzleInput(ctx, puzzle.Request{
				Year:   year,
				Day:    day,
				Source: puzzle.UserInput,
			})
			if err != nil {
				return fmt.Errorf("fetching %04d-12-%02d: %w", year, day, err)
			}
			log.Infof("input for %04d-12-%02d is cached", year, day)
			return nil
		})
	}
	return g.Wait()
}
