package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vancomm/advent/internal/registry"
)

const modulePath = "github.com/vancomm/advent"

var genRoot string

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Regenerate the solution manifest",
	Long: `Scan the years/ tree for day files and rewrite years/manifest_gen.go.
Run this after adding or removing a day file.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVar(&genRoot, "root", "years", "solution tree to scan")
}

func runGen(cmd *cobra.Command, args []string) error {
	ids, err := registry.Discover(genRoot)
	if err != nil {
		return err
	}
	dst := filepath.Join(genRoot, "manifest_gen.go")
	if err := registry.WriteManifest(dst, modulePath, ids); err != nil {
		return err
	}
	log.Infof("wrote %s with %d puzzles", dst, len(ids))
	return nil
}
