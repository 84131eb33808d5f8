package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vancomm/advent/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered solutions",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range registry.All() {
			fmt.Printf("%04d-12-%02d\n", r.Year(), r.Day())
		}
		return nil
	},
}
