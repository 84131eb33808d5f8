package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/spf13/cobra"
)

var (
	newYear int
	newDay  int
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a stub day file",
	Long: `Write a skeleton solution file under years/. Follow up with
'advent gen' so the manifest picks it up.`,
	RunE: runNew,
}

func init() {
	now := time.Now()
	newCmd.Flags().IntVarP(&newYear, "year", "y", now.Year(), "puzzle year")
	newCmd.Flags().IntVarP(&newDay, "day", "d", now.Day(), "puzzle day")
}

var stubTemplate = template.Must(template.New("day").Parse(
	`package year{{.Year}}

import (
	"fmt"

	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
)

func init() {
	registry.Register(puzzle.New(puzzle.Solution[[]string]{
		Year:  {{.Year}},
		Day:   {{.Day}},
		Parse: day{{printf "%02d" .Day}}Parse,
		Part1: day{{printf "%02d" .Day}}Part1,
		Part2: day{{printf "%02d" .Day}}Part2,
	}))
}

func day{{printf "%02d" .Day}}Parse(lines []string) ([]string, error) {
	return lines, nil
}

func day{{printf "%02d" .Day}}Part1(input []string) (any, error) {
	return nil, fmt.Errorf("not solved yet")
}

func day{{printf "%02d" .Day}}Part2(input []string) (any, error) {
	return nil, fmt.Errorf("not solved yet")
}
`))

func runNew(cmd *cobra.Command, args []string) error {
	if newDay < 1 || newDay > 25 {
		return fmt.Errorf("day %d is out of range", newDay)
	}

	dir := fmt.Sprintf("years/year%04d", newYear)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("day%02d.go", newDay))
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data := struct{ Year, Day int }{newYear, newDay}
	if err := stubTemplate.Execute(f, data); err != nil {
		os.Remove(path)
		return err
	}

	log.Infof("wrote %s, run 'advent gen' to update the manifest", path)
	return nil
}
