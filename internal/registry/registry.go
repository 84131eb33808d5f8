// Package registry holds the run-time table of registered puzzles.
// Day files register themselves from init, the same way database/sql
// drivers do; the generated manifest in years/ pulls every day package
// into the binary and lets Verify catch a day that was discovered on
// disk but never registered.
package registry

import (
	"fmt"
	"sort"

	"github.com/vancomm/advent/internal/puzzle"
)

// ID identifies one puzzle by date.
type ID struct {
	Year, Day int
}

func (id ID) String() string {
	return fmt.Sprintf("%04d-12-%02d", id.Year, id.Day)
}

var puzzles = make(map[ID]puzzle.Runner)

// Register adds a runner to the table. It panics on a duplicate
// (year, day) because that is always a programming error in a day
// file, caught the first time the binary starts.
func Register(r puzzle.Runner) {
	id := ID{Year: r.Year(), Day: r.Day()}
	if _, dup := puzzles[id]; dup {
		panic(fmt.Sprintf("registry: duplicate puzzle %s", id))
	}
	puzzles[id] = r
}

// All returns every registered runner sorted by (year, day).
func All() []puzzle.Runner {
	out := make([]puzzle.Runner, 0, len(puzzles))
	for _, r := range puzzles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year() != out[j].Year() {
			return out[i].Year() < out[j].Year()
		}
		return out[i].Day() < out[j].Day()
	})
	return out
}

// Lookup finds the runner for one date.
func Lookup(year, day int) (puzzle.Runner, error) {
	r, ok := puzzles[ID{Year: year, Day: day}]
	if !ok {
		return nil, fmt.Errorf("puzzle %s is not registered", ID{Year: year, Day: day})
	}
	return r, nil
}

// Years returns the registered years in ascending order.
func Years() []int {
	seen := make(map[int]struct{})
	var out []int
	for id := range puzzles {
		if _, ok := seen[id.Year]; !ok {
			seen[id.Year] = struct{}{}
			out = append(out, id.Year)
		}
	}
	sort.Ints(out)
	return out
}

// LatestYear returns the greatest registered year.
func LatestYear() (int, error) {
	years := Years()
	if len(years) == 0 {
		return 0, fmt.Errorf("no puzzles registered")
	}
	return years[len(years)-1], nil
}

// LatestDay returns the greatest registered day of a year.
func LatestDay(year int) (int, error) {
	day := 0
	for id := range puzzles {
		if id.Year == year && id.Day > day {
			day = id.Day
		}
	}
	if day == 0 {
		return 0, fmt.Errorf("no puzzles registered for year %d", year)
	}
	return day, nil
}

// Days returns the registered days of a year in ascending order.
func Days(year int) []int {
	var out []int
	for id := range puzzles {
		if id.Year == year {
			out = append(out, id.Day)
		}
	}
	sort.Ints(out)
	return out
}

// Verify checks that every manifest entry has a registered runner.
// A mismatch means a day file exists on disk but its init never ran,
// which is the run-time analog of the old build-abort.
func Verify(manifest []ID) error {
	for _, id := range manifest {
		if _, ok := puzzles[id]; !ok {
			return fmt.Errorf("puzzle %s is in the manifest but never registered", id)
		}
	}
	return nil
}
