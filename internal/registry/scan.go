package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

var (
	yearDirPattern = regexp.MustCompile(`^year(\d{4})$`)
	dayFilePattern = regexp.MustCompile(`^day(\d{2})\.go$`)
)

// Discover walks a years/ directory and returns the puzzle IDs implied
// by its layout, sorted by (year, day). Every subdirectory must be
// named yearNNNN and every non-test .go file inside one must be named
// dayNN.go; anything else is an error so a misnamed file cannot
// silently fall out of the manifest.
func Discover(root string) ([]ID, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	var ids []ID
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		m := yearDirPattern.FindStringSubmatch(e.Name())
		if m == nil {
			return nil, fmt.Errorf("%s: directory name does not match yearNNNN", filepath.Join(root, e.Name()))
		}
		year, _ := strconv.Atoi(m[1])

		yearDir := filepath.Join(root, e.Name())
		files, err := os.ReadDir(yearDir)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", yearDir, err)
		}
		for _, f := range files {
			name := f.Name()
			if f.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
				continue
			}
			dm := dayFilePattern.FindStringSubmatch(name)
			if dm == nil {
				return nil, fmt.Errorf("%s: file name does not match dayNN.go", filepath.Join(yearDir, name))
			}
			day, _ := strconv.Atoi(dm[1])
			ids = append(ids, ID{Year: year, Day: day})
		}
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("no puzzles found under %s", root)
	}

	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Year != ids[j].Year {
			return ids[i].Year < ids[j].Year
		}
		return ids[i].Day < ids[j].Day
	})
	return ids, nil
}

var manifestTemplate = template.Must(template.New("manifest").Parse(
	`// Code generated by advent gen; DO NOT EDIT.

package years

import (
	"github.com/vancomm/advent/internal/registry"
{{range .Years}}
	_ "{{$.Module}}/years/year{{.}}"{{end}}
)

// Manifest lists every puzzle found on disk at generation time.
var Manifest = []registry.ID{
{{- range .IDs}}
	{Year: {{.Year}}, Day: {{.Day}}},
{{- end}}
}
`))

// WriteManifest renders the manifest source for a set of discovered
// puzzles into dst (conventionally years/manifest_gen.go).
func WriteManifest(dst, modulePath string, ids []ID) error {
	var years []int
	seen := make(map[int]bool)
	for _, id := range ids {
		if !seen[id.Year] {
			seen[id.Year] = true
			years = append(years, id.Year)
		}
	}
	sort.Ints(years)

	var buf strings.Builder
	err := manifestTemplate.Execute(&buf, struct {
		Module string
		Years  []int
		IDs    []ID
	}{modulePath, years, ids})
	if err != nil {
		return fmt.Errorf("rendering manifest: %w", err)
	}
	if err := os.WriteFile(dst, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
