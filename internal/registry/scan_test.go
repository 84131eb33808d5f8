package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("package x\n"), 0o644))
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"year2021/day01.go",
		"year2021/day05.go",
		"year2021/day01_test.go",
		"year2015/day02.go",
		"year2015/day01.go",
	)

	ids, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []ID{
		{Year: 2015, Day: 1},
		{Year: 2015, Day: 2},
		{Year: 2021, Day: 1},
		{Year: 2021, Day: 5},
	}, ids)
}

func TestDiscoverRejectsBadYearDir(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "2021/day01.go")

	_, err := Discover(root)
	assert.ErrorContains(t, err, "does not match yearNNNN")
}

func TestDiscoverRejectsBadDayFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "year2021/puzzle1.go")

	_, err := Discover(root)
	assert.ErrorContains(t, err, "does not match dayNN.go")
}

func TestDiscoverIgnoresLooseFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"manifest_gen.go",
		"year2021/day01.go",
		"year2021/helpers_test.go",
	)

	ids, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []ID{{Year: 2021, Day: 1}}, ids)
}

func TestDiscoverEmptyTree(t *testing.T) {
	_, err := Discover(t.TempDir())
	assert.ErrorContains(t, err, "no puzzles found")
}

func TestWriteManifest(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "manifest_gen.go")
	ids := []ID{
		{Year: 2015, Day: 1},
		{Year: 2021, Day: 15},
	}

	require.NoError(t, WriteManifest(dst, "github.com/vancomm/advent", ids))

	src, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(src), "Code generated by advent gen; DO NOT EDIT.")
	assert.Contains(t, string(src), `_ "github.com/vancomm/advent/years/year2015"`)
	assert.Contains(t, string(src), `_ "github.com/vancomm/advent/years/year2021"`)
	assert.Contains(t, string(src), "{Year: 2015, Day: 1},")
	assert.Contains(t, string(src), "{Year: 2021, Day: 15},")
}
