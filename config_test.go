package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	c := defaultConfig()
	assert.Equal(t, ExportFilename, c.Filename)
	assert.Equal(t, "light", c.Palette.Name)
	assert.Equal(t, Level(1), c.Color)
	assert.Zero(t, c.HistoryLimit)
	assert.True(t, c.Confirmations)
}

func TestConfigParse(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	rc := strings.Join([]string{
		"# comment",
		"",
		"save_directory = ~/graphs",
		"filename = my-graph",
		"theme = Dark",
		"color = 4",
		"history_limit = 50",
		"confirmations = false",
		"log_file = ~/ghgraph.log",
		"unknown = value",
		"not a pair",
	}, "\n")

	c := defaultConfig()
	c.parse(strings.NewReader(rc), home)

	assert.Equal(t, filepath.Join(home, "graphs"), c.SaveDirectory)
	assert.Equal(t, "my-graph.png", c.Filename)
	assert.Equal(t, "dark", c.Palette.Name)
	assert.Equal(t, Level(4), c.Color)
	assert.Equal(t, 50, c.HistoryLimit)
	assert.False(t, c.Confirmations)
	assert.Equal(t, filepath.Join(home, "ghgraph.log"), c.LogFile)
}

func TestConfigParseRejectsBadValues(t *testing.T) {
	t.Parallel()

	rc := strings.Join([]string{
		"theme = sepia",
		"color = 9",
		"history_limit = -3",
		"filename = " + filepath.Join("a", "b.png"),
	}, "\n")

	c := defaultConfig()
	c.parse(strings.NewReader(rc), t.TempDir())

	assert.Equal(t, "light", c.Palette.Name)
	assert.Equal(t, Level(1), c.Color)
	assert.Zero(t, c.HistoryLimit)
	assert.Equal(t, ExportFilename, c.Filename)
}

func TestGetSavePath(t *testing.T) {
	t.Parallel()

	c := defaultConfig()
	assert.Equal(t, "out.png", c.GetSavePath("out.png"))

	c.SaveDirectory = filepath.Join(t.TempDir(), "nested")
	path := c.GetSavePath("out.png")
	assert.Equal(t, filepath.Join(c.SaveDirectory, "out.png"), path)
	info, err := os.Stat(c.SaveDirectory)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
