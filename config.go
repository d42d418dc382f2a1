package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	Filename      string
	Palette       Palette
	Color         Level
	HistoryLimit  int
	Confirmations bool
	LogFile       string
}

func defaultConfig() *Config {
	return &Config{
		Filename:      ExportFilename,
		Palette:       lightPalette,
		Color:         1,
		Confirmations: true,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	file, err := os.Open(filepath.Join(homeDir, ".ghgraphrc"))
	if err != nil {
		return config
	}
	defer file.Close()

	config.parse(file, homeDir)
	return config
}

// parse reads key=value lines. Blank lines, comments, unknown keys and
// unparseable values are skipped.
func (c *Config) parse(r io.Reader, homeDir string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			c.SaveDirectory = expandPath(value, homeDir)
		case "filename":
			if value != "" && !strings.ContainsRune(value, os.PathSeparator) {
				if !strings.HasSuffix(strings.ToLower(value), ".png") {
					value += ".png"
				}
				c.Filename = value
			}
		case "theme":
			if p, ok := paletteByName(value); ok {
				c.Palette = p
			}
		case "color", "colour":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 && n < NumLevels {
				c.Color = Level(n)
			}
		case "history_limit", "historylimit":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				c.HistoryLimit = n
			}
		case "confirmations", "confirm":
			c.Confirmations = strings.ToLower(value) == "true"
		case "log_file", "logfile":
			c.LogFile = expandPath(value, homeDir)
		}
	}
}

func expandPath(value, homeDir string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
