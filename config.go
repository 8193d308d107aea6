package main

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"figedit/internal/editor"
)

type Config struct {
	SaveDirectory string
	Confirmations bool
	Color         color.RGBA
	Shape         editor.Kind
	ExportWidth   int
	ExportHeight  int
	ExportScale   float64
	Caption       string
	SnapDistance  float64
}

func defaultConfig() *Config {
	return &Config{
		Confirmations: true,
		Color:         editor.DefaultColor,
		Shape:         editor.KindCircle,
		ExportScale:   1,
		SnapDistance:  editor.SnapDistance,
	}
}

// loadConfig reads path, or ~/.figeditrc when path is empty. A missing file
// yields the defaults.
func loadConfig(path string) (*Config, error) {
	homeDir, _ := os.UserHomeDir()
	if path == "" {
		if homeDir == "" {
			return defaultConfig(), nil
		}
		path = filepath.Join(homeDir, ".figeditrc")
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config, err := parseConfig(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	config.SaveDirectory = expandDir(config.SaveDirectory, homeDir)
	return config, nil
}

func parseConfig(r io.Reader) (*Config, error) {
	config := defaultConfig()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), "\"")
		if err := config.set(strings.ToLower(key), value); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return config, scanner.Err()
}

func (c *Config) set(key, value string) error {
	var err error
	switch key {
	case "savedirectory", "save_directory", "savedir", "save_dir":
		c.SaveDirectory = value
	case "confirmations", "confirm":
		c.Confirmations = strings.ToLower(value) == "true"
	case "color", "colour":
		c.Color, err = parseHexColor(value)
	case "shape":
		switch strings.ToLower(value) {
		case "circle":
			c.Shape = editor.KindCircle
		case "rectangle", "rect":
			c.Shape = editor.KindRectangle
		default:
			err = fmt.Errorf("unknown shape %q", value)
		}
	case "export_width":
		c.ExportWidth, err = strconv.Atoi(value)
	case "export_height":
		c.ExportHeight, err = strconv.Atoi(value)
	case "export_scale":
		c.ExportScale, err = strconv.ParseFloat(value, 64)
		if err == nil && c.ExportScale <= 0 {
			err = fmt.Errorf("export_scale must be positive")
		}
	case "caption":
		c.Caption = value
	case "snap_distance", "snap":
		c.SnapDistance, err = strconv.ParseFloat(value, 64)
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}

func expandDir(dir, homeDir string) string {
	if dir == "" {
		return ""
	}
	if strings.HasPrefix(dir, "~") && homeDir != "" {
		dir = filepath.Join(homeDir, strings.TrimPrefix(dir, "~"))
	}
	if !filepath.IsAbs(dir) {
		if absPath, err := filepath.Abs(dir); err == nil {
			dir = absPath
		}
	}
	return dir
}

func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", err
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
