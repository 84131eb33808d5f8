package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Session  string `json:"session"`
	CacheDir string `json:"cache_dir"`
	LogFile  string `json:"log_file"`
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"has_session": c.Session != "",
		"cache_dir":   c.CacheDir,
		"log_file":    c.LogFile,
	}
}

// loadConfig reads the JSON config file, fills defaults, and lets
// AOC_SESSION_ID override the session credential. A missing file is
// fine unless its path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	var c Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return c, fmt.Errorf("unable to read config %s: %w", path, err)
	}

	if session := os.Getenv("AOC_SESSION_ID"); session != "" {
		c.Session = session
	}
	if c.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return c, fmt.Errorf("unable to pick a cache dir: %w", err)
		}
		c.CacheDir = filepath.Join(base, "advent")
	}
	return c, nil
}

func defaultConfigPath() string {
	if path := os.Getenv("ADVENT_CONFIG"); path != "" {
		return path
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "advent.json"
	}
	return filepath.Join(base, "advent", "config.json")
}
