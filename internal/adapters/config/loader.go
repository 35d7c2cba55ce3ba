// Package config provides the configuration loader for panid.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.panid.dev/panid/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "PANID_CONFIG"

// EnvCacheDir overrides the cache directory, taking precedence over the
// configuration file.
const EnvCacheDir = "PANID_CACHE_DIR"

// File represents the structure of the panid.yaml configuration file.
// Every field is optional; zero values fall back to defaults.
type File struct {
	CacheDir      string     `yaml:"cache_dir"`
	Retention     string     `yaml:"retention"`
	StaleFallback *bool      `yaml:"stale_fallback"`
	BioMart       BioMartDTO `yaml:"biomart"`
}

// BioMartDTO configures the remote annotation source.
type BioMartDTO struct {
	URL     string `yaml:"url"`
	Dataset string `yaml:"dataset"`
	Timeout string `yaml:"timeout"`
}

// Load resolves the runtime settings: defaults, overlaid by panid.yaml
// when present, overlaid by environment overrides. A missing file is not
// an error; an unreadable or invalid one is.
func Load() (*domain.Settings, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = domain.ConfigFileName
	}
	return LoadPath(path)
}

// LoadPath is Load with an explicit file path.
func LoadPath(path string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return nil, zerr.Wrap(err, domain.ErrConfigParse.Error())
	default:
		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			parseErr := zerr.Wrap(err, domain.ErrConfigParse.Error())
			return nil, zerr.With(parseErr, "path", path)
		}
		if err := apply(&settings, &f); err != nil {
			return nil, zerr.With(err, "path", path)
		}
	}

	if dir := os.Getenv(EnvCacheDir); dir != "" {
		settings.CacheDir = dir
	}

	return &settings, nil
}

func apply(settings *domain.Settings, f *File) error {
	if f.CacheDir != "" {
		settings.CacheDir = f.CacheDir
	}
	if f.Retention != "" {
		d, err := time.ParseDuration(f.Retention)
		if err != nil {
			return zerr.Wrap(err, domain.ErrConfigParse.Error())
		}
		settings.Retention = d
	}
	if f.StaleFallback != nil {
		settings.StaleFallback = *f.StaleFallback
	}
	if f.BioMart.URL != "" {
		settings.BioMartURL = f.BioMart.URL
	}
	if f.BioMart.Dataset != "" {
		settings.BioMartDataset = f.BioMart.Dataset
	}
	if f.BioMart.Timeout != "" {
		d, err := time.ParseDuration(f.BioMart.Timeout)
		if err != nil {
			return zerr.Wrap(err, domain.ErrConfigParse.Error())
		}
		settings.FetchTimeout = d
	}
	return nil
}
