package configutil

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// readInto unmarshals one json5 file into dst and reports whether the
// file existed at all.
func readInto[T any](path string, dst *T) (bool, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(raw) == 0 {
		return true, nil
	}
	return true, json5.Unmarshal(raw, dst)
}

// localVariant derives the override path for a config file, e.g.
// "telemetry.json5" becomes "telemetry.local.json5". local files hold
// per-machine values and stay out of version control.
func localVariant(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".local" + ext
}

// ReadConfig reads a json5 configuration file and merges its ".local"
// override variant on top, field by field. os.ErrNotExist is returned
// when neither file exists.
func ReadConfig[T any](path string) (T, error) {
	var config T

	found, err := readInto(path, &config)
	if err != nil {
		return config, err
	}

	localPath := localVariant(path)
	var override T
	foundLocal, err := readInto(localPath, &override)
	if err != nil {
		return config, err
	}
	if foundLocal {
		if err := mergo.Merge(&config, override, mergo.WithOverride); err != nil {
			return config, err
		}
		slog.Info("applied local config overrides", "path", localPath)
	}

	if !found && !foundLocal {
		return config, os.ErrNotExist
	}
	return config, nil
}

// ReadRecursively looks for the named configuration file in the
// working directory and every ancestor up to the filesystem root,
// reading the first match with ReadConfig. this lets tests and
// executables run from nested directories of a checkout while sharing
// one config at its top.
func ReadRecursively[T any](name string) (T, error) {
	var zero T

	dir, err := os.Getwd()
	if err != nil {
		return zero, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(dir, name))
		if !os.IsNotExist(err) {
			return config, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return zero, os.ErrNotExist
		}
		dir = parent
	}
}
