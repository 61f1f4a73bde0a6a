// Package config provides the configuration loader for strata.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load walks up from cwd until it finds a strata.yaml, parses it and returns
// the resolved build configuration. Relative paths in the file are resolved
// against the directory containing it.
func (l *Loader) Load(cwd string) (*domain.BuildConfig, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // Path is discovered by walking up from the working directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file Stratafile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	baseDir := filepath.Dir(configPath)

	cacheRoot := file.CacheRoot
	if cacheRoot == "" {
		cacheRoot = baseDir
	} else if !filepath.IsAbs(cacheRoot) {
		cacheRoot = filepath.Join(baseDir, cacheRoot)
	}

	strictness := domain.Strictness(file.Strictness)
	switch strictness {
	case "":
		strictness = domain.StrictnessError
	case domain.StrictnessError, domain.StrictnessWarn:
	default:
		return nil, zerr.With(domain.ErrInvalidStrictness, "strictness", file.Strictness)
	}

	files := make([]string, 0, len(file.Files))
	for _, f := range file.Files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(baseDir, f)
		}
		files = append(files, domain.NormalizePath(f))
	}

	options := domain.CompilerOptions(file.Options)
	if options == nil {
		options = domain.CompilerOptions{}
	}

	return &domain.BuildConfig{
		CacheRoot:  cacheRoot,
		Options:    options,
		Files:      files,
		Strictness: strictness,
	}, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigNotFound.Error())
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}
