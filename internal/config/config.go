package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/llmsfull/internal/aggregate"
	"gopkg.in/yaml.v3"
)

// FileName is the optional overlay looked up in the base directory.
const FileName = "llmsfull.yaml"

type Config struct {
	// BaseDir anchors every relative path; normally the executable's directory.
	BaseDir string

	// Input
	DocsDir     string
	ExcludeDirs []string

	// Output
	OutputFile string
	Title      string

	LogLevel string
}

// fileConfig mirrors the keys accepted in llmsfull.yaml.
type fileConfig struct {
	DocsDir     string   `yaml:"docs_dir,omitempty"`
	OutputFile  string   `yaml:"output_file,omitempty"`
	Title       string   `yaml:"title,omitempty"`
	ExcludeDirs []string `yaml:"exclude_dirs,omitempty"`
	LogLevel    string   `yaml:"log_level,omitempty"`
}

// Defaults returns the configuration used when no overlay file exists.
func Defaults(baseDir string) Config {
	return Config{
		BaseDir:     baseDir,
		DocsDir:     filepath.Join(baseDir, "docs"),
		ExcludeDirs: append([]string(nil), aggregate.DefaultExcludeDirs...),
		OutputFile:  filepath.Join(baseDir, "llms-full.txt"),
		Title:       aggregate.DefaultTitle,
		LogLevel:    "warn",
	}
}

// Load builds the config for baseDir, applying llmsfull.yaml if present.
// A missing overlay is not an error.
func Load(baseDir string) (Config, error) {
	cfg := Defaults(baseDir)

	path := filepath.Join(baseDir, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if fc.DocsDir != "" {
		cfg.DocsDir = resolve(baseDir, fc.DocsDir)
	}
	if fc.OutputFile != "" {
		cfg.OutputFile = resolve(baseDir, fc.OutputFile)
	}
	if fc.Title != "" {
		cfg.Title = fc.Title
	}
	if fc.ExcludeDirs != nil {
		cfg.ExcludeDirs = fc.ExcludeDirs
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}

	return cfg, nil
}

// BaseDir returns the directory holding the running executable.
func BaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("config: locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DocsDir) == "" {
		return fmt.Errorf("docs_dir is required")
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return fmt.Errorf("output_file is required")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return lvl, nil
}

func resolve(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}
