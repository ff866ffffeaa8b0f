package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutOverlay(t *testing.T) {
	base := t.TempDir()

	cfg, err := Load(base)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, filepath.Join(base, "docs"), cfg.DocsDir)
	assert.Equal(t, filepath.Join(base, "llms-full.txt"), cfg.OutputFile)
	assert.Equal(t, []string{".git", "node_modules", "__pycache__"}, cfg.ExcludeDirs)
	assert.NotEmpty(t, cfg.Title)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestLoad_Overlay(t *testing.T) {
	base := t.TempDir()
	abs := filepath.Join(t.TempDir(), "out", "context.txt")
	overlay := "docs_dir: documentation\n" +
		"output_file: " + abs + "\n" +
		"title: My Project\n" +
		"exclude_dirs: [drafts]\n" +
		"log_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(base, FileName), []byte(overlay), 0o644))

	cfg, err := Load(base)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, filepath.Join(base, "documentation"), cfg.DocsDir)
	assert.Equal(t, abs, cfg.OutputFile)
	assert.Equal(t, "My Project", cfg.Title)
	assert.Equal(t, []string{"drafts"}, cfg.ExcludeDirs)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialOverlayKeepsDefaults(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, FileName), []byte("title: Only Title\n"), 0o644))

	cfg, err := Load(base)
	require.NoError(t, err)

	def := Defaults(base)
	assert.Equal(t, "Only Title", cfg.Title)
	assert.Equal(t, def.DocsDir, cfg.DocsDir)
	assert.Equal(t, def.OutputFile, cfg.OutputFile)
	assert.Equal(t, def.ExcludeDirs, cfg.ExcludeDirs)
}

func TestLoad_MalformedOverlay(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, FileName), []byte("exclude_dirs: [unterminated\n"), 0o644))

	_, err := Load(base)
	require.Error(t, err)
	assert.Contains(t, err.Error(), FileName)
}

func TestValidate(t *testing.T) {
	base := t.TempDir()

	cfg := Defaults(base)
	cfg.DocsDir = " "
	assert.Error(t, cfg.Validate())

	cfg = Defaults(base)
	cfg.OutputFile = ""
	assert.Error(t, cfg.Validate())

	cfg = Defaults(base)
	cfg.LogLevel = "chatty"
	assert.Error(t, cfg.Validate())

	cfg = Defaults(base)
	cfg.LogLevel = "INFO"
	assert.NoError(t, cfg.Validate())
}

func TestBaseDir(t *testing.T) {
	dir, err := BaseDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
}
