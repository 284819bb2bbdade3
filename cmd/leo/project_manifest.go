package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const noLeoTomlMessage = "no leo.toml found\nplease specify the directory explicitly, e.g.:\n  leo check path/to/src"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Program programConfig `toml:"program"`
}

type packageConfig struct {
	Name string `toml:"name"`
	Src  string `toml:"src"`
}

type programConfig struct {
	Main string `toml:"main"`
}

// SourceDir resolves the directory holding the project's .leo files:
// [package].src when set, otherwise "src" next to the manifest, falling back
// to the manifest root itself.
func (m *projectManifest) SourceDir() string {
	if src := strings.TrimSpace(m.Config.Package.Src); src != "" {
		return filepath.Join(m.Root, filepath.FromSlash(src))
	}
	candidate := filepath.Join(m.Root, "src")
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return candidate
	}
	return m.Root
}

// MainFile resolves [program].main relative to the manifest root, when set.
func (m *projectManifest) MainFile() (string, bool) {
	main := strings.TrimSpace(m.Config.Program.Main)
	if main == "" {
		return "", false
	}
	return filepath.Join(m.Root, filepath.FromSlash(main)), true
}

func findLeoToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "leo.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findLeoToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return projectConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	return cfg, nil
}
