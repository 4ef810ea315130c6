package cli

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/framewright/pkg/errors"
	"github.com/matzehuels/framewright/pkg/geom"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg", appName); dir != want {
		t.Errorf("configDir() = %q, want %q", dir, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	dir, err = configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}
	if !strings.HasSuffix(dir, filepath.Join(".config", appName)) {
		t.Errorf("configDir() = %q, should end with .config/%s", dir, appName)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fw.toml", `
offset = 1.5
views = ["elevation", "plan"]
template = "tpl"

[sheets]
prefix = "A"
position = [-0.5, 0.5]

[groups]
"Openings" = ["Doors", "Windows"]
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	opts := cfg.options()
	if opts.Offset == nil || *opts.Offset != 1.5 || opts.DepthOffset != nil {
		t.Errorf("offsets = %v, %v; want 1.5 and unset", opts.Offset, opts.DepthOffset)
	}
	if !slices.Equal(opts.Views, []string{"elevation", "plan"}) {
		t.Errorf("Views = %v", opts.Views)
	}
	if opts.TemplateID != "tpl" || opts.SheetPrefix != "A" {
		t.Errorf("TemplateID = %q, SheetPrefix = %q", opts.TemplateID, opts.SheetPrefix)
	}
	if opts.SheetPosition == nil || *opts.SheetPosition != geom.Vec(-0.5, 0.5, 0) {
		t.Errorf("SheetPosition = %v, want (-0.5, 0.5, 0)", opts.SheetPosition)
	}

	tags := cfg.groups().Expand([]string{"openings", "Walls"})
	if !slices.Equal(tags, []string{"Doors", "Windows", "Walls"}) {
		t.Errorf("groups().Expand() = %v", tags)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"unknown key", `colour = "red"`, errors.ErrCodeInvalidConfig},
		{"bad syntax", `offset = `, errors.ErrCodeInvalidConfig},
		{"bad position", "[sheets]\nposition = [1.0]", errors.ErrCodeInvalidConfig},
		{"empty group", "[groups]\nNothing = []", errors.ErrCodeInvalidConfig},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, strings.Repeat("c", i+1)+".toml", tt.content)
			_, err := loadConfig(path)
			if !errors.Is(err, tt.code) {
				t.Errorf("loadConfig() error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if cfg.Offset != nil || len(cfg.Groups) != 0 {
		t.Errorf("missing default config = %+v, want zero", cfg)
	}

	_, err = loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("explicit missing config error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	if err := os.MkdirAll(filepath.Join(home, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(home, appName), configFile, `depth_offset = 2.0`)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.DepthOffset == nil || *cfg.DepthOffset != 2 {
		t.Errorf("DepthOffset = %v, want 2", cfg.DepthOffset)
	}
}
