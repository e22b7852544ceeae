package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.Sizing != "" {
		t.Fatalf("Sizing = %q, want empty", p.Sizing)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "snaplane")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	file := filepath.Join(dir, "prefs.toml")
	if err := os.WriteFile(file, []byte("theme = \"Slate\"\nsizing = \" viewport \"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", p.Theme)
	}
	if p.Sizing != "viewport" {
		t.Fatalf("Sizing = %q, want viewport", p.Sizing)
	}
}

func TestSave_RoundTrips(t *testing.T) {
	file := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(file, Prefs{Theme: "Slate", Sizing: "viewport"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	p := Load(file)
	if p.Theme != "Slate" || p.Sizing != "viewport" {
		t.Fatalf("Load = %+v, want Slate/viewport", p)
	}
}

func TestLoad_FallsBackOnBadInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty theme", "theme = \"\"\n"},
		{"invalid toml", "not valid toml {{{\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(file, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if p := Load(file); p.Theme != defaultTheme {
				t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
			}
		})
	}
}
