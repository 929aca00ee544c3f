package profile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zarlcorp/zfake/internal/export"
	"github.com/zarlcorp/zfake/internal/locale"
	"github.com/zarlcorp/zfake/internal/record"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := Default().Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.Count != 10 {
		t.Errorf("Count = %d, want 10", cfg.Count)
	}
	if cfg.Locale != locale.RU {
		t.Errorf("Locale = %s, want ru", cfg.Locale)
	}
	want := "FullName,Email,Phone,City,Address,BirthDate,Job,Company"
	if cfg.Fields.String() != want {
		t.Errorf("Fields = %s, want %s", cfg.Fields, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParseOverrides(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		check func(Profile) bool
	}{
		{"count", "count: 50", func(p Profile) bool { return p.Count == 50 }},
		{"locale", "locale: en", func(p Profile) bool { return p.Locale == "en" }},
		{"fields", "fields: [tax_id, IPAddress]", func(p Profile) bool {
			return strings.Join(p.Fields, ",") == "tax_id,IPAddress"
		}},
		{"empty fields", "fields: []", func(p Profile) bool { return p.Fields != nil && len(p.Fields) == 0 }},
		{"absent fields keep default", "count: 3", func(p Profile) bool { return len(p.Fields) == 8 }},
		{"format", "format: json", func(p Profile) bool { return p.Format == "json" }},
		{"out", "out: /tmp/x", func(p Profile) bool { return p.Out == "/tmp/x" }},
		{"seed", "seed: 77", func(p Profile) bool { return p.Seed == 77 }},
		{"empty document", "", func(p Profile) bool { return p.Count == 10 && p.Locale == "ru" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !tt.check(p) {
				t.Errorf("unexpected profile: %+v", p)
			}
		})
	}
}

func TestParseBadYAML(t *testing.T) {
	if _, err := Parse([]byte("count: [1,2")); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		p    Profile
	}{
		{"bad locale", Profile{Count: 1, Locale: "de"}},
		{"bad field", Profile{Count: 1, Locale: "ru", Fields: []string{"shoe"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.p.Config()
			if !errors.Is(err, record.ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestOutputFormat(t *testing.T) {
	f, err := Profile{}.OutputFormat()
	if err != nil || f != "" {
		t.Errorf("empty format = %q, %v", f, err)
	}

	f, err = Profile{Format: "JSON"}.OutputFormat()
	if err != nil || f != export.JSON {
		t.Errorf("json format = %q, %v", f, err)
	}

	if _, err := (Profile{Format: "xml"}).OutputFormat(); !errors.Is(err, export.ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(path, []byte("count: 5\nlocale: en\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Count != 5 || p.Locale != "en" {
		t.Errorf("profile = %+v", p)
	}
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	p, err := Load(path, true)
	if err != nil {
		t.Fatalf("optional missing file should not fail: %v", err)
	}
	if p.Count != Default().Count {
		t.Errorf("expected defaults, got %+v", p)
	}

	if _, err := Load(path, false); err == nil {
		t.Error("required missing file should fail")
	}
}

func TestDefaultPath(t *testing.T) {
	tests := []struct {
		name string
		xdg  string
		want string
	}{
		{"xdg set", "/custom/config", "/custom/config/zfake/profile.yaml"},
		{"xdg empty falls back to home", "", "/.config/zfake/profile.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tt.xdg)

			got := DefaultPath()
			if tt.xdg != "" {
				if got != tt.want {
					t.Errorf("DefaultPath() = %s, want %s", got, tt.want)
				}
			} else if !strings.HasSuffix(got, tt.want) {
				t.Errorf("DefaultPath() = %s, want suffix %s", got, tt.want)
			}
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	want := Profile{Count: 7, Locale: "en", Fields: []string{"Email"}, Format: "csv", Out: "out", Seed: 3}
	data, err := want.YAML()
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Count != want.Count || got.Locale != want.Locale || got.Format != want.Format ||
		got.Out != want.Out || got.Seed != want.Seed || strings.Join(got.Fields, ",") != "Email" {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
