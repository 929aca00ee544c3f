// Package profile loads generation defaults from YAML.
package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zarlcorp/zfake/internal/export"
	"github.com/zarlcorp/zfake/internal/locale"
	"github.com/zarlcorp/zfake/internal/record"
)

// Profile holds the defaults for a generation run. Zero-valued fields in a
// file leave the built-in default in place.
type Profile struct {
	Count  int      `yaml:"count"`
	Locale string   `yaml:"locale"`
	Fields []string `yaml:"fields"`
	Format string   `yaml:"format"`
	Out    string   `yaml:"out"`
	Seed   int64    `yaml:"seed"`
}

// Default returns the built-in profile: ten Russian records with the
// person and contact columns.
func Default() Profile {
	return Profile{
		Count:  10,
		Locale: string(locale.RU),
		Fields: []string{
			record.FullName.String(),
			record.Email.String(),
			record.Phone.String(),
			record.City.String(),
			record.Address.String(),
			record.BirthDate.String(),
			record.Job.String(),
			record.Company.String(),
		},
	}
}

// DefaultPath returns the profile location under the XDG config home.
func DefaultPath() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "zfake", "profile.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "zfake.yaml"
	}
	return filepath.Join(home, ".config", "zfake", "profile.yaml")
}

// Load reads path over the built-in defaults. When optional is true a
// missing file yields the defaults instead of an error.
func Load(path string, optional bool) (Profile, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}

	if err := p.merge(data); err != nil {
		return Profile{}, fmt.Errorf("load profile %s: %w", path, err)
	}
	return p, nil
}

// Parse reads YAML bytes over the built-in defaults.
func Parse(data []byte) (Profile, error) {
	p := Default()
	if err := p.merge(data); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (p *Profile) merge(data []byte) error {
	var f struct {
		Count  int       `yaml:"count"`
		Locale string    `yaml:"locale"`
		Fields *[]string `yaml:"fields"`
		Format string    `yaml:"format"`
		Out    string    `yaml:"out"`
		Seed   int64     `yaml:"seed"`
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	if f.Count != 0 {
		p.Count = f.Count
	}
	if f.Locale != "" {
		p.Locale = f.Locale
	}
	// an explicit empty list means ID-only records
	if f.Fields != nil {
		p.Fields = *f.Fields
	}
	if f.Format != "" {
		p.Format = f.Format
	}
	if f.Out != "" {
		p.Out = f.Out
	}
	if f.Seed != 0 {
		p.Seed = f.Seed
	}
	return nil
}

// YAML renders the profile in the file format Load reads.
func (p Profile) YAML() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	return data, nil
}

// Config converts the profile into a generation config. Range checks are
// left to record.Config.Validate.
func (p Profile) Config() (record.Config, error) {
	code, err := locale.Parse(p.Locale)
	if err != nil {
		return record.Config{}, fmt.Errorf("%w: %w", record.ErrInvalidConfig, err)
	}
	set, err := record.ParseFieldSet(p.Fields)
	if err != nil {
		return record.Config{}, fmt.Errorf("%w: %w", record.ErrInvalidConfig, err)
	}
	return record.Config{
		Count:  p.Count,
		Locale: code,
		Fields: set,
		Seed:   p.Seed,
	}, nil
}

// OutputFormat parses the profile's format. An empty format returns
// ("", nil) so callers can choose a default.
func (p Profile) OutputFormat() (export.Format, error) {
	if p.Format == "" {
		return "", nil
	}
	return export.ParseFormat(p.Format)
}
