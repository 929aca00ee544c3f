// Package cli implements zfake's command-line subcommands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zfake/internal/export"
	"github.com/zarlcorp/zfake/internal/locale"
	"github.com/zarlcorp/zfake/internal/profile"
	"github.com/zarlcorp/zfake/internal/record"
	"golang.org/x/term"
)

// ExitCode maps a command error to a process exit status: 2 for an
// unusable generation config, 1 for anything else.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, record.ErrInvalidConfig),
		errors.Is(err, record.ErrUnknownField),
		errors.Is(err, locale.ErrUnknownLocale),
		errors.Is(err, export.ErrUnknownFormat):
		return 2
	}
	return 1
}

// ExportDir returns the directory the TUI saves exports to.
func ExportDir(p profile.Profile) string {
	if d := os.Getenv("ZFAKE_EXPORT_DIR"); d != "" {
		return d
	}
	if p.Out != "" {
		return p.Out
	}
	return "."
}

// Verbose reports whether debug logging was requested.
func Verbose(args []string) bool {
	return hasFlag(args, "--verbose") || hasFlag(args, "-v") || os.Getenv("ZFAKE_DEBUG") == "1"
}

// LoadProfile reads the profile at path, or the default profile location
// when path is empty.
func LoadProfile(path string) (profile.Profile, error) {
	if path == "" {
		return profile.Load(profile.DefaultPath(), true)
	}
	return profile.Load(path, false)
}

// TUIConfig returns the profile and form config the TUI starts from. An
// unreadable or invalid profile is logged and replaced by the defaults so
// the form still opens.
func TUIConfig() (profile.Profile, record.Config) {
	p, err := LoadProfile("")
	if err != nil {
		slog.Warn("profile", "err", err)
		p = profile.Default()
	}

	cfg, err := p.Config()
	if err != nil {
		slog.Warn("profile", "err", err)
		p = profile.Default()
		cfg, _ = p.Config()
	}
	return p, cfg
}

// generateFlags holds the raw flag values; only flags the user set
// override the profile.
type generateFlags struct {
	count   int
	locale  string
	fields  string
	all     bool
	none    bool
	format  string
	out     string
	seed    int64
	config  string
	verbose bool
}

func parseGenerateFlags(args []string, stderr io.Writer) (generateFlags, map[string]bool, error) {
	var gf generateFlags
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&gf.count, "count", 0, "number of records (1-50)")
	fs.StringVar(&gf.locale, "locale", "", "locale: ru or en")
	fs.StringVar(&gf.fields, "fields", "", "comma-separated field names")
	fs.BoolVar(&gf.all, "all", false, "enable every field")
	fs.BoolVar(&gf.none, "none", false, "ID-only records")
	fs.StringVar(&gf.format, "format", "", "output format: csv, json or table")
	fs.StringVar(&gf.out, "out", "", "directory to save the export in")
	fs.Int64Var(&gf.seed, "seed", 0, "seed for reproducible values (0 draws one)")
	fs.StringVar(&gf.config, "config", "", "profile path")
	fs.BoolVar(&gf.verbose, "verbose", false, "debug logging")
	fs.BoolVar(&gf.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return generateFlags{}, nil, err
	}
	if fs.NArg() > 0 {
		return generateFlags{}, nil, fmt.Errorf("generate: unexpected argument %q", fs.Arg(0))
	}
	if gf.all && gf.none {
		return generateFlags{}, nil, fmt.Errorf("%w: --all and --none are exclusive", record.ErrInvalidConfig)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return gf, set, nil
}

// apply overlays explicitly set flags on p.
func (gf generateFlags) apply(p profile.Profile, set map[string]bool) profile.Profile {
	if set["count"] {
		p.Count = gf.count
	}
	if set["locale"] {
		p.Locale = gf.locale
	}
	if set["fields"] {
		p.Fields = strings.Split(gf.fields, ",")
	}
	if set["format"] {
		p.Format = gf.format
	}
	if set["out"] {
		p.Out = gf.out
	}
	if set["seed"] {
		p.Seed = gf.seed
	}
	return p
}

// CmdGenerate generates a batch and writes it to stdout, or saves it
// under --out.
func CmdGenerate(args []string, stdout, stderr io.Writer) error {
	gf, set, err := parseGenerateFlags(args, stderr)
	if err != nil {
		return err
	}

	p, err := LoadProfile(gf.config)
	if err != nil {
		return err
	}
	p = gf.apply(p, set)

	cfg, err := p.Config()
	if err != nil {
		return err
	}
	switch {
	case gf.all:
		cfg.Fields = record.AllFields()
	case gf.none:
		cfg.Fields = 0
	}
	if cfg.Seed == 0 {
		if cfg.Seed, err = record.NewSeed(); err != nil {
			return err
		}
	}

	format, err := p.OutputFormat()
	if err != nil {
		return err
	}
	if format == "" {
		format = defaultFormat(stdout, p.Out != "")
	}

	gen := record.New(record.WithLogger(slog.Default()))
	records, err := gen.Generate(cfg)
	if err != nil {
		return err
	}
	slog.Info("generated", "count", len(records), "locale", cfg.Locale, "seed", cfg.Seed)

	if p.Out == "" {
		return export.Write(stdout, format, records, cfg.Fields.Columns())
	}

	if err := os.MkdirAll(p.Out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	saved, err := export.Save(zfilesystem.NewOSFileSystem(p.Out), format, records, cfg.Fields.Columns(), time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "saved %s\n", saved)
	return nil
}

// defaultFormat picks a table for interactive terminals and CSV for pipes
// and files.
func defaultFormat(w io.Writer, toFile bool) export.Format {
	if toFile {
		return export.CSV
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return export.Table
	}
	return export.CSV
}

var fieldHelp = map[record.Field]string{
	record.FullName:       "full person name",
	record.Email:          "email address",
	record.Phone:          "phone number",
	record.City:           "city name",
	record.Address:        "street address on one line",
	record.BirthDate:      "DD.MM.YYYY, age 18-70",
	record.Job:            "job title",
	record.Company:        "company name",
	record.TaxID:          "10 digits",
	record.PassportNumber: "SSSS NNNNNN",
	record.CardNumber:     "card-shaped number, not a real card",
	record.CardCVV:        "3 digits",
	record.IPAddress:      "IPv4 dotted quad",
}

// CmdFields lists the field names in column order.
func CmdFields(w io.Writer) {
	for _, f := range record.Fields() {
		fmt.Fprintf(w, "  %-15s %s\n", f, fieldHelp[f])
	}
}

// CmdLocales lists the supported locales.
func CmdLocales(w io.Writer) {
	for _, c := range locale.Codes() {
		fmt.Fprintf(w, "  %-4s %s\n", c, c.Name())
	}
}

// CmdProfile prints the effective profile as YAML.
func CmdProfile(args []string, w io.Writer) error {
	var path string
	for i, a := range args {
		if strings.EqualFold(a, "--config") && i+1 < len(args) {
			path = args[i+1]
		}
	}

	p, err := LoadProfile(path)
	if err != nil {
		return err
	}
	data, err := p.YAML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}
