package record

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/zfake/internal/locale"
)

// Batch size limits.
const (
	MinCount = 1
	MaxCount = 50
)

// Age window for BirthDate, inclusive, in full years at generation time.
const (
	minAge = 18
	maxAge = 70
)

// BirthDateLayout is DD.MM.YYYY.
const BirthDateLayout = "02.01.2006"

// ErrInvalidConfig is returned when a Config cannot produce a batch.
var ErrInvalidConfig = errors.New("invalid config")

// Config fully describes one batch.
type Config struct {
	Count  int
	Locale locale.Code
	Fields FieldSet
	// Seed makes values reproducible; zero draws a fresh seed per call.
	Seed int64
}

// Validate checks the count range and locale.
func (c Config) Validate() error {
	if c.Count < MinCount || c.Count > MaxCount {
		return fmt.Errorf("%w: count %d outside [%d,%d]", ErrInvalidConfig, c.Count, MinCount, MaxCount)
	}
	if _, err := locale.Parse(string(c.Locale)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source used for age calculations.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithLogger sets the logger for batch-level debug output.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.log = l
	}
}

// Generator turns a Config into a batch of records. It holds no mutable
// state and is safe for concurrent use.
type Generator struct {
	now func() time.Time
	log *slog.Logger
}

// New creates a generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		now: time.Now,
		log: slog.Default(),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// NewSeed draws a non-zero seed from crypto/rand.
func NewSeed() (int64, error) {
	for {
		b, err := zcrypto.RandBytes(8)
		if err != nil {
			return 0, fmt.Errorf("draw seed: %w", err)
		}
		// keep it positive so it round-trips through flags unchanged
		s := int64(binary.BigEndian.Uint64(b) >> 1)
		if s != 0 {
			return s, nil
		}
	}
}

// Generate produces cfg.Count records with IDs 1..Count. Either the whole
// batch is returned or an error is, never a partial batch.
func (g *Generator) Generate(cfg Config) ([]Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	code, _ := locale.Parse(string(cfg.Locale))

	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, err
		}
	}

	f := gofakeit.New(seed)
	p, err := locale.New(code, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	g.log.Debug("generate batch",
		"count", cfg.Count,
		"locale", code,
		"fields", cfg.Fields.String(),
		"seed", seed,
	)

	b := builder{f: f, p: p, today: civilDate(g.now())}
	out := make([]Record, cfg.Count)
	for i := range out {
		out[i] = b.build(i+1, cfg.Fields)
	}
	return out, nil
}

// builder applies the per-field rules for one batch.
type builder struct {
	f     *gofakeit.Faker
	p     locale.Provider
	today time.Time
}

func (b builder) build(id int, set FieldSet) Record {
	r := Record{id: id, set: set}

	// one card per record so number and CVV belong together
	var cardNumber, cardCVV string
	if set.Has(CardNumber) || set.Has(CardCVV) {
		cardNumber, cardCVV = b.card()
	}

	for _, f := range set.Fields() {
		switch f {
		case FullName:
			r.values[f] = b.p.FullName()
		case Email:
			r.values[f] = b.p.Email()
		case Phone:
			r.values[f] = b.p.Phone()
		case City:
			r.values[f] = b.p.City()
		case Address:
			r.values[f] = flattenLines(b.p.Address())
		case BirthDate:
			r.values[f] = b.birthDate().Format(BirthDateLayout)
		case Job:
			r.values[f] = b.p.Job()
		case Company:
			r.values[f] = b.p.Company()
		case TaxID:
			r.values[f] = b.f.DigitN(10)
		case PassportNumber:
			r.values[f] = fmt.Sprintf("%04d %06d", b.f.Number(1000, 9999), b.f.Number(100000, 999999))
		case CardNumber:
			r.values[f] = cardNumber
		case CardCVV:
			r.values[f] = cardCVV
		case IPAddress:
			r.values[f] = b.f.IPv4Address()
		}
	}
	return r
}

// card returns a gapless card-shaped number and a 3-digit CVV. Types are
// restricted to brands that use 3-digit codes.
func (b builder) card() (number, cvv string) {
	number = b.f.CreditCardNumber(&gofakeit.CreditCardOptions{
		Types: []string{"visa", "mastercard", "discover"},
	})
	return number, b.f.DigitN(3)
}

// birthDate picks a day uniformly from the window of people aged
// minAge..maxAge today.
func (b builder) birthDate() time.Time {
	earliest, latest := birthWindow(b.today)
	days := int(latest.Sub(earliest).Hours() / 24)
	return earliest.AddDate(0, 0, b.f.Number(0, days))
}

// birthWindow returns the earliest and latest birth dates whose age on
// today is within [minAge, maxAge].
func birthWindow(today time.Time) (earliest, latest time.Time) {
	latest = yearsBefore(today, minAge)
	// day after the (maxAge+1)th birthday
	earliest = yearsBefore(today, maxAge+1).AddDate(0, 0, 1)
	return earliest, latest
}

// yearsBefore returns the same calendar day n years earlier. Feb 29 maps to
// Feb 28 in common years instead of normalizing forward into March.
func yearsBefore(t time.Time, n int) time.Time {
	d := t.AddDate(-n, 0, 0)
	if d.Day() != t.Day() {
		d = d.AddDate(0, 0, -d.Day())
	}
	return d
}

// Age returns the age in full years on day `on` of someone born on `born`.
func Age(born, on time.Time) int {
	age := on.Year() - born.Year()
	if on.Month() < born.Month() || (on.Month() == born.Month() && on.Day() < born.Day()) {
		age--
	}
	return age
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func flattenLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", ", ")
}
