package record

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/zarlcorp/zfake/internal/locale"
)

var fixedNow = time.Date(2026, 10, 17, 15, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestGenerateCountAndIDs(t *testing.T) {
	g := New(WithClock(fixedClock))

	for _, n := range []int{1, 2, 10, 49, 50} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			recs, err := g.Generate(Config{Count: n, Locale: locale.RU, Fields: AllFields()})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if len(recs) != n {
				t.Fatalf("len = %d, want %d", len(recs), n)
			}
			for i, r := range recs {
				if r.ID() != i+1 {
					t.Errorf("record %d has ID %d", i, r.ID())
				}
			}
		})
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	g := New()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"count zero", Config{Count: 0, Locale: locale.EN}},
		{"count 51", Config{Count: 51, Locale: locale.EN}},
		{"negative count", Config{Count: -3, Locale: locale.RU}},
		{"unknown locale", Config{Count: 5, Locale: "de"}},
		{"empty locale", Config{Count: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := g.Generate(tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
			if recs != nil {
				t.Errorf("expected no records on error, got %d", len(recs))
			}
		})
	}
}

func TestGenerateLocaleAliases(t *testing.T) {
	g := New()
	for _, code := range []locale.Code{"RU", "ru_RU", "en-US", "English"} {
		if _, err := g.Generate(Config{Count: 1, Locale: code}); err != nil {
			t.Errorf("locale %q: %v", code, err)
		}
	}
}

func TestGenerateKeySetMatchesFields(t *testing.T) {
	g := New(WithClock(fixedClock))

	sets := []FieldSet{
		0,
		NewFieldSet(FullName),
		NewFieldSet(CardCVV),
		NewFieldSet(IPAddress, FullName, TaxID),
		NewFieldSet(CardNumber, CardCVV),
		AllFields(),
	}

	for _, code := range locale.Codes() {
		for _, set := range sets {
			t.Run(code.String()+"/"+set.String(), func(t *testing.T) {
				recs, err := g.Generate(Config{Count: 5, Locale: code, Fields: set})
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				for _, r := range recs {
					m := r.Map()
					if len(m) != set.Len()+1 {
						t.Errorf("record %d has %d keys, want %d: %v", r.ID(), len(m), set.Len()+1, m)
					}
					if _, ok := m[IDColumn]; !ok {
						t.Errorf("record %d missing ID", r.ID())
					}
					for _, f := range Fields() {
						_, ok := m[f.String()]
						if ok != set.Has(f) {
							t.Errorf("record %d: field %s present=%v, enabled=%v", r.ID(), f, ok, set.Has(f))
						}
					}
				}
			})
		}
	}
}

func TestGenerateEmptyFields(t *testing.T) {
	g := New()
	recs, err := g.Generate(Config{Count: 3, Locale: locale.EN})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, r := range recs {
		m := r.Map()
		want := map[string]string{IDColumn: strconv.Itoa(i + 1)}
		if len(m) != 1 || m[IDColumn] != want[IDColumn] {
			t.Errorf("record = %v, want %v", m, want)
		}
	}
}

func TestGenerateColumnOrder(t *testing.T) {
	g := New()
	// added out of declared order on purpose
	set := NewFieldSet(IPAddress, Email, FullName, BirthDate)
	recs, err := g.Generate(Config{Count: 1, Locale: locale.RU, Fields: set})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	got := strings.Join(recs[0].Columns(), ",")
	want := "ID,FullName,Email,BirthDate,IPAddress"
	if got != want {
		t.Errorf("columns = %s, want %s", got, want)
	}
}

func TestFieldShapes(t *testing.T) {
	g := New(WithClock(fixedClock))

	shapes := map[Field]*regexp.Regexp{
		TaxID:          regexp.MustCompile(`^\d{10}$`),
		PassportNumber: regexp.MustCompile(`^[1-9]\d{3} [1-9]\d{5}$`),
		BirthDate:      regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`),
		CardNumber:     regexp.MustCompile(`^\d{12,19}$`),
		CardCVV:        regexp.MustCompile(`^\d{3}$`),
		IPAddress:      regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`),
	}

	for _, code := range locale.Codes() {
		recs, err := g.Generate(Config{Count: MaxCount, Locale: code, Fields: AllFields()})
		if err != nil {
			t.Fatalf("Generate(%s): %v", code, err)
		}
		for _, r := range recs {
			for f, re := range shapes {
				v, _ := r.Get(f)
				if !re.MatchString(v) {
					t.Errorf("%s %s = %q does not match %s", code, f, v, re)
				}
			}
			for _, f := range []Field{FullName, Email, Phone, City, Address, Job, Company} {
				if v, _ := r.Get(f); strings.TrimSpace(v) == "" {
					t.Errorf("%s %s is empty", code, f)
				}
			}
		}
	}
}

func TestDigitFieldsCoverAllDigits(t *testing.T) {
	g := New(WithClock(fixedClock))
	cfg := Config{Count: MaxCount, Locale: locale.EN, Fields: NewFieldSet(TaxID, CardCVV)}

	var taxFirst, cvvFirst [10]int
	for i := range 60 {
		cfg.Seed = int64(i + 1)
		recs, err := g.Generate(cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		for _, r := range recs {
			tax, _ := r.Get(TaxID)
			cvv, _ := r.Get(CardCVV)
			taxFirst[tax[0]-'0']++
			cvvFirst[cvv[0]-'0']++
		}
	}

	// 3000 draws per position; each digit is expected about 300 times
	for d := range 10 {
		if taxFirst[d] < 150 {
			t.Errorf("TaxId starts with %d only %d times: %v", d, taxFirst[d], taxFirst)
		}
		if cvvFirst[d] < 150 {
			t.Errorf("CardCVV starts with %d only %d times: %v", d, cvvFirst[d], cvvFirst)
		}
	}
}

func TestIPAddressOctets(t *testing.T) {
	g := New()
	recs, err := g.Generate(Config{Count: MaxCount, Locale: locale.EN, Fields: NewFieldSet(IPAddress)})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, r := range recs {
		v, _ := r.Get(IPAddress)
		parts := strings.Split(v, ".")
		if len(parts) != 4 {
			t.Fatalf("ip %q has %d parts", v, len(parts))
		}
		for _, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil || n < 0 || n > 255 {
				t.Errorf("ip %q has bad octet %q", v, p)
			}
		}
	}
}

func TestAddressHasNoLineBreaks(t *testing.T) {
	g := New()
	for _, code := range locale.Codes() {
		recs, err := g.Generate(Config{Count: MaxCount, Locale: code, Fields: NewFieldSet(Address)})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		for _, r := range recs {
			v, _ := r.Get(Address)
			if strings.ContainsAny(v, "\r\n") {
				t.Errorf("%s address %q contains a line break", code, v)
			}
			if !strings.Contains(v, ", ") {
				t.Errorf("%s address %q was not joined with \", \"", code, v)
			}
		}
	}
}

func TestBirthDateAgeRange(t *testing.T) {
	clocks := []time.Time{
		fixedNow,
		time.Date(2028, 2, 29, 12, 0, 0, 0, time.UTC),
		time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, now := range clocks {
		t.Run(now.Format("2006-01-02"), func(t *testing.T) {
			g := New(WithClock(func() time.Time { return now }))
			for range 20 {
				recs, err := g.Generate(Config{Count: MaxCount, Locale: locale.RU, Fields: NewFieldSet(BirthDate)})
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				for _, r := range recs {
					v, _ := r.Get(BirthDate)
					born, err := time.Parse(BirthDateLayout, v)
					if err != nil {
						t.Fatalf("parse %q: %v", v, err)
					}
					if age := Age(born, now); age < minAge || age > maxAge {
						t.Errorf("born %s is %d on %s", v, age, now.Format("2006-01-02"))
					}
				}
			}
		})
	}
}

func TestBirthWindowBounds(t *testing.T) {
	tests := []struct {
		today          time.Time
		earliest, last string
	}{
		{time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), "18.10.1955", "17.10.2008"},
		{time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC), "01.03.1957", "28.02.2010"},
		{time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "02.01.1956", "01.01.2009"},
	}

	for _, tt := range tests {
		t.Run(tt.today.Format("2006-01-02"), func(t *testing.T) {
			e, l := birthWindow(tt.today)
			if got := e.Format(BirthDateLayout); got != tt.earliest {
				t.Errorf("earliest = %s, want %s", got, tt.earliest)
			}
			if got := l.Format(BirthDateLayout); got != tt.last {
				t.Errorf("latest = %s, want %s", got, tt.last)
			}
			if a := Age(e, tt.today); a != maxAge {
				t.Errorf("age at earliest = %d, want %d", a, maxAge)
			}
			if a := Age(e.AddDate(0, 0, -1), tt.today); a != maxAge+1 {
				t.Errorf("age the day before earliest = %d, want %d", a, maxAge+1)
			}
			if a := Age(l.AddDate(0, 0, 1), tt.today); a != minAge-1 {
				t.Errorf("age the day after latest = %d, want %d", a, minAge-1)
			}
			if a := Age(l, tt.today); a != minAge {
				t.Errorf("age at latest = %d, want %d", a, minAge)
			}
		})
	}
}

func TestAge(t *testing.T) {
	on := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		born time.Time
		want int
	}{
		{time.Date(2008, 10, 17, 0, 0, 0, 0, time.UTC), 18},
		{time.Date(2008, 10, 18, 0, 0, 0, 0, time.UTC), 17},
		{time.Date(1955, 10, 17, 0, 0, 0, 0, time.UTC), 71},
		{time.Date(1955, 10, 18, 0, 0, 0, 0, time.UTC), 70},
		{time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), 36},
	}
	for _, tt := range tests {
		if got := Age(tt.born, on); got != tt.want {
			t.Errorf("Age(%s) = %d, want %d", tt.born.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestGenerateSeedReproducible(t *testing.T) {
	g := New(WithClock(fixedClock))
	cfg := Config{Count: 20, Locale: locale.RU, Fields: AllFields(), Seed: 42}

	a, err := g.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := g.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for i := range a {
		if strings.Join(a[i].Values(), "|") != strings.Join(b[i].Values(), "|") {
			t.Fatalf("record %d differs for same seed:\n%v\n%v", i+1, a[i].Values(), b[i].Values())
		}
	}
}

func TestGenerateRandomness(t *testing.T) {
	g := New()
	cfg := Config{Count: 10, Locale: locale.EN, Fields: NewFieldSet(TaxID, FullName)}

	a, err := g.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := g.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	same := true
	for i := range a {
		if strings.Join(a[i].Values(), "|") != strings.Join(b[i].Values(), "|") {
			same = false
			break
		}
	}
	if same {
		t.Error("two unseeded batches were identical")
	}
}

func TestNewSeed(t *testing.T) {
	seen := make(map[int64]bool)
	for range 20 {
		s, err := NewSeed()
		if err != nil {
			t.Fatalf("NewSeed: %v", err)
		}
		if s <= 0 {
			t.Errorf("seed %d should be positive", s)
		}
		seen[s] = true
	}
	if len(seen) < 19 {
		t.Errorf("seeds repeat: %d distinct of 20", len(seen))
	}
}

func TestFlattenLines(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a", "a"},
		{"a\nb", "a, b"},
		{"a\r\nb\nc", "a, b, c"},
	}
	for _, tt := range tests {
		if got := flattenLines(tt.in); got != tt.want {
			t.Errorf("flattenLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
