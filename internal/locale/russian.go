package locale

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/lucasjones/reggen"
)

// phone patterns allow no repetition operators, so the limit only matters
// if a pattern is changed to use them
const phoneRepeatLimit = 10

type russian struct {
	f      *gofakeit.Faker
	phones []*reggen.Generator
}

// newRussian compiles the phone patterns up front so a bad pattern fails
// provider construction rather than a single record.
func newRussian(f *gofakeit.Faker) (Provider, error) {
	phones := make([]*reggen.Generator, 0, len(ruPhonePatterns))
	for _, p := range ruPhonePatterns {
		g, err := reggen.NewGenerator(p)
		if err != nil {
			return nil, fmt.Errorf("compile phone pattern %q: %w", p, err)
		}
		g.SetSeed(f.Rand.Int63())
		phones = append(phones, g)
	}
	return &russian{f: f, phones: phones}, nil
}

func (r *russian) Code() Code { return RU }

// person draws a gender-consistent surname, first name and patronymic.
func (r *russian) person() (last, first, patronymic string) {
	last = r.f.RandomString(ruSurnames)
	if r.f.Bool() {
		n := ruMaleNames[r.f.Number(0, len(ruMaleNames)-1)]
		return last, n.first, n.patronymic
	}
	return feminineSurname(last), r.f.RandomString(ruFemaleFirstNames), r.f.RandomString(ruFemalePatronymics)
}

// FullName returns "Фамилия Имя Отчество".
func (r *russian) FullName() string {
	last, first, patronymic := r.person()
	return last + " " + first + " " + patronymic
}

// Email builds a Latin local part from a transliterated name using one of
// several common layouts.
func (r *russian) Email() string {
	last, first, _ := r.person()
	l := transliterate(last)
	f := transliterate(first)

	var local string
	switch r.f.Number(0, 5) {
	case 0:
		local = f + "." + l
	case 1:
		local = f[:1] + "." + l
	case 2:
		local = l + "." + f
	case 3:
		local = fmt.Sprintf("%s%s%02d", f, l, r.f.Number(0, 99))
	case 4:
		local = fmt.Sprintf("%s%d", l, r.f.Number(1955, 2007))
	default:
		local = f + "_" + l
	}
	return local + "@" + r.f.RandomString(ruEmailDomains)
}

func (r *russian) Phone() string {
	g := r.phones[r.f.Number(0, len(r.phones)-1)]
	return g.Generate(phoneRepeatLimit)
}

func (r *russian) City() string {
	return "г. " + r.f.RandomString(ruCities)
}

// Address returns a postal block: street and building, city, index.
func (r *russian) Address() string {
	street := fmt.Sprintf("%s %s, д. %d",
		r.f.RandomString(ruStreetTypes), r.f.RandomString(ruStreetNames), r.f.Number(1, 150))
	if r.f.Number(0, 3) == 0 {
		street += fmt.Sprintf(" к. %d", r.f.Number(1, 5))
	}
	if r.f.Number(0, 2) > 0 {
		street += fmt.Sprintf(", кв. %d", r.f.Number(1, 300))
	}
	return street + "\n" + r.City() + "\n" + fmt.Sprintf("%06d", r.f.Number(101000, 692999))
}

func (r *russian) Job() string {
	return r.f.RandomString(ruJobs)
}

// Company returns a name like ООО «Вектор».
func (r *russian) Company() string {
	return r.f.RandomString(ruCompanyForms) + " «" + r.f.RandomString(ruCompanyNames) + "»"
}

// feminineSurname derives the feminine form of a masculine surname.
func feminineSurname(s string) string {
	switch {
	case strings.HasSuffix(s, "ский"), strings.HasSuffix(s, "цкий"):
		return strings.TrimSuffix(s, "ий") + "ая"
	case strings.HasSuffix(s, "ов"), strings.HasSuffix(s, "ев"), strings.HasSuffix(s, "ёв"),
		strings.HasSuffix(s, "ин"), strings.HasSuffix(s, "ын"):
		return s + "а"
	}
	return s
}

func transliterate(s string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(s) {
		if t, ok := translit[c]; ok {
			b.WriteString(t)
			continue
		}
		if c < 0x80 {
			b.WriteRune(c)
		}
	}
	return b.String()
}
