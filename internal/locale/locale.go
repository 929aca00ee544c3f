// Package locale supplies locale-specific synthetic values: names, contacts,
// places and employers. A provider draws only from the faker it was built
// with, so two providers never share random state.
package locale

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// ErrUnknownLocale is returned for codes with no registered provider.
var ErrUnknownLocale = errors.New("unknown locale")

// Code names a supported locale.
type Code string

const (
	RU Code = "ru"
	EN Code = "en"
)

func (c Code) String() string {
	return string(c)
}

var names = map[Code]string{
	RU: "Русский",
	EN: "English",
}

// Name returns the language name in that language.
func (c Code) Name() string {
	if n, ok := names[c]; ok {
		return n
	}
	return string(c)
}

// Provider generates locale-appropriate values. Address may span several
// lines; callers flatten it as needed.
type Provider interface {
	Code() Code
	FullName() string
	Email() string
	Phone() string
	City() string
	Address() string
	Job() string
	Company() string
}

type constructor func(f *gofakeit.Faker) (Provider, error)

var registry = map[Code]constructor{
	RU: newRussian,
	EN: newEnglish,
}

// aliases accepted by Parse besides the codes themselves
var aliases = map[string]Code{
	"russian": RU,
	"русский": RU,
	"english": EN,
}

// New builds the provider for code drawing from f. A nil f gets a
// randomly seeded faker.
func New(code Code, f *gofakeit.Faker) (Provider, error) {
	ctor, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, string(code))
	}
	if f == nil {
		f = gofakeit.New(0)
	}

	p, err := ctor(f)
	if err != nil {
		return nil, fmt.Errorf("locale %s: %w", code, err)
	}
	return p, nil
}

// Parse resolves s to a registered code. It accepts the bare code, a
// region-qualified form such as "ru_RU" or "en-US", and the language name.
func Parse(s string) (Code, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := aliases[v]; ok {
		return c, nil
	}
	if i := strings.IndexAny(v, "_-"); i > 0 {
		v = v[:i]
	}
	c := Code(v)
	if _, ok := registry[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, s)
	}
	return c, nil
}

// Codes returns the registered codes in sorted order.
func Codes() []Code {
	out := make([]Code, 0, len(registry))
	for c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
