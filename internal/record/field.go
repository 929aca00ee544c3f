package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when a field name does not match any Field.
var ErrUnknownField = errors.New("unknown field")

// Field identifies one generated column. The declaration order is the
// column order of every record and export.
type Field uint8

const (
	FullName Field = iota
	Email
	Phone
	City
	Address
	BirthDate
	Job
	Company
	TaxID
	PassportNumber
	CardNumber
	CardCVV
	IPAddress

	fieldCount
)

// IDColumn is the name of the mandatory sequential identifier column.
const IDColumn = "ID"

var fieldNames = [fieldCount]string{
	FullName:       "FullName",
	Email:          "Email",
	Phone:          "Phone",
	City:           "City",
	Address:        "Address",
	BirthDate:      "BirthDate",
	Job:            "Job",
	Company:        "Company",
	TaxID:          "TaxId",
	PassportNumber: "PassportNumber",
	CardNumber:     "CardNumber",
	CardCVV:        "CardCVV",
	IPAddress:      "IPAddress",
}

// Fields returns every field in declared order.
func Fields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

func (f Field) String() string {
	if f >= fieldCount {
		return fmt.Sprintf("Field(%d)", uint8(f))
	}
	return fieldNames[f]
}

// Valid reports whether f is a declared field.
func (f Field) Valid() bool {
	return f < fieldCount
}

// ParseField matches a field name case-insensitively, ignoring '_', '-'
// and spaces, so "full_name" and "FullName" are the same field.
func ParseField(s string) (Field, error) {
	want := normalize(s)
	for i, name := range fieldNames {
		if normalize(name) == want {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FieldSet is a set of fields. The zero value is the empty set.
type FieldSet uint16

// NewFieldSet builds a set from the given fields.
func NewFieldSet(fields ...Field) FieldSet {
	var s FieldSet
	for _, f := range fields {
		s = s.With(f)
	}
	return s
}

// AllFields returns the set containing every declared field.
func AllFields() FieldSet {
	return FieldSet(1<<fieldCount - 1)
}

// ParseFieldSet parses a list of field names. Blank entries are skipped.
func ParseFieldSet(names []string) (FieldSet, error) {
	var s FieldSet
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		f, err := ParseField(strings.TrimSpace(n))
		if err != nil {
			return 0, err
		}
		s = s.With(f)
	}
	return s, nil
}

// With returns s with f added. Undeclared fields are ignored.
func (s FieldSet) With(f Field) FieldSet {
	if !f.Valid() {
		return s
	}
	return s | 1<<f
}

// Without returns s with f removed.
func (s FieldSet) Without(f Field) FieldSet {
	if !f.Valid() {
		return s
	}
	return s &^ (1 << f)
}

// Toggle flips membership of f.
func (s FieldSet) Toggle(f Field) FieldSet {
	if s.Has(f) {
		return s.Without(f)
	}
	return s.With(f)
}

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool {
	return f.Valid() && s&(1<<f) != 0
}

// Len returns the number of fields in the set.
func (s FieldSet) Len() int {
	n := 0
	for f := Field(0); f < fieldCount; f++ {
		if s.Has(f) {
			n++
		}
	}
	return n
}

// Fields returns the members in declared order.
func (s FieldSet) Fields() []Field {
	out := make([]Field, 0, s.Len())
	for f := Field(0); f < fieldCount; f++ {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Columns returns the header for records built from s: ID first, then
// the members in declared order.
func (s FieldSet) Columns() []string {
	cols := make([]string, 0, s.Len()+1)
	cols = append(cols, IDColumn)
	for _, f := range s.Fields() {
		cols = append(cols, f.String())
	}
	return cols
}

func (s FieldSet) String() string {
	names := make([]string, 0, s.Len())
	for _, f := range s.Fields() {
		names = append(names, f.String())
	}
	return strings.Join(names, ",")
}
