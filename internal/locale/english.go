package locale

import (
	"github.com/brianvoe/gofakeit/v6"
)

// english delegates to gofakeit's built-in en_US data.
type english struct {
	f *gofakeit.Faker
}

func newEnglish(f *gofakeit.Faker) (Provider, error) {
	return &english{f: f}, nil
}

func (e *english) Code() Code       { return EN }
func (e *english) FullName() string { return e.f.Name() }
func (e *english) Email() string    { return e.f.Email() }
func (e *english) Phone() string    { return e.f.PhoneFormatted() }
func (e *english) City() string     { return e.f.City() }
func (e *english) Job() string      { return e.f.JobTitle() }
func (e *english) Company() string  { return e.f.Company() }

// Address returns a two-line US postal block:
//
//	1234 Oak Ave
//	Portland, OR 97201
func (e *english) Address() string {
	return e.f.Street() + "\n" + e.f.City() + ", " + e.f.StateAbr() + " " + e.f.Zip()
}
