// Package validate checks credential payloads before they are sent to the
// identity service, so obviously malformed input fails fast with a local
// message instead of a round trip.
package validate

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Credentials is a login payload.
type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required, is.Email),
		validation.Field(&c.Password, validation.Required),
	)
}

// Registration is a sign-up payload. Names are optional but bounded.
type Registration struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func (r Registration) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 128)),
		validation.Field(&r.FirstName, validation.Length(0, 200)),
		validation.Field(&r.LastName, validation.Length(0, 200)),
	)
}
