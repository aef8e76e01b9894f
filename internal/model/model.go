package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// BirthDateLayout is the required format of the birth_date field, for example
// "1969-03-02".
const BirthDateLayout = "2006-01-02"

// ErrDecode indicates that a raw record cannot be decoded into a Contact.
var ErrDecode = errors.New("record cannot be decoded")

// emailShape is the rough shape of an email address: something before the
// '@', something after it, and a dot somewhere in the domain part.
var emailShape = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

// Contact is the data structure for a person that we know. Name and Email are
// required for a contact to be kept in a rolodex. All other fields are
// optional; a nil pointer means the value was never provided and is written
// to the contacts file as JSON null.
type Contact struct {
	Name      string  `json:"name"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone_num"`
	Email     string  `json:"email"`
	BirthDate *string `json:"birth_date"`
}

// FromMap builds a Contact from loosely typed key/value pairs, typically one
// element of a decoded JSON contacts file. The 'name' key must hold a string
// that is not empty after trimming, otherwise an error wrapping ErrDecode is
// returned. All other keys are optional. Optional values that are missing,
// not strings, or empty after trimming are treated as absent.
//
// Example:
//
//	contact, err := model.FromMap(map[string]any{
//		"name":  "Erika Mustermann",
//		"email": "erika@example.de",
//	})
func FromMap(fields map[string]any) (Contact, error) {
	raw, ok := fields["name"]
	if !ok {
		return Contact{}, fmt.Errorf("%w: missing name", ErrDecode)
	}
	name, ok := raw.(string)
	if !ok || strings.TrimSpace(name) == "" {
		return Contact{}, fmt.Errorf("%w: name must be a non-empty string", ErrDecode)
	}
	contact := Contact{
		Name:      name,
		Address:   optionalField(fields, "address"),
		Phone:     optionalField(fields, "phone_num"),
		BirthDate: optionalField(fields, "birth_date"),
	}
	if email := optionalField(fields, "email"); email != nil {
		contact.Email = *email
	}
	return contact, nil
}

// optionalField extracts one optional string value from key/value pairs. It
// returns nil if the key is missing, holds a non-string value, or holds a
// string that is empty after trimming.
func optionalField(fields map[string]any, key string) *string {
	value, ok := fields[key].(string)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

// Optional turns plain prompt input into an optional field value: it returns
// a pointer to the trimmed string, or nil if the string is empty after
// trimming.
func Optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// IsValidEmail reports whether the given text looks like an email address.
// The check is intentionally loose; it only tests for the rough shape
// local-part@domain.tld.
func IsValidEmail(email string) bool {
	return emailShape.MatchString(email)
}

// IsValidBirthDate reports whether the given text is a calendar-valid date in
// the form "2006-01-02".
func IsValidBirthDate(date string) bool {
	_, err := time.Parse(BirthDateLayout, date)
	return err == nil
}

// IsMinimallyComplete reports whether the contact can actually be reached,
// that is whether it carries at least an email address or a phone number.
func (c Contact) IsMinimallyComplete() bool {
	if strings.TrimSpace(c.Email) != "" {
		return true
	}
	return c.Phone != nil && strings.TrimSpace(*c.Phone) != ""
}
