package rolodex

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"gitlab.com/dirk.krummacker/rolodex/internal/model"
	"gitlab.com/dirk.krummacker/rolodex/internal/storage"
)

// ErrValidation indicates that a caller-supplied value fails a format or
// non-empty rule. The collection is left unmodified.
var ErrValidation = errors.New("validation failed")

// ErrDuplicate indicates that a proposed email address collides with an
// existing contact.
var ErrDuplicate = errors.New("duplicate email")

// ErrNotFound indicates that no contact matches the given email address.
var ErrNotFound = errors.New("contact not found")

// allowedSortBy are the allowed values for the sort field of List.
var allowedSortBy = []string{"name", "email", "birth_date"}

// allowedSearchFields are the allowed values for the field selection of
// Search.
var allowedSearchFields = []string{"name", "email", "address", "phone", "birth_date"}

// Rolodex manages the contact collection for one contacts file. It owns the
// in-memory collection exclusively; all reads and mutations go through its
// methods, and every mutation is written back to the file before the method
// returns. A Rolodex is not safe for concurrent use.
type Rolodex struct {
	path     string
	contacts []model.Contact
}

// Open loads the contacts file at the given path and returns a Rolodex bound
// to it. Opening never fails: a missing or unreadable file yields an empty
// rolodex.
func Open(path string) *Rolodex {
	return &Rolodex{
		path:     path,
		contacts: storage.Load(path),
	}
}

// Path returns the location of the backing contacts file.
func (r *Rolodex) Path() string {
	return r.path
}

// Len returns the number of contacts currently held.
func (r *Rolodex) Len() int {
	return len(r.contacts)
}

// Add appends a new contact and persists the collection immediately. Name
// and email are trimmed and must not be empty. The email address must not
// collide with an existing contact when compared case-insensitively. The
// returned contact carries the trimmed values.
//
// Example:
//
//	added, err := rolo.Add(model.Contact{Name: "Ada Lovelace", Email: "ada@example.com"})
func (r *Rolodex) Add(contact model.Contact) (model.Contact, error) {
	name := strings.TrimSpace(contact.Name)
	email := strings.TrimSpace(contact.Email)
	if name == "" || email == "" {
		return model.Contact{}, fmt.Errorf(
			"%w: both name and email are required to add a contact", ErrValidation)
	}
	if r.indexByEmail(email) >= 0 {
		return model.Contact{}, fmt.Errorf(
			"%w: a contact with email '%s' already exists", ErrDuplicate, email)
	}
	contact.Name = name
	contact.Email = email
	r.contacts = append(r.contacts, contact)
	r.persist()
	slog.Info("added contact", "name", contact.Name, "email", contact.Email)
	return contact, nil
}

// AddMap builds a contact from loosely typed key/value pairs and adds it.
// Records that cannot be decoded are rejected with ErrValidation.
func (r *Rolodex) AddMap(fields map[string]any) (model.Contact, error) {
	contact, err := model.FromMap(fields)
	if err != nil {
		return model.Contact{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return r.Add(contact)
}

// List returns a new slice of all contacts sorted by the given field.
//
// Valid sort fields are 'name', 'email', and 'birth_date'. An empty sort
// field defaults to 'name'. Text is compared case-insensitively, and
// contacts without a value for the sort field sort as if the value were an
// empty string. Contacts with equal sort values keep their insertion order,
// also when the order is reversed.
//
// Example:
//
//	byBirthDate, err := rolo.List("birth_date", false)
func (r *Rolodex) List(sortBy string, reverse bool) ([]model.Contact, error) {
	field := strings.ToLower(strings.TrimSpace(sortBy))
	if field == "" {
		field = "name"
	}
	if !contains(allowedSortBy, field) {
		return nil, fmt.Errorf("%w: sort field must be one of: %s",
			ErrValidation, strings.Join(allowedSortBy, ", "))
	}
	sorted := make([]model.Contact, len(r.contacts))
	copy(sorted, r.contacts)
	sort.SliceStable(sorted, func(i, j int) bool {
		a := sortValue(sorted[i], field)
		b := sortValue(sorted[j], field)
		if reverse {
			return a > b
		}
		return a < b
	})
	return sorted, nil
}

// FindByEmail returns the first contact whose email address matches the
// given one, compared case-insensitively after trimming. The second return
// value is false if the email is empty or no contact matches.
func (r *Rolodex) FindByEmail(email string) (model.Contact, bool) {
	index := r.indexByEmail(email)
	if index < 0 {
		return model.Contact{}, false
	}
	return r.contacts[index], true
}

// View returns the contact with the given email address. It is an alias for
// FindByEmail for clearer intent at the call site.
func (r *Rolodex) View(email string) (model.Contact, bool) {
	return r.FindByEmail(email)
}

// Search returns all contacts matching the query on at least one of the
// selected fields, in insertion order.
//
// An empty query yields an empty result. The field selection defaults to
// name and email; valid fields are 'name', 'email', 'address', 'phone', and
// 'birth_date'. Matching is case-insensitive. With exact set, the query must
// equal the whole field value, otherwise substring containment is enough.
// Fields the contact has no value for never match.
func (r *Rolodex) Search(query string, fields []string, exact bool) ([]model.Contact, error) {
	if query == "" {
		return []model.Contact{}, nil
	}
	needle := strings.ToLower(strings.TrimSpace(query))

	if len(fields) == 0 {
		fields = []string{"name", "email"}
	}
	var selected []string
	for _, field := range fields {
		normalized := strings.ToLower(strings.TrimSpace(field))
		if contains(allowedSearchFields, normalized) {
			selected = append(selected, normalized)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: fields must include one or more of: %s",
			ErrValidation, strings.Join(allowedSearchFields, ", "))
	}

	matches := []model.Contact{}
	for _, contact := range r.contacts {
		if matchesQuery(contact, needle, selected, exact) {
			matches = append(matches, contact)
		}
	}
	return matches, nil
}

// ContactUpdate describes a sparse set of proposed changes for one contact.
// A nil field is left unchanged. Proposing an empty string clears the
// optional address, phone and birth date fields, while name and email must
// never become empty.
type ContactUpdate struct {
	Name      *string
	Address   *string
	Phone     *string
	Email     *string
	BirthDate *string
}

// Edit updates the contact identified by its current email address with the
// proposed values and persists the collection. All proposed values are
// validated before anything is changed, so a rejected edit leaves the
// contact exactly as it was:
//   - a proposed name must not be empty after trimming
//   - a proposed email must not be empty, must look like an email address,
//     and must not collide with another contact when it actually changes the
//     normalized address
//   - a proposed birth date must be a calendar-valid YYYY-MM-DD date, or
//     empty to clear the field
func (r *Rolodex) Edit(currentEmail string, updates ContactUpdate) (model.Contact, error) {
	index := r.indexByEmail(currentEmail)
	if index < 0 {
		return model.Contact{}, fmt.Errorf(
			"%w: no contact with email '%s'", ErrNotFound, currentEmail)
	}
	contact := r.contacts[index]

	newName := contact.Name
	if updates.Name != nil {
		newName = strings.TrimSpace(*updates.Name)
		if newName == "" {
			return model.Contact{}, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
	}

	newEmail := contact.Email
	if updates.Email != nil {
		proposed := strings.TrimSpace(*updates.Email)
		if proposed == "" {
			return model.Contact{}, fmt.Errorf("%w: email cannot be empty", ErrValidation)
		}
		if !model.IsValidEmail(proposed) {
			return model.Contact{}, fmt.Errorf("%w: invalid email format", ErrValidation)
		}
		if emailKey(proposed) != emailKey(contact.Email) && r.indexByEmail(proposed) >= 0 {
			return model.Contact{}, fmt.Errorf(
				"%w: a contact with email '%s' already exists", ErrDuplicate, proposed)
		}
		newEmail = proposed
	}

	if updates.BirthDate != nil {
		proposed := strings.TrimSpace(*updates.BirthDate)
		if proposed != "" && !model.IsValidBirthDate(proposed) {
			return model.Contact{}, fmt.Errorf(
				"%w: invalid birth date (expected YYYY-MM-DD)", ErrValidation)
		}
	}

	// All checks passed, apply the proposed values
	contact.Name = newName
	contact.Email = newEmail
	if updates.Address != nil {
		contact.Address = model.Optional(*updates.Address)
	}
	if updates.Phone != nil {
		contact.Phone = model.Optional(*updates.Phone)
	}
	if updates.BirthDate != nil {
		contact.BirthDate = model.Optional(*updates.BirthDate)
	}
	r.contacts[index] = contact
	r.persist()
	slog.Info("edited contact", "name", contact.Name, "email", contact.Email)
	return contact, nil
}

// Delete removes the first contact whose email address matches the given
// one and persists the collection. It returns false without touching the
// file if the email is empty or no contact matches.
func (r *Rolodex) Delete(email string) bool {
	index := r.indexByEmail(email)
	if index < 0 {
		return false
	}
	removed := r.contacts[index]
	r.contacts = append(r.contacts[:index], r.contacts[index+1:]...)
	r.persist()
	slog.Info("deleted contact", "name", removed.Name, "email", removed.Email)
	return true
}

// persist writes the current collection to the contacts file. A failed write
// is logged and otherwise ignored; the in-memory state has already changed
// and stays authoritative until the next successful save.
func (r *Rolodex) persist() {
	if err := storage.Save(r.path, r.contacts); err != nil {
		slog.Error("cannot save contacts file", "file", r.path, "error", err)
	}
}

// indexByEmail returns the position of the first contact whose email address
// matches the given one case-insensitively after trimming, or -1 if the
// email is empty or nothing matches.
func (r *Rolodex) indexByEmail(email string) int {
	key := emailKey(email)
	if key == "" {
		return -1
	}
	for i, contact := range r.contacts {
		if emailKey(contact.Email) == key {
			return i
		}
	}
	return -1
}

// emailKey normalizes an email address for comparisons.
func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// sortValue returns the value the contact carries for the given sort field,
// lowercased, or an empty string if there is none.
func sortValue(c model.Contact, field string) string {
	switch field {
	case "email":
		return strings.ToLower(c.Email)
	case "birth_date":
		if c.BirthDate == nil {
			return ""
		}
		return strings.ToLower(*c.BirthDate)
	default:
		return strings.ToLower(c.Name)
	}
}

// matchesQuery reports whether the contact matches the query on at least one
// of the selected fields.
func matchesQuery(c model.Contact, query string, fields []string, exact bool) bool {
	for _, field := range fields {
		value, present := fieldValue(c, field)
		if !present {
			continue
		}
		value = strings.ToLower(value)
		if exact {
			if value == query {
				return true
			}
		} else if strings.Contains(value, query) {
			return true
		}
	}
	return false
}

// fieldValue returns the value the contact carries for the given search
// field and whether the field is present at all.
func fieldValue(c model.Contact, field string) (string, bool) {
	switch field {
	case "name":
		return c.Name, true
	case "email":
		return c.Email, true
	case "address":
		if c.Address == nil {
			return "", false
		}
		return *c.Address, true
	case "phone":
		if c.Phone == nil {
			return "", false
		}
		return *c.Phone, true
	case "birth_date":
		if c.BirthDate == nil {
			return "", false
		}
		return *c.BirthDate, true
	}
	return "", false
}

// contains returns true if a string is present in a slice.
func contains(slice []string, str string) bool {
	for _, v := range slice {
		if v == str {
			return true
		}
	}
	return false
}
