package integrationtest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/dirk.krummacker/rolodex/internal/model"
	"gitlab.com/dirk.krummacker/rolodex/internal/randomgen"
	"gitlab.com/dirk.krummacker/rolodex/internal/rolodex"
)

// TestContactLifecycle tests adding, viewing, editing and deleting a contact
// with valid data, reopening the contacts file between the steps.
func TestContactLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	rolo := rolodex.Open(path)

	// add a new contact
	added, err := rolo.AddMap(map[string]any{
		"name":       "Erika Mustermann",
		"phone_num":  "+49 0815 4711",
		"email":      "erika.mustermann@example.de",
		"birth_date": "1969-03-02",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Erika Mustermann", added.Name)

	// look up the contact
	found, ok := rolo.View("erika.mustermann@example.de")
	assert.True(t, ok)
	assert.Equal(t, "Erika Mustermann", found.Name)
	assert.Equal(t, "+49 0815 4711", *found.Phone)
	assert.Equal(t, "1969-03-02", *found.BirthDate)

	// update the contact
	updated, err := rolo.Edit("erika.mustermann@example.de", rolodex.ContactUpdate{
		Name:      model.Optional("Rudi Völler"),
		Phone:     model.Optional("+49 1234567890"),
		Email:     model.Optional("rudi.voeller@example.de"),
		BirthDate: model.Optional("1960-04-13"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Rudi Völler", updated.Name)

	// test if a reopened rolodex returns the updated values
	reopened := rolodex.Open(path)
	assert.Equal(t, 1, reopened.Len())
	again, ok := reopened.View("rudi.voeller@example.de")
	assert.True(t, ok)
	assert.Equal(t, "Rudi Völler", again.Name)
	assert.Equal(t, "+49 1234567890", *again.Phone)
	assert.Equal(t, "1960-04-13", *again.BirthDate)
	_, ok = reopened.View("erika.mustermann@example.de")
	assert.False(t, ok)

	// delete the contact
	assert.True(t, reopened.Delete("rudi.voeller@example.de"))

	// test if a final reopen will correctly not find it
	final := rolodex.Open(path)
	assert.Equal(t, 0, final.Len())
	_, ok = final.View("rudi.voeller@example.de")
	assert.False(t, ok)
}

// TestAddContactInvalidRecords tests adding different forms of invalid
// records. None of them may end up in the rolodex or on disk.
func TestAddContactInvalidRecords(t *testing.T) {
	invalidRecords := []map[string]any{
		{},
		{"name": ""},
		{"name": "   "},
		{"name": 4711, "email": "erika.mustermann@example.de"}, // name is not a string
		{"name": "Erika Mustermann"},                           // email missing
	}

	path := filepath.Join(t.TempDir(), "contacts.json")
	rolo := rolodex.Open(path)
	for _, record := range invalidRecords {
		_, err := rolo.AddMap(record)
		assert.ErrorIs(t, err, rolodex.ErrValidation, fmt.Sprintf("record: %v", record))
	}
	assert.Equal(t, 0, rolo.Len())
	assert.NoFileExists(t, path)
}

// TestEditContactUnknownEmail tests an edit for an email address that is not
// in the rolodex.
func TestEditContactUnknownEmail(t *testing.T) {
	rolo := rolodex.Open(filepath.Join(t.TempDir(), "contacts.json"))

	_, err := rolo.Edit("unknown@example.de", rolodex.ContactUpdate{
		Name: model.Optional("Rudi Völler"),
	})
	assert.ErrorIs(t, err, rolodex.ErrNotFound)
}

// TestEditContactInvalidValues tests edits with a valid email address but
// invalid proposed values. The stored contact must stay untouched.
func TestEditContactInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	rolo := rolodex.Open(path)
	_, err := rolo.AddMap(map[string]any{
		"name":       "Erika Mustermann",
		"email":      "erika.mustermann@example.de",
		"birth_date": "1969-03-02",
	})
	assert.NoError(t, err)

	empty := ""
	invalidUpdates := []rolodex.ContactUpdate{
		{Name: &empty},
		{Email: &empty},
		{Email: model.Optional("no-at-sign")},
		{BirthDate: model.Optional("02.03.1969")},
		{Name: model.Optional("Rudi Völler"), BirthDate: model.Optional("someday")}, // valid name, broken date
	}
	for _, updates := range invalidUpdates {
		_, err := rolo.Edit("erika.mustermann@example.de", updates)
		assert.ErrorIs(t, err, rolodex.ErrValidation)
	}

	reopened := rolodex.Open(path)
	contact, ok := reopened.View("erika.mustermann@example.de")
	assert.True(t, ok)
	assert.Equal(t, "Erika Mustermann", contact.Name)
	assert.Equal(t, "1969-03-02", *contact.BirthDate)
}

// TestEditContactPartially tests an edit with only one field proposed. It
// verifies that the other fields keep their values across a reopen.
func TestEditContactPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	rolo := rolodex.Open(path)
	_, err := rolo.AddMap(map[string]any{
		"name":       "Erika Mustermann",
		"address":    "Heidestraße 17, 51147 Köln",
		"phone_num":  "+49 0815 4711",
		"email":      "erika.mustermann@example.de",
		"birth_date": "1969-03-02",
	})
	assert.NoError(t, err)

	_, err = rolo.Edit("erika.mustermann@example.de", rolodex.ContactUpdate{
		Phone: model.Optional("+49 1234567890"),
	})
	assert.NoError(t, err)

	reopened := rolodex.Open(path)
	contact, ok := reopened.View("erika.mustermann@example.de")
	assert.True(t, ok)
	assert.Equal(t, "Erika Mustermann", contact.Name)
	assert.Equal(t, "Heidestraße 17, 51147 Köln", *contact.Address)
	assert.Equal(t, "+49 1234567890", *contact.Phone)
	assert.Equal(t, "1969-03-02", *contact.BirthDate)
}

// TestListContactsOrdered tests the sort field and the reverse parameter of
// the listing across all three sort fields.
func TestListContactsOrdered(t *testing.T) {
	rolo := rolodex.Open(filepath.Join(t.TempDir(), "contacts.json"))

	// three contacts sharing one random last name, with emails and birth
	// dates that order differently than the names
	fakeLastName := randomgen.PickLastName() + "-" + randomgen.PickLastName()
	emails := [3]string{}
	{
		contact := model.Contact{
			Name:      "Anton " + fakeLastName,
			Email:     "c." + fakeLastName + "@example.cz",
			Phone:     model.Optional("+420 555 555 555"),
			BirthDate: model.Optional("2003-07-01"),
		}
		added, err := rolo.Add(contact)
		assert.NoError(t, err)
		emails[0] = added.Email
	}
	{
		contact := model.Contact{
			Name:      "Zacharias " + fakeLastName,
			Email:     "a." + fakeLastName + "@example.cz",
			Phone:     model.Optional("+420 111 111 111"),
			BirthDate: model.Optional("1974-07-01"),
		}
		added, err := rolo.Add(contact)
		assert.NoError(t, err)
		emails[1] = added.Email
	}
	{
		contact := model.Contact{
			Name:      "Michael " + fakeLastName,
			Email:     "b." + fakeLastName + "@example.cz",
			Phone:     model.Optional("+420 999 999 999"),
			BirthDate: model.Optional("1933-07-01"),
		}
		added, err := rolo.Add(contact)
		assert.NoError(t, err)
		emails[2] = added.Email
	}

	// Verify that ascending ordering by name works
	{
		contacts, err := rolo.List("name", false)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(contacts))
		assert.Equal(t, emails[0], contacts[0].Email)
		assert.Equal(t, emails[2], contacts[1].Email)
		assert.Equal(t, emails[1], contacts[2].Email)
	}

	// Verify that descending ordering by name works
	{
		contacts, err := rolo.List("name", true)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(contacts))
		assert.Equal(t, emails[1], contacts[0].Email)
		assert.Equal(t, emails[2], contacts[1].Email)
		assert.Equal(t, emails[0], contacts[2].Email)
	}

	// Verify that ascending ordering by email works
	{
		contacts, err := rolo.List("email", false)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(contacts))
		assert.Equal(t, emails[1], contacts[0].Email)
		assert.Equal(t, emails[2], contacts[1].Email)
		assert.Equal(t, emails[0], contacts[2].Email)
	}

	// Verify that descending ordering by email works
	{
		contacts, err := rolo.List("email", true)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(contacts))
		assert.Equal(t, emails[0], contacts[0].Email)
		assert.Equal(t, emails[2], contacts[1].Email)
		assert.Equal(t, emails[1], contacts[2].Email)
	}

	// Verify that ascending ordering by birth date works
	{
		contacts, err := rolo.List("birth_date", false)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(contacts))
		assert.Equal(t, emails[2], contacts[0].Email)
		assert.Equal(t, emails[1], contacts[1].Email)
		assert.Equal(t, emails[0], contacts[2].Email)
	}

	// Verify that descending ordering by birth date works
	{
		contacts, err := rolo.List("birth_date", true)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(contacts))
		assert.Equal(t, emails[0], contacts[0].Email)
		assert.Equal(t, emails[1], contacts[1].Email)
		assert.Equal(t, emails[2], contacts[2].Email)
	}
}

// TestListContactsInvalidSortBy tries to list contacts with an invalid sort
// field.
func TestListContactsInvalidSortBy(t *testing.T) {
	rolo := rolodex.Open(filepath.Join(t.TempDir(), "contacts.json"))

	_, err := rolo.List("INVALID", false)
	assert.ErrorIs(t, err, rolodex.ErrValidation)
}

// TestSearchContactsAcrossReload seeds the rolodex with random contacts plus
// one known contact and verifies that searches find the known contact before
// and after reopening the file.
func TestSearchContactsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	rolo := rolodex.Open(path)
	for i := 0; i < 5; i++ {
		_, err := rolo.Add(randomgen.Contact())
		assert.NoError(t, err)
	}
	_, err := rolo.AddMap(map[string]any{
		"name":      "Julius Cäsar",
		"email":     "julius.caesar@example.it",
		"phone_num": "+39 123 456 789",
	})
	assert.NoError(t, err)

	// substring match on the name field
	results, err := rolo.Search("cäsar", []string{"name"}, false)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(results))
	assert.Equal(t, "Julius Cäsar", results[0].Name)

	// exact match on the email field
	results, err = rolo.Search("julius.caesar@example.it", []string{"email"}, true)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(results))

	// the same searches must hit after a reopen
	reopened := rolodex.Open(path)
	assert.Equal(t, 6, reopened.Len())
	results, err = reopened.Search("cäsar", []string{"name"}, false)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(results))
	assert.Equal(t, "Julius Cäsar", results[0].Name)
}

// TestOpenToleratesForeignEntries opens a contacts file that contains
// malformed entries between valid ones. The valid contacts must be usable,
// and the next mutation must rewrite the file with the valid contacts only.
func TestOpenToleratesForeignEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	raw := `[
		{"name": "Erika Mustermann", "email": "erika.mustermann@example.de"},
		"not an object",
		{"name": "No Email Given"},
		{"name": "Rudi Völler", "email": "rudi.voeller@example.de"}
	]`
	assert.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	rolo := rolodex.Open(path)
	assert.Equal(t, 2, rolo.Len())
	_, ok := rolo.View("erika.mustermann@example.de")
	assert.True(t, ok)

	// the next mutation rewrites the file with the surviving contacts only
	_, err := rolo.Add(model.Contact{Name: "Julius Cäsar", Email: "julius.caesar@example.it"})
	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "No Email Given")

	reopened := rolodex.Open(path)
	assert.Equal(t, 3, reopened.Len())
}
