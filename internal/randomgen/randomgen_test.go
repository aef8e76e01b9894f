package randomgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/dirk.krummacker/rolodex/internal/model"
)

// TestPickNames draws a few names. It expects them all to be non-empty and
// free of spaces so that they can be embedded into email addresses.
func TestPickNames(t *testing.T) {
	for i := 0; i < 20; i++ {
		firstName := PickFirstName()
		lastName := PickLastName()
		assert.NotEmpty(t, firstName)
		assert.NotEmpty(t, lastName)
		assert.NotContains(t, firstName, " ")
		assert.NotContains(t, lastName, " ")
	}
}

// TestContact generates random contacts. It expects every one of them to
// pass the validation rules that adding to a rolodex would apply.
func TestContact(t *testing.T) {
	for i := 0; i < 20; i++ {
		contact := Contact()
		assert.NotEmpty(t, strings.TrimSpace(contact.Name))
		assert.True(t, model.IsValidEmail(contact.Email), contact.Email)
		assert.True(t, model.IsValidBirthDate(*contact.BirthDate), *contact.BirthDate)
		assert.True(t, contact.IsMinimallyComplete())
		assert.NotNil(t, contact.Address)
		assert.NotNil(t, contact.Phone)
	}
}
