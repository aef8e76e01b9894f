package tui

import (
	"fmt"
	"strings"

	"gitlab.com/dirk.krummacker/rolodex/internal/model"
)

// Prompt validators. They receive the already trimmed input and return an
// empty string when the value is acceptable.

func required(value string) string {
	if value == "" {
		return "Value cannot be empty."
	}
	return ""
}

func requiredEmail(value string) string {
	if message := required(value); message != "" {
		return message
	}
	return optionalEmail(value)
}

func optionalEmail(value string) string {
	if value != "" && !model.IsValidEmail(value) {
		return "Invalid email format."
	}
	return ""
}

func optionalBirthDate(value string) string {
	if value != "" && !model.IsValidBirthDate(value) {
		return "Invalid date (expected YYYY-MM-DD)."
	}
	return ""
}

func isYes(value string) bool {
	answer := strings.ToLower(value)
	return answer == "y" || answer == "yes"
}

func orBlank(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// renderContactCard shows one contact with all its fields in a bordered box.
func renderContactCard(c model.Contact) string {
	lines := []string{
		LabelStyle.Render("Name: ") + c.Name,
		LabelStyle.Render("Address: ") + orBlank(c.Address),
		LabelStyle.Render("Phone: ") + orBlank(c.Phone),
		LabelStyle.Render("Email: ") + c.Email,
		LabelStyle.Render("Date of Birth: ") + orBlank(c.BirthDate),
	}
	return CardStyle.Render(strings.Join(lines, "\n"))
}

// renderContactLines shows a collection as numbered one line summaries.
func renderContactLines(contacts []model.Contact) string {
	if len(contacts) == 0 {
		return "No contacts found."
	}
	var b strings.Builder
	for i, c := range contacts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%d. %s <%s> | %s | %s",
			i+1, c.Name, c.Email, orBlank(c.Phone), orBlank(c.Address)))
	}
	return b.String()
}
