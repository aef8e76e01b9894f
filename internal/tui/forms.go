package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"gitlab.com/dirk.krummacker/rolodex/internal/export"
	"gitlab.com/dirk.krummacker/rolodex/internal/model"
	"gitlab.com/dirk.krummacker/rolodex/internal/rolodex"
)

// prompt is one question of a form. The validate hook returns a message when
// the trimmed input is rejected, keeping the user on the same question.
type prompt struct {
	label       string
	placeholder string
	validate    func(value string) string
}

// form asks its prompts one at a time through a single text input. Once the
// last answer is in, finish runs the action and decides what comes next.
type form struct {
	title   string
	context string
	prompts []prompt
	answers []string
	index   int
	input   textinput.Model
	err     string
	finish  func(answers []string) outcome
}

// outcome is what a finished form produces: a result text, a follow-up form,
// or a confirmation prompt. Exactly one of the fields is set.
type outcome struct {
	text    string
	next    *form
	confirm *confirm
}

// confirm holds a yes/no question and the action to run on yes.
type confirm struct {
	question string
	accept   func() string
}

func newForm(title string, prompts []prompt, finish func(answers []string) outcome) *form {
	input := textinput.New()
	input.CharLimit = 0
	input.Focus()
	if len(prompts) > 0 {
		input.Placeholder = prompts[0].placeholder
	}
	return &form{title: title, prompts: prompts, input: input, finish: finish}
}

func (f *form) view() string {
	var b strings.Builder
	b.WriteString(FormTitleStyle.Render(f.title) + "\n\n")
	if f.context != "" {
		b.WriteString(f.context + "\n\n")
	}
	for i := 0; i < f.index; i++ {
		b.WriteString(LabelStyle.Render(f.prompts[i].label+": ") + f.answers[i] + "\n")
	}
	b.WriteString(LabelStyle.Render(f.prompts[f.index].label+": ") + f.input.View() + "\n")
	if f.err != "" {
		b.WriteString(ErrorStyle.Render(f.err) + "\n")
	}
	b.WriteString("\n" + HelpStyle.Render("enter: next  esc: menu"))
	return b.String()
}

// addForm collects a full contact. Email shape and birth date format are
// checked at the prompt, so only the duplicate check can still fail.
func addForm(rolo *rolodex.Rolodex) *form {
	prompts := []prompt{
		{label: "Name", validate: required},
		{label: "Email", validate: requiredEmail},
		{label: "Address", placeholder: "optional"},
		{label: "Phone", placeholder: "optional"},
		{label: "Birth date", placeholder: "YYYY-MM-DD, optional", validate: optionalBirthDate},
	}
	return newForm("Add New Contact", prompts, func(answers []string) outcome {
		fields := map[string]any{
			"name":       answers[0],
			"email":      answers[1],
			"address":    answers[2],
			"phone_num":  answers[3],
			"birth_date": answers[4],
		}
		contact, err := rolo.AddMap(fields)
		if err != nil {
			return outcome{text: ErrorStyle.Render("Failed to add contact: " + err.Error())}
		}
		return outcome{text: SuccessStyle.Render("Contact added.") + "\n\n" + renderContactCard(contact)}
	})
}

func viewForm(rolo *rolodex.Rolodex) *form {
	prompts := []prompt{{label: "Email to view", validate: required}}
	return newForm("View Contact", prompts, func(answers []string) outcome {
		contact, found := rolo.View(answers[0])
		if !found {
			return outcome{text: ErrorStyle.Render("No contact found with that email.")}
		}
		return outcome{text: renderContactCard(contact)}
	})
}

// editForm asks for the email first and only then builds the field form, so
// the current values can serve as placeholders.
func editForm(rolo *rolodex.Rolodex) *form {
	prompts := []prompt{{label: "Email of contact to edit", validate: required}}
	return newForm("Edit Contact", prompts, func(answers []string) outcome {
		contact, found := rolo.View(answers[0])
		if !found {
			return outcome{text: ErrorStyle.Render("No contact found with that email.")}
		}
		return outcome{next: editFieldsForm(rolo, contact)}
	})
}

func editFieldsForm(rolo *rolodex.Rolodex, contact model.Contact) *form {
	currentEmail := contact.Email
	prompts := []prompt{
		{label: "Name", placeholder: contact.Name},
		{label: "Address", placeholder: orBlank(contact.Address)},
		{label: "Phone", placeholder: orBlank(contact.Phone)},
		{label: "Email", placeholder: contact.Email, validate: optionalEmail},
		{label: "Birth date", placeholder: orBlank(contact.BirthDate), validate: optionalBirthDate},
	}
	f := newForm("Edit Contact", prompts, func(answers []string) outcome {
		updates := rolodex.ContactUpdate{
			Name:      model.Optional(answers[0]),
			Address:   model.Optional(answers[1]),
			Phone:     model.Optional(answers[2]),
			Email:     model.Optional(answers[3]),
			BirthDate: model.Optional(answers[4]),
		}
		updated, err := rolo.Edit(currentEmail, updates)
		if err != nil {
			return outcome{text: ErrorStyle.Render("Failed to edit contact: " + err.Error())}
		}
		return outcome{text: SuccessStyle.Render("Contact updated.") + "\n\n" + renderContactCard(updated)}
	})
	f.context = renderContactCard(contact) + "\n" +
		HelpStyle.Render("Leave a field blank to keep the current value.")
	return f
}

func deleteForm(rolo *rolodex.Rolodex) *form {
	prompts := []prompt{{label: "Email to delete", validate: required}}
	return newForm("Delete Contact", prompts, func(answers []string) outcome {
		email := answers[0]
		return outcome{confirm: &confirm{
			question: fmt.Sprintf("Are you sure you want to delete '%s'?", email),
			accept: func() string {
				if rolo.Delete(email) {
					return SuccessStyle.Render("Contact deleted.")
				}
				return ErrorStyle.Render("No contact found with that email.")
			},
		}}
	})
}

func searchForm(rolo *rolodex.Rolodex) *form {
	prompts := []prompt{
		{label: "Search query", validate: required},
		{label: "Fields", placeholder: "name,email"},
		{label: "Exact match?", placeholder: "y/N"},
	}
	return newForm("Search Contacts", prompts, func(answers []string) outcome {
		var fields []string
		for _, field := range strings.Split(answers[1], ",") {
			if trimmed := strings.TrimSpace(field); trimmed != "" {
				fields = append(fields, trimmed)
			}
		}
		results, err := rolo.Search(answers[0], fields, isYes(answers[2]))
		if err != nil {
			return outcome{text: ErrorStyle.Render(err.Error())}
		}
		return outcome{text: renderContactLines(results)}
	})
}

func listForm(rolo *rolodex.Rolodex, defaultSort string) *form {
	prompts := []prompt{
		{label: "Sort by", placeholder: fmt.Sprintf("name, email or birth_date (default %s)", defaultSort)},
		{label: "Reverse order?", placeholder: "y/N"},
	}
	return newForm("All Contacts", prompts, func(answers []string) outcome {
		sortBy := answers[0]
		if sortBy == "" {
			sortBy = defaultSort
		}
		contacts, err := rolo.List(sortBy, isYes(answers[1]))
		if err != nil {
			return outcome{text: ErrorStyle.Render("Invalid sort option: " + err.Error())}
		}
		return outcome{text: renderContactLines(contacts)}
	})
}

func exportForm(rolo *rolodex.Rolodex) *form {
	prompts := []prompt{
		{label: "Target file", placeholder: export.SuggestedFilename()},
	}
	return newForm("Export Spreadsheet", prompts, func(answers []string) outcome {
		path := answers[0]
		if path == "" {
			path = export.SuggestedFilename()
		}
		contacts, err := rolo.List("name", false)
		if err != nil {
			return outcome{text: ErrorStyle.Render("Export failed: " + err.Error())}
		}
		if err := export.ToXLSX(path, contacts); err != nil {
			return outcome{text: ErrorStyle.Render("Export failed: " + err.Error())}
		}
		return outcome{text: SuccessStyle.Render(
			fmt.Sprintf("Exported %d contacts to %s.", len(contacts), path))}
	})
}
