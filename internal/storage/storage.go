package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/dirk.krummacker/rolodex/internal/model"
)

// tmpSuffix is appended to the destination path while writing. The finished
// file is renamed over the destination in a single step, so a crash in the
// middle of a save can never leave a half-written contacts file behind.
const tmpSuffix = ".tmp"

// Load reads the contact collection from the JSON file at the given path. It
// never fails: a missing file simply means there are no contacts yet, and an
// unreadable or corrupted file is reported with a warning and treated as
// empty.
//
// Every list element is decoded independently so that one bad entry cannot
// take down the whole file. Elements that are not JSON objects, that lack a
// usable name, or that lack an email address are skipped with a warning.
// Contacts that carry neither an email address nor a phone number are
// additionally pointed out because they cannot be reached.
func Load(path string) []model.Contact {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("cannot read contacts file, starting with no contacts",
				"file", path, "error", err)
		}
		return []model.Contact{}
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		slog.Warn("contacts file cannot be parsed, starting with no contacts",
			"file", path, "error", err)
		return []model.Contact{}
	}
	elements, ok := parsed.([]any)
	if !ok {
		slog.Warn("contacts file does not hold a list, starting with no contacts",
			"file", path)
		return []model.Contact{}
	}

	contacts := []model.Contact{}
	for i, element := range elements {
		fields, ok := element.(map[string]any)
		if !ok {
			slog.Warn("skipping entry that is not an object", "file", path, "index", i)
			continue
		}
		contact, err := model.FromMap(fields)
		if err != nil {
			slog.Warn("skipping entry that cannot be decoded",
				"file", path, "index", i, "error", err)
			continue
		}
		if !contact.IsMinimallyComplete() {
			slog.Warn("contact has neither email nor phone",
				"file", path, "index", i, "name", contact.Name)
		}
		if strings.TrimSpace(contact.Email) == "" {
			slog.Warn("skipping contact without an email address",
				"file", path, "index", i, "name", contact.Name)
			continue
		}
		contacts = append(contacts, contact)
	}
	return contacts
}

// Save writes the full contact collection to the JSON file at the given
// path, creating parent directories as needed. The file is human-readable:
// indented with four spaces and with non-ASCII text preserved as is.
//
// The write is crash-safe. The collection is first written to a temporary
// sibling file which is then renamed over the destination, so the previous
// file content stays intact if anything goes wrong. The temporary file is
// removed again on failure.
func Save(path string, contacts []model.Contact) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create directory for %s: %w", path, err)
	}

	// A nil slice would serialize as JSON null instead of an empty list.
	if contacts == nil {
		contacts = []model.Contact{}
	}
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(contacts); err != nil {
		return fmt.Errorf("cannot encode contacts: %w", err)
	}

	tmpPath := path + tmpSuffix
	if err := os.WriteFile(tmpPath, buffer.Bytes(), 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cannot write %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cannot replace %s: %w", path, err)
	}
	return nil
}
