package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"gitlab.com/dirk.krummacker/rolodex/internal/model"
)

// sheetName is the name of the single worksheet in an exported file.
const sheetName = "Contacts"

// header holds the column titles, in export order.
var header = []string{"Name", "Email", "Phone", "Address", "Birth Date"}

// SuggestedFilename returns a date-stamped default name for an export file,
// for example "contacts-2026-08-22.xlsx".
func SuggestedFilename() string {
	return fmt.Sprintf("contacts-%s.xlsx", time.Now().Format("2006-01-02"))
}

// ToXLSX writes the given contacts to a spreadsheet file at the given path.
// The sheet holds one row per contact under a bold header row; absent values
// stay blank. Exporting an empty collection produces a header-only sheet.
func ToXLSX(path string, contacts []model.Contact) error {
	file := excelize.NewFile()
	defer file.Close()

	// A new workbook always starts with a sheet named "Sheet1".
	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("cannot rename sheet: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("cannot create header style: %w", err)
	}
	for column, title := range header {
		cell, err := excelize.CoordinatesToCellName(column+1, 1)
		if err != nil {
			return fmt.Errorf("cannot address header cell: %w", err)
		}
		if err := file.SetCellValue(sheetName, cell, title); err != nil {
			return fmt.Errorf("cannot write header cell: %w", err)
		}
		if err := file.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("cannot style header cell: %w", err)
		}
	}

	for i, contact := range contacts {
		values := []string{
			contact.Name,
			contact.Email,
			stringOrBlank(contact.Phone),
			stringOrBlank(contact.Address),
			stringOrBlank(contact.BirthDate),
		}
		for column, value := range values {
			cell, err := excelize.CoordinatesToCellName(column+1, i+2)
			if err != nil {
				return fmt.Errorf("cannot address cell: %w", err)
			}
			if err := file.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("cannot write cell: %w", err)
			}
		}
	}

	if err := file.SetColWidth(sheetName, "A", "E", 28); err != nil {
		return fmt.Errorf("cannot set column widths: %w", err)
	}
	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save %s: %w", path, err)
	}
	return nil
}

// stringOrBlank dereferences an optional field for the export, mapping an
// absent value to a blank cell.
func stringOrBlank(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
