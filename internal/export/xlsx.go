package export

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the name of the single worksheet in the ideas workbook
	SheetName = "ContinuousImprovementIdeas"
	// ContentType is the MIME type of the generated workbook
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// DateLayout formats registration dates as dd/MM/yyyy
	DateLayout = "02/01/2006"

	minColumnWidth = 8
	maxColumnWidth = 80
)

// Headers is the fixed header row of the ideas workbook
var Headers = []string{
	"ID",
	"Full name",
	"Work area",
	"Current situation",
	"Idea description",
	"Status",
	"Registration date",
	"Champion(s)",
	"Categories",
}

// IdeaRow is one data row of the ideas workbook
type IdeaRow struct {
	ID               uint
	FullName         string
	WorkArea         string
	CurrentSituation string
	IdeaDescription  string
	Status           string
	RegistrationDate time.Time
	Champions        []string
	Categories       []string
}

func (r IdeaRow) values() []interface{} {
	date := ""
	if !r.RegistrationDate.IsZero() {
		date = r.RegistrationDate.Format(DateLayout)
	}
	return []interface{}{
		r.ID,
		r.FullName,
		r.WorkArea,
		r.CurrentSituation,
		r.IdeaDescription,
		r.Status,
		date,
		strings.Join(r.Champions, ", "),
		strings.Join(r.Categories, ", "),
	}
}

// FileName returns the download name for a workbook generated at t
func FileName(t time.Time) string {
	return fmt.Sprintf("ContinuousImprovementIdeas_%s.xlsx", t.Format("20060102_150405"))
}

// WriteIdeasWorkbook renders the rows into an in-memory xlsx document
func WriteIdeasWorkbook(rows []IdeaRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	widths := make([]int, len(Headers))
	track := func(values []interface{}) {
		for i, v := range values {
			if n := utf8.RuneCountInString(fmt.Sprint(v)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	track(header)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("failed to style header row: %w", err)
	}

	for i, row := range rows {
		values := row.values()
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
		track(values)
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetName, col, col, columnWidth(w)); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func columnWidth(chars int) float64 {
	w := chars + 2
	if w < minColumnWidth {
		w = minColumnWidth
	}
	if w > maxColumnWidth {
		w = maxColumnWidth
	}
	return float64(w)
}
