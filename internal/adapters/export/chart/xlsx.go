package chart

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"pet-hospitalization/internal/domain/hospitalizations"
)

const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	sheetPrescriptions   = "Prescriptions"
	sheetAdministrations = "Administrations"
	sheetChecklist       = "Checklist"
)

// XLSX arma la planilla de tratamiento imprimible de una internación.
// Implementa hospitalizations.ChartExporter.
type XLSX struct {
	// Location para mostrar horarios; nil = UTC.
	Location *time.Location
}

func (x XLSX) ContentType() string { return contentType }

func (x XLSX) WriteChart(w io.Writer, b hospitalizations.Board, prescriptions []hospitalizations.Prescription) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("chart: header style: %w", err)
	}

	pRows := make([][]any, 0, len(prescriptions))
	for _, p := range prescriptions {
		freq := ""
		if p.Frequency != nil {
			freq = p.Frequency.String()
		}
		pRows = append(pRows, []any{
			p.Medication, p.Dosage, freq, p.Route,
			x.format(&p.StartDate), x.format(p.EndDate), activeLabel(p.Active), p.Notes,
		})
	}

	aRows := make([][]any, 0, len(b.Administrations))
	for _, a := range b.Administrations {
		aRows = append(aRows, []any{
			x.format(&a.ScheduledAt), a.Medication, a.Dosage, a.Route,
			string(a.Status), x.format(a.CompletedAt), a.Actor, a.Notes,
		})
	}

	cRows := make([][]any, 0, len(b.Checklist))
	for _, c := range b.Checklist {
		cRows = append(cRows, []any{
			x.format(&c.ScheduledAt), c.Title, string(c.Status), x.format(c.CompletedAt), c.Actor, c.Notes,
		})
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]any
	}{
		{sheetPrescriptions, []string{"Medication", "Dosage", "Frequency", "Route", "Start", "End", "Status", "Notes"}, pRows},
		{sheetAdministrations, []string{"Scheduled", "Medication", "Dosage", "Route", "Status", "Given at", "Actor", "Notes"}, aRows},
		{sheetChecklist, []string{"Scheduled", "Task", "Status", "Done at", "Actor", "Notes"}, cRows},
	}

	for i, s := range sheets {
		idx, err := f.NewSheet(s.name)
		if err != nil {
			return fmt.Errorf("chart: new sheet %s: %w", s.name, err)
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}
		if err := writeTable(f, s.name, header, s.headers, s.rows); err != nil {
			return err
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("chart: delete default sheet: %w", err)
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "Treatment chart " + b.Stay.ID,
		Subject: "pet " + b.Stay.PetID,
		Created: b.AsOf.UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("chart: doc props: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("chart: write: %w", err)
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, headerStyle int, headers []string, rows [][]any) error {
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("chart: %s header: %w", sheet, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("chart: %s header style: %w", sheet, err)
		}
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("chart: %s row %d: %w", sheet, r+2, err)
		}
	}

	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", last, 20); err != nil {
		return err
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (x XLSX) format(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	loc := x.Location
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02 15:04")
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}
	return "discontinued"
}
