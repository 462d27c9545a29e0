package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pet-hospitalization/internal/domain/hospitalizations"
	"pet-hospitalization/internal/domain/schedule"
)

func TestXLSX_WriteChart(t *testing.T) {
	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	done := at.Add(5 * time.Minute)

	board := hospitalizations.Board{
		Stay: hospitalizations.Hospitalization{ID: "s-1", PetID: "pet-1"},
		AsOf: at.Add(time.Hour),
		Administrations: []hospitalizations.AdministrationView{
			{
				Administration: hospitalizations.Administration{ID: "a-1", ScheduledAt: at, CompletedAt: &done, Actor: "nurse-1"},
				Status:         hospitalizations.ItemStatusDone,
				Medication:     "meloxicam",
				Dosage:         "0.1 mg/kg",
				Route:          "oral",
			},
		},
		Checklist: []hospitalizations.ChecklistView{
			{ChecklistItem: hospitalizations.ChecklistItem{ID: "c-1", Title: "walk", ScheduledAt: at.Add(2 * time.Hour)}, Status: hospitalizations.ItemStatusPending},
		},
	}
	prescriptions := []hospitalizations.Prescription{
		{ID: "p-1", Medication: "meloxicam", Dosage: "0.1 mg/kg", Frequency: schedule.Interval{Every: 8 * time.Hour}, Route: "oral", StartDate: at, Active: true},
	}

	var buf bytes.Buffer
	require.NoError(t, XLSX{}.WriteChart(&buf, board, prescriptions))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Prescriptions", "Administrations", "Checklist"}, f.GetSheetList())

	rows, err := f.GetRows("Administrations")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Scheduled", rows[0][0])
	assert.Equal(t, []string{"2024-01-01 08:00", "meloxicam", "0.1 mg/kg", "oral", "done", "2024-01-01 08:05", "nurse-1"}, rows[1])

	rows, err = f.GetRows("Prescriptions")
	require.NoError(t, err)
	assert.Equal(t, "every 8 hours", rows[1][2])
	assert.Equal(t, "active", rows[1][6])

	rows, err = f.GetRows("Checklist")
	require.NoError(t, err)
	assert.Equal(t, "pending", rows[1][2])
}
