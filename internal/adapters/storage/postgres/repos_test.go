package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-hospitalization/internal/domain/boxes"
	"pet-hospitalization/internal/domain/hospitalizations"
	"pet-hospitalization/internal/domain/schedule"
)

var boxCols = []string{"id", "name", "description", "active", "occupant_stay_id", "created_at", "updated_at"}

func TestBoxesRepo_ClaimSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE boxes").
		WithArgs("box-1", "stay-1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewBoxesRepo(db).Claim(context.Background(), "box-1", "stay-1", at)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoxesRepo_ClaimReportsWhyItFailed(t *testing.T) {
	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		active   bool
		occupant any
		want     error
	}{
		{"occupied", true, "stay-9", boxes.ErrOccupied},
		{"inactive", false, nil, boxes.ErrInactive},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec("UPDATE boxes").
				WithArgs("box-1", "stay-1", at).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectQuery("FROM boxes").
				WithArgs("box-1").
				WillReturnRows(sqlmock.NewRows(boxCols).AddRow("box-1", "B1", "", c.active, c.occupant, at, at))

			err = NewBoxesRepo(db).Claim(context.Background(), "box-1", "stay-1", at)
			assert.ErrorIs(t, err, c.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBoxesRepo_GetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM boxes").WithArgs("nope").WillReturnRows(sqlmock.NewRows(boxCols))

	_, err = NewBoxesRepo(db).GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, boxes.ErrNotFound)
}

func TestStaysRepo_GetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM hospitalizations").
		WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = NewStaysRepo(db).GetByID(context.Background(), "s-1")
	assert.ErrorIs(t, err, hospitalizations.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaysRepo_UpdateMissingIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE hospitalizations").WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewStaysRepo(db).Update(context.Background(), hospitalizations.Hospitalization{ID: "s-1"})
	assert.ErrorIs(t, err, hospitalizations.ErrNotFound)
}

func TestStaysRepo_ListBuildsFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	cols := []string{"id", "pet_id", "client_id", "clinician_id", "status", "admitted_at", "closed_at", "box_id", "reason", "notes", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("AND status = $1 AND pet_id = $2 ORDER BY admitted_at DESC, id ASC LIMIT $3")).
		WithArgs("active", "pet-1", 5).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("s-1", "pet-1", "c-1", "", "active", at, nil, "box-1", "post-op", "", at, at))

	out, err := NewStaysRepo(db).List(context.Background(), hospitalizations.StayFilter{
		Status: hospitalizations.StayStatusActive,
		PetID:  "pet-1",
		Limit:  5,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "box-1", out[0].BoxID)
	assert.Nil(t, out[0].ClosedAt)
	assert.Equal(t, hospitalizations.StayStatusActive, out[0].Status)
}

func TestPrescriptionsRepo_GetByIDParsesFrequency(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	cols := []string{"id", "stay_id", "medication", "dosage", "frequency", "route", "start_date", "end_date", "active", "deactivated_at", "notes", "created_at", "updated_at"}
	mock.ExpectQuery("FROM prescriptions").
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("p-1", "s-1", "meloxicam", "0.1 mg/kg", "every 8 hours", "oral", at, at.Add(24*time.Hour), true, nil, "", at, at))

	p, err := NewPrescriptionsRepo(db).GetByID(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, schedule.Interval{Every: 8 * time.Hour}, p.Frequency)
	require.NotNil(t, p.EndDate)
	assert.True(t, p.EndDate.Equal(at.Add(24*time.Hour)))
	assert.Nil(t, p.DeactivatedAt)
}

func TestPrescriptionsRepo_DailyZoneSurvivesUTCRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// 08:00 en -03:00, leído de timestamptz como UTC
	at := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)
	cols := []string{"id", "stay_id", "medication", "dosage", "frequency", "route", "start_date", "end_date", "active", "deactivated_at", "notes", "created_at", "updated_at"}
	mock.ExpectQuery("FROM prescriptions").
		WithArgs("p-2").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("p-2", "s-1", "amoxicilina", "20 mg/kg", "daily at 08:00,20:00 UTC-03:00", "oral", at, nil, true, nil, "", at, at))

	p, err := NewPrescriptionsRepo(db).GetByID(context.Background(), "p-2")
	require.NoError(t, err)

	daily, ok := p.Frequency.(schedule.DailyTimes)
	require.True(t, ok)
	require.NotNil(t, daily.Zone)
	assert.Equal(t, "UTC-03:00", daily.Zone.String())

	doses := schedule.Collect(p.Frequency, schedule.Window{Anchor: p.StartDate, Until: at.Add(24 * time.Hour)})
	require.Len(t, doses, 2)
	assert.True(t, doses[0].Equal(at))
	assert.True(t, doses[1].Equal(at.Add(12*time.Hour)))
}

func TestAdministrationsRepo_CreateBatchUsesTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	items := []hospitalizations.Administration{
		{ID: "a-1", StayID: "s-1", PrescriptionID: "p-1", ScheduledAt: at, CreatedAt: at, UpdatedAt: at},
		{ID: "a-2", StayID: "s-1", PrescriptionID: "p-1", ScheduledAt: at.Add(8 * time.Hour), CreatedAt: at, UpdatedAt: at},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO administrations")
	for _, a := range items {
		prep.ExpectExec().
			WithArgs(a.ID, a.StayID, a.PrescriptionID, a.ScheduledAt, nil, nil, "", "", at, at).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, NewAdministrationsRepo(db).CreateBatch(context.Background(), items))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_RunsEveryStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	stmts := statements(schemaSQL)
	require.NotEmpty(t, stmts)

	mock.ExpectBegin()
	for _, s := range stmts {
		mock.ExpectExec(regexp.QuoteMeta(s)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigure_AppliesPoolLimits(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	got := configure(db, Pool{MaxOpenConns: 7})
	assert.Equal(t, 7, db.Stats().MaxOpenConnections)
	assert.Equal(t, 5, got.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, got.ConnMaxLifetime)
	assert.Equal(t, 3*time.Second, got.PingTimeout)
}
