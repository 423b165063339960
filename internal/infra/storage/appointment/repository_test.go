package appointment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/dbmetrics"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db, time.UTC), mock
}

func appointmentRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WithArgs(int64(7), "silk-press", "Silk Press", "hair", "2024-06-03", "10:00", 90, "pending", nil, "website").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	created, err := repo.Create(context.Background(), &domain.Appointment{
		CustomerID:      7,
		ServiceSlug:     "silk-press",
		ServiceName:     "Silk Press",
		ServiceType:     "hair",
		Date:            time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Time:            "10:00",
		DurationMinutes: ptr.Ptr(90),
		Status:          domain.StatusPending,
		Source:          domain.SourceWebsite,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(appointmentRows())

	_, err := repo.GetByID(context.Background(), 5)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_GetByID_ReanchorsDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	repo := NewRepository(db, loc)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(appointmentRows().AddRow(
			int64(1), int64(2), "braids", "Braids", nil,
			time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), "09:30", nil,
			"approved", "bring photos", "partner", now, now,
		))

	got, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, loc), got.Date)
	assert.Equal(t, "", got.ServiceType)
	assert.Nil(t, got.DurationMinutes)
	assert.Equal(t, "bring photos", *got.Note)
	assert.Equal(t, domain.StatusApproved, got.Status)
	assert.Equal(t, domain.SourcePartner, got.Source)
}

func TestRepository_GetActiveByDateAndTime_LocksInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db, time.UTC)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE .*appointment_date = \$1.* AND status <> \$3 ORDER BY id ASC FOR UPDATE`).
		WithArgs("2024-06-03", "10:00", "cancelled").
		WillReturnRows(appointmentRows().
			AddRow(int64(1), int64(1), "a", "A", "hair", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), "10:00", nil, "pending", nil, "website", now, now).
			AddRow(int64(2), int64(2), "b", "B", "nails", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), "10:00", 45, "approved", nil, "website", now, now))

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	got, err := repo.GetActiveByDateAndTime(ctx, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), "10:00")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "nails", got[1].ServiceType)
	assert.Equal(t, 45, *got[1].DurationMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_ChangeFeed(t *testing.T) {
	repo, mock := newMock(t)
	since := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE updated_at > $1 ORDER BY updated_at ASC, id ASC")).
		WithArgs(since).
		WillReturnRows(appointmentRows())

	got, err := repo.List(context.Background(), domain.AppointmentsFilter{UpdatedSince: &since, IncludeCancelled: true})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("approved", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 9, domain.StatusApproved)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
