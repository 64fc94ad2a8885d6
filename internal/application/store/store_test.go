package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cosigner/internal/application"
	"github.com/MrJamesThe3rd/cosigner/internal/application/store"
	"github.com/MrJamesThe3rd/cosigner/internal/document"
	"github.com/MrJamesThe3rd/cosigner/internal/draft"
)

var applicationColumns = []string{
	"id", "user_id", "email", "first_name", "last_name", "personal", "employment", "rental", "documents",
	"status", "payment_status", "notes", "version", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, mock
}

func TestStore_GetApplication(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.New(db)

	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .* FROM applications").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(applicationColumns).AddRow(
			id.String(), "user-1", "a@example.com", "A", "B",
			[]byte(`{"firstName":"A","lastName":"B"}`),
			[]byte(`{"status":"student"}`),
			nil,
			[]byte(`{"governmentId":{"category":"governmentId","handle":"h-1","scanned":true}}`),
			"in_review", "paid", "looks good", 4, now, now,
		))

	app, err := s.GetApplication(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, app.ID)
	assert.Equal(t, application.StatusInReview, app.Status)
	assert.Equal(t, application.PaymentPaid, app.PaymentStatus)
	assert.Equal(t, draft.EmploymentStudent, app.Employment.Status)
	assert.Nil(t, app.Rental)
	require.NotNil(t, app.Notes)
	assert.Equal(t, "looks good", *app.Notes)
	assert.True(t, app.Documents.Has(document.CategoryGovernmentID))
	assert.Equal(t, 4, app.Version)
}

func TestStore_GetApplication_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.New(db)

	mock.ExpectQuery("SELECT .* FROM applications").WillReturnRows(sqlmock.NewRows(applicationColumns))

	_, err := s.GetApplication(context.Background(), uuid.New())
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestStore_ListApplications_StatusFilter(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.New(db)

	status := application.StatusSubmitted

	mock.ExpectQuery(`SELECT .* FROM applications WHERE status = \$1 ORDER BY created_at DESC`).
		WithArgs("submitted").
		WillReturnRows(sqlmock.NewRows(applicationColumns))

	apps, err := s.ListApplications(context.Background(), application.ListFilter{Status: &status})
	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.New(db)

	now := time.Now().UTC()
	app := &application.Application{
		ID:        uuid.New(),
		Status:    application.StatusInReview,
		Documents: document.Handles{document.CategoryGovernmentID: {Category: document.CategoryGovernmentID, ProviderID: "h-1", Scanned: true}},
		Version:   2,
	}

	mock.ExpectQuery("UPDATE applications SET status = \\$1, notes = \\$2, documents = \\$3").
		WithArgs("in_review", nil, sqlmock.AnyArg(), app.ID, 2).
		WillReturnRows(sqlmock.NewRows([]string{"version", "updated_at"}).AddRow(3, now))

	require.NoError(t, s.UpdateStatus(context.Background(), app))
	assert.Equal(t, 3, app.Version)
	assert.Equal(t, now, app.UpdatedAt)
}

func TestStore_UpdateStatus_VersionConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.New(db)

	mock.ExpectQuery("UPDATE applications SET status").
		WillReturnRows(sqlmock.NewRows([]string{"version", "updated_at"}))

	err := s.UpdateStatus(context.Background(), &application.Application{ID: uuid.New(), Version: 1})
	assert.ErrorIs(t, err, application.ErrVersionConflict)
}

func TestStore_UpdatePaymentStatus_ComparesCurrentState(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.New(db)

	app := &application.Application{ID: uuid.New(), PaymentStatus: application.PaymentPaid, Version: 1}

	mock.ExpectQuery("UPDATE applications SET payment_status").
		WithArgs("paid", app.ID, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"version", "updated_at"}).AddRow(2, time.Now()))

	require.NoError(t, s.UpdatePaymentStatus(context.Background(), app, application.PaymentPending))
	assert.Equal(t, 2, app.Version)
}

func TestStore_Submit(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.New(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO applications").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE application_drafts SET superseded_at").
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	tx, err := s.BeginSubmit(ctx, "user-1")
	require.NoError(t, err)

	active, err := tx.HasActiveApplication(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, active)

	now := time.Now().UTC()
	require.NoError(t, tx.CreateApplication(ctx, &application.Application{
		ID:            uuid.New(),
		UserID:        "user-1",
		Personal:      draft.PersonalInfo{FirstName: "A", LastName: "B"},
		Documents:     document.Handles{},
		Status:        application.StatusSubmitted,
		PaymentStatus: application.PaymentPending,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}))
	require.NoError(t, tx.SupersedeDraft(ctx, "user-1"))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
