package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omnichat/client/internal/repository"
)

func setupRepository(t *testing.T) (repository.Repository, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewSQLiteRepository(db), mockDB
}

func TestSQLiteRepository_GetSetting(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("SELECT value FROM settings WHERE key = ?")

	t.Run("Success", func(t *testing.T) {
		repo, mockDB := setupRepository(t)
		mockDB.ExpectQuery(query).WithArgs("installed_at").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("2026-01-01T00:00:00Z"))

		value, err := repo.GetSetting(ctx, "installed_at")
		require.NoError(t, err)
		assert.Equal(t, "2026-01-01T00:00:00Z", value)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Missing key maps to ErrNotFound", func(t *testing.T) {
		repo, mockDB := setupRepository(t)
		mockDB.ExpectQuery(query).WithArgs("license_key").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetSetting(ctx, "license_key")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Driver error is passed through", func(t *testing.T) {
		repo, mockDB := setupRepository(t)
		mockDB.ExpectQuery(query).WithArgs("license_key").WillReturnError(errors.New("disk I/O error"))

		_, err := repo.GetSetting(ctx, "license_key")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestSQLiteRepository_GetSettings(t *testing.T) {
	repo, mockDB := setupRepository(t)
	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("license_status", "active").
		AddRow("api_key_openai", "sk-test")
	mockDB.ExpectQuery("SELECT key, value FROM settings").WillReturnRows(rows)

	values, err := repo.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"license_status": "active", "api_key_openai": "sk-test"}, values)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteRepository_SaveSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes keys in sorted order inside one transaction", func(t *testing.T) {
		repo, mockDB := setupRepository(t)

		mockDB.ExpectBegin()
		prep := mockDB.ExpectPrepare("INSERT INTO settings")
		prep.ExpectExec().WithArgs("license_message", "ok", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(1, 1))
		prep.ExpectExec().WithArgs("license_status", "active", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(1, 1))
		mockDB.ExpectCommit()

		err := repo.SaveSettings(ctx, map[string]string{"license_status": "active", "license_message": "ok"})
		require.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Rolls back when a write fails", func(t *testing.T) {
		repo, mockDB := setupRepository(t)

		mockDB.ExpectBegin()
		prep := mockDB.ExpectPrepare("INSERT INTO settings")
		prep.ExpectExec().WithArgs("license_status", "active", sqlmock.AnyArg()).WillReturnError(errors.New("database is locked"))
		mockDB.ExpectRollback()

		err := repo.SaveSettings(ctx, map[string]string{"license_status": "active"})
		assert.ErrorContains(t, err, "license_status")
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Empty map is a no-op", func(t *testing.T) {
		repo, mockDB := setupRepository(t)
		require.NoError(t, repo.SaveSettings(ctx, nil))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestSQLiteRepository_DeleteSettings(t *testing.T) {
	repo, mockDB := setupRepository(t)
	query := regexp.QuoteMeta("DELETE FROM settings WHERE key = ?")

	mockDB.ExpectBegin()
	mockDB.ExpectExec(query).WithArgs("license_key").WillReturnResult(sqlmock.NewResult(0, 1))
	mockDB.ExpectExec(query).WithArgs("license_instance_id").WillReturnResult(sqlmock.NewResult(0, 1))
	mockDB.ExpectCommit()

	err := repo.DeleteSettings(context.Background(), "license_key", "license_instance_id")
	require.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
