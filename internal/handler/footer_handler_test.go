package handler

import (
	"net/http"
	"testing"

	"backoffice-service/pkg/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockDB points the global DB at a sqlmock connection for the test
func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	prev := database.DB
	database.DB = gdb
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})
	return mock
}

func TestDeleteDisclaimersRemovesRow(t *testing.T) {
	mock := newMockDB(t)
	// The singleton must be deleted for real, not soft-deleted, or the
	// unique tenant_id index blocks re-creation
	mock.ExpectExec(`DELETE FROM "footer_disclaimers" WHERE tenant_id = \$1`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONContext(t, http.MethodDelete, "")
	require.NoError(t, DeleteDisclaimers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDisclaimersAfterDelete(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectExec(`DELETE FROM "footer_disclaimers" WHERE tenant_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "footer_disclaimers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "footer_disclaimers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	c, rec := newJSONContext(t, http.MethodDelete, "")
	require.NoError(t, DeleteDisclaimers(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = newJSONContext(t, http.MethodPost, `{"site_disclaimer":"Results may vary."}`)
	require.NoError(t, CreateDisclaimers(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Results may vary.")
	require.NoError(t, mock.ExpectationsWereMet())
}
