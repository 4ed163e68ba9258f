package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateHomePageReturnsBareRecord(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "home_pages" WHERE tenant_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "welcome_description", "support_content"}).
			AddRow(1, 42, "Our story", "Mail us anytime"))
	mock.ExpectExec(`UPDATE "home_pages" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newFormContext(t, http.MethodPut,
		"welcome_description=Updated+story&support_content=Mail+us+anytime")
	require.NoError(t, UpdateHomePage(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Updated story", body["welcome_description"])
	assert.Equal(t, "Mail us anytime", body["support_content"])
	assert.NotContains(t, body, "data")
	require.NoError(t, mock.ExpectationsWereMet())
}
