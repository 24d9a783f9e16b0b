package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"interview-prep/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupLookupTestDB creates a new sqlx.DB instance and sqlmock for
// lookup repository testing.
func setupLookupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func TestSaveLookup(t *testing.T) {
	db, mock := setupLookupTestDB(t)
	defer db.Close()
	repo := NewSQLXLookupRepository(db)

	lookup := &models.Lookup{
		ID:            "01HTESTULID0000000000000000",
		Company:       "TCS",
		Bracket:       "0-2",
		Category:      sql.NullString{String: "Selenium", Valid: true},
		Status:        "success",
		QuestionCount: 3,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO lookups")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveLookup(context.Background(), lookup)
	assert.NoError(t, err)
	// CreatedAt defaults when the caller leaves it zero.
	assert.False(t, lookup.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveLookupError(t *testing.T) {
	db, mock := setupLookupTestDB(t)
	defer db.Close()
	repo := NewSQLXLookupRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO lookups")).
		WillReturnError(sql.ErrConnDone)

	err := repo.SaveLookup(context.Background(), &models.Lookup{ID: "x", Company: "TCS"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentLookups(t *testing.T) {
	db, mock := setupLookupTestDB(t)
	defer db.Close()
	repo := NewSQLXLookupRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "company", "experience_bracket", "category", "difficulty", "status", "question_count", "created_at"}).
		AddRow("id2", "Infosys", "2-5", nil, nil, "partial", 0, now).
		AddRow("id1", "TCS", "0-2", "Selenium", nil, "success", 3, now.Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, company, experience_bracket")).
		WithArgs(10).
		WillReturnRows(rows)

	lookups, err := repo.RecentLookups(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, lookups, 2)
	assert.Equal(t, "Infosys", lookups[0].Company)
	assert.Equal(t, "partial", lookups[0].Status)
	assert.False(t, lookups[0].Category.Valid)
	assert.Equal(t, "Selenium", lookups[1].Category.String)
	assert.NoError(t, mock.ExpectationsWereMet())
}
