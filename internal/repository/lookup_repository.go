package repository

import (
	"context"
	"fmt"
	"time"

	"interview-prep/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// LookupRepository defines the interface for lookup history
// persistence. Durability is best effort; losing history entries
// never affects retrieval.
type LookupRepository interface {
	SaveLookup(ctx context.Context, lookup *models.Lookup) error
	RecentLookups(ctx context.Context, limit int) ([]models.Lookup, error)
}

// sqlxLookupRepository implements LookupRepository using sqlx.
type sqlxLookupRepository struct {
	db *sqlx.DB
}

// NewSQLXLookupRepository creates a new instance of sqlxLookupRepository.
func NewSQLXLookupRepository(db *sqlx.DB) LookupRepository {
	return &sqlxLookupRepository{db: db}
}

// SaveLookup inserts a new lookup record.
func (r *sqlxLookupRepository) SaveLookup(ctx context.Context, lookup *models.Lookup) error {
	query := `INSERT INTO lookups (id, company, experience_bracket, category, difficulty, status, question_count, created_at)
	          VALUES (:id, :company, :experience_bracket, :category, :difficulty, :status, :question_count, :created_at)`

	if lookup.CreatedAt.IsZero() {
		lookup.CreatedAt = time.Now()
	}

	if _, err := r.db.NamedExecContext(ctx, query, lookup); err != nil {
		return fmt.Errorf("failed to save lookup: %w", err)
	}
	return nil
}

// RecentLookups returns the most recent lookups, newest first.
func (r *sqlxLookupRepository) RecentLookups(ctx context.Context, limit int) ([]models.Lookup, error) {
	query := `SELECT id, company, experience_bracket, category, difficulty, status, question_count, created_at
	          FROM lookups ORDER BY created_at DESC, id DESC LIMIT ?`

	var lookups []models.Lookup
	if err := r.db.SelectContext(ctx, &lookups, query, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch recent lookups: %w", err)
	}
	return lookups, nil
}
