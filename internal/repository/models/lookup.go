package models

import (
	"database/sql"
	"time"
)

// Lookup is the persistence model for one recorded question lookup.
type Lookup struct {
	ID            string         `db:"id"`
	Company       string         `db:"company"`
	Bracket       string         `db:"experience_bracket"`
	Category      sql.NullString `db:"category"`
	Difficulty    sql.NullString `db:"difficulty"`
	Status        string         `db:"status"`
	QuestionCount int            `db:"question_count"`
	CreatedAt     time.Time      `db:"created_at"`
}
