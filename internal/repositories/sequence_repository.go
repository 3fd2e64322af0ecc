package repositories

import (
	"database/sql"
	"fmt"
)

// SequenceRepository hands out the next human-readable document number
// for a given type prefix (PROP, CONT, GAR, ATPV, DES, REC, RES).
type SequenceRepository interface {
	Next(prefix string) (string, error)
}

type sequenceRepository struct {
	db *sql.DB
}

func NewSequenceRepository(db *sql.DB) SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next bumps the per-prefix counter atomically and returns the formatted
// number, e.g. "PROP000042".
func (r *sequenceRepository) Next(prefix string) (string, error) {
	const q = `
                INSERT INTO document_sequences (prefix, last_value)
                VALUES ($1, 1)
                ON CONFLICT (prefix) DO UPDATE SET last_value = document_sequences.last_value + 1
                RETURNING last_value
        `
	var n int64
	if err := r.db.QueryRow(q, prefix).Scan(&n); err != nil {
		return "", fmt.Errorf("next document number: %w", err)
	}
	return fmt.Sprintf("%s%06d", prefix, n), nil
}
