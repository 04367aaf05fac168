package db

import (
	"database/sql"
	"fmt"

	"calc/models"
)

// SearchEntries returns history entries whose expression contains term,
// newest first.
func SearchEntries(db *sql.DB, term string, limit int) ([]models.Entry, error) {
	query := `
		SELECT id, expression, result, created_at
		FROM history
		WHERE expression LIKE ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := db.Query(query, "%"+term+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}
