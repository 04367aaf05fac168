package db

import (
	"database/sql"
	"fmt"

	"calc/models"

	_ "github.com/mattn/go-sqlite3"
)

func InitDB(name string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s.db", name))
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			expression TEXT NOT NULL,
			result REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("error creating history table: %w", err)
	}

	return db, nil
}

func SetupDatabase(name string) (*sql.DB, error) {
	dbConn, err := InitDB(name)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return dbConn, nil
}

func SaveEntry(db *sql.DB, expression string, result float64) (int64, error) {
	res, err := db.Exec("INSERT INTO history (expression, result) VALUES (?, ?)", expression, result)
	if err != nil {
		return 0, fmt.Errorf("failed to insert history entry: %w", err)
	}

	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return lastID, nil
}

// GetEntries returns the most recent history entries, newest first.
func GetEntries(db *sql.DB, limit int) ([]models.Entry, error) {
	query := `
		SELECT id, expression, result, created_at
		FROM history
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func ClearEntries(db *sql.DB) error {
	_, err := db.Exec("DELETE FROM history")
	if err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]models.Entry, error) {
	var entries []models.Entry
	for rows.Next() {
		var entry models.Entry
		// The driver will handle DATETIME -> time.Time conversion
		if err := rows.Scan(&entry.ID, &entry.Expression, &entry.Result, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during history row iteration: %w", err)
	}

	return entries, nil
}
