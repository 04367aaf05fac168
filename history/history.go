package history

import (
	"context"
	"fmt"

	"calc/db"
	"calc/models"
)

// Config holds the configuration for a history listing.
type Config struct {
	DBName string
	Term   string
	Limit  int
}

// Run returns recent history entries, filtered by Term when set.
func Run(ctx context.Context, config *Config) ([]models.Entry, error) {
	dbConn, err := db.SetupDatabase(config.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbConn.Close()

	if config.Term != "" {
		entries, err := db.SearchEntries(dbConn, config.Term, config.Limit)
		if err != nil {
			return nil, fmt.Errorf("error searching history: %w", err)
		}
		return entries, nil
	}

	entries, err := db.GetEntries(dbConn, config.Limit)
	if err != nil {
		return nil, fmt.Errorf("error listing history: %w", err)
	}
	return entries, nil
}

// Clear deletes every history entry.
func Clear(ctx context.Context, dbName string) error {
	dbConn, err := db.SetupDatabase(dbName)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbConn.Close()

	if err := db.ClearEntries(dbConn); err != nil {
		return fmt.Errorf("error clearing history: %w", err)
	}
	return nil
}
