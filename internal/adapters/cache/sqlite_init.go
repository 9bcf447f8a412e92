package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the price cache schema. The DDL is shared by the SQLite and
// PostgreSQL backends.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createPriceCacheQuery := `
	CREATE TABLE IF NOT EXISTS price_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        flight_date TEXT NOT NULL,
        min_price REAL NOT NULL,
        direct INTEGER NOT NULL,
        PRIMARY KEY (origin, destination, flight_date)
    );
	`

	if _, err := db.Exec(createPriceCacheQuery); err != nil {
		return fmt.Errorf("init schema: create price_cache: %w", err)
	}

	return nil
}
