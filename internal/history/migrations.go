package history

import "database/sql"

// schema contains the SQL statements to set up the database.
// These run on startup to ensure the table exists.
const schema = `
CREATE TABLE IF NOT EXISTS calculations (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    use_types TEXT NOT NULL,
    required_spaces INTEGER NOT NULL,
    ada_spaces INTEGER NOT NULL,
    result TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations(created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
