package db

import (
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
    position INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    category TEXT CHECK (category IN ('Work', 'Housework', 'Else')) NOT NULL,
    text TEXT NOT NULL CHECK (length(trim(text)) > 0),
    completed BOOLEAN NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Completed tasks can never be reopened
CREATE TRIGGER IF NOT EXISTS keep_tasks_completed
BEFORE UPDATE OF completed ON tasks
WHEN OLD.completed = 1 AND NEW.completed = 0
BEGIN
    SELECT RAISE(ABORT, 'completed task cannot be reopened');
END;`

// initialize creates the schema on a fresh connection
func initialize(conn *sql.DB) error {
	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
