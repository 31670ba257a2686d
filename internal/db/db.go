package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pdxmph/todo-tui/internal/tasks"
	"github.com/pdxmph/todo-tui/internal/todo"
)

// BackendName is the name the sqlite backend registers under
const BackendName = "sqlite"

// DB is a session task store on a private in-memory sqlite database.
// Everything is lost when it is closed.
type DB struct {
	conn *sql.DB
}

// Open creates a fresh in-memory database with the task schema
func Open() (*DB, error) {
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Each connection to :memory: is its own database, so keep exactly one
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := initialize(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &DB{conn: conn}, nil
}

// Name returns the backend identifier
func (db *DB) Name() string {
	return BackendName
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Append inserts a task at the end of the list
func (db *DB) Append(t todo.Task) error {
	query := `
		INSERT INTO tasks (id, category, text, completed, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := db.conn.Exec(query, t.ID, t.Category.String(), t.Text, t.Completed, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

// Get returns the task at position i
func (db *DB) Get(i int) (todo.Task, error) {
	row, err := db.rowAt(db.conn, i)
	if err != nil {
		return todo.Task{}, err
	}
	return row.toTask()
}

// Update rewrites the task at position i
func (db *DB) Update(i int, t todo.Task) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := db.rowAt(tx, i)
	if err != nil {
		return err
	}

	query := `UPDATE tasks SET category = ?, text = ?, completed = ? WHERE position = ?`
	if _, err := tx.Exec(query, t.Category.String(), t.Text, t.Completed, row.Position); err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	return tx.Commit()
}

// RemoveAt deletes the task at position i and returns it
func (db *DB) RemoveAt(i int) (todo.Task, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return todo.Task{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := db.rowAt(tx, i)
	if err != nil {
		return todo.Task{}, err
	}

	if _, err := tx.Exec(`DELETE FROM tasks WHERE position = ?`, row.Position); err != nil {
		return todo.Task{}, fmt.Errorf("deleting task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return todo.Task{}, fmt.Errorf("committing delete: %w", err)
	}
	return row.toTask()
}

// All returns every task in insertion order
func (db *DB) All() ([]todo.Task, error) {
	rows, err := db.conn.Query(`SELECT ` + taskColumns + ` FROM tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var list []todo.Task
	for rows.Next() {
		row, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t, err := row.toTask()
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}

	return list, rows.Err()
}

// Len returns the number of tasks
func (db *DB) Len() (int, error) {
	var n int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting tasks: %w", err)
	}
	return n, nil
}

// queryRower is satisfied by *sql.DB and *sql.Tx
type queryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// rowAt loads the row at list position i
func (db *DB) rowAt(q queryRower, i int) (taskRow, error) {
	if i < 0 {
		return taskRow{}, fmt.Errorf("%w: index %d", todo.ErrSelectionOutOfRange, i)
	}

	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY position LIMIT 1 OFFSET ?`
	row, err := scanTask(q.QueryRow(query, i))
	if errors.Is(err, sql.ErrNoRows) {
		return taskRow{}, fmt.Errorf("%w: index %d", todo.ErrSelectionOutOfRange, i)
	}
	if err != nil {
		return taskRow{}, fmt.Errorf("loading task %d: %w", i, err)
	}
	return row, nil
}

// Register the sqlite backend
func init() {
	tasks.Register(BackendName, func() (tasks.Backend, error) {
		db, err := Open()
		if err != nil {
			return nil, err
		}
		return db, nil
	})
}

var _ tasks.Backend = (*DB)(nil)
