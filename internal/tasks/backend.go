package tasks

import "github.com/pdxmph/todo-tui/internal/todo"

// Backend is a named task store for one session.
type Backend interface {
	todo.Repository

	// Name returns the backend identifier (e.g., "memory", "sqlite")
	Name() string

	// Close releases the backend. Tasks held by it are discarded.
	Close() error
}

// BackendFactory is a function that creates a new instance of a Backend
type BackendFactory func() (Backend, error)
