package db

import (
	"fmt"
	"time"

	"github.com/pdxmph/todo-tui/internal/todo"
)

// taskRow is a tasks table row as stored
type taskRow struct {
	Position  int64
	ID        string
	Category  string
	Text      string
	Completed bool
	CreatedAt time.Time
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

const taskColumns = `position, id, category, text, completed, created_at`

func scanTask(s scanner) (taskRow, error) {
	var r taskRow
	err := s.Scan(&r.Position, &r.ID, &r.Category, &r.Text, &r.Completed, &r.CreatedAt)
	return r, err
}

// toTask converts a row to a todo.Task
func (r taskRow) toTask() (todo.Task, error) {
	category, err := todo.ParseCategory(r.Category)
	if err != nil {
		return todo.Task{}, fmt.Errorf("task %s: %w", r.ID, err)
	}
	return todo.Task{
		ID:        r.ID,
		Category:  category,
		Text:      r.Text,
		Completed: r.Completed,
		CreatedAt: r.CreatedAt,
	}, nil
}
