package tasks

import (
	"fmt"

	"github.com/pdxmph/todo-tui/internal/todo"
)

// MemoryBackend keeps tasks in a slice.
type MemoryBackend struct {
	tasks []todo.Task
}

// NewMemoryBackend creates an empty memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Name returns the backend identifier
func (m *MemoryBackend) Name() string {
	return "memory"
}

// Close drops all tasks
func (m *MemoryBackend) Close() error {
	m.tasks = nil
	return nil
}

func (m *MemoryBackend) Append(t todo.Task) error {
	m.tasks = append(m.tasks, t)
	return nil
}

func (m *MemoryBackend) Get(i int) (todo.Task, error) {
	if err := m.check(i); err != nil {
		return todo.Task{}, err
	}
	return m.tasks[i], nil
}

func (m *MemoryBackend) Update(i int, t todo.Task) error {
	if err := m.check(i); err != nil {
		return err
	}
	m.tasks[i] = t
	return nil
}

func (m *MemoryBackend) RemoveAt(i int) (todo.Task, error) {
	if err := m.check(i); err != nil {
		return todo.Task{}, err
	}
	t := m.tasks[i]
	m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
	return t, nil
}

// All returns a copy of the tasks
func (m *MemoryBackend) All() ([]todo.Task, error) {
	out := make([]todo.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *MemoryBackend) Len() (int, error) {
	return len(m.tasks), nil
}

func (m *MemoryBackend) check(i int) error {
	if i < 0 || i >= len(m.tasks) {
		return fmt.Errorf("%w: index %d of %d", todo.ErrSelectionOutOfRange, i, len(m.tasks))
	}
	return nil
}

// Register the memory backend
func init() {
	Register("memory", func() (Backend, error) { return NewMemoryBackend(), nil })
}
