package todo

import (
	"time"

	"github.com/google/uuid"
)

// CompletedMark is appended to the display form of a completed task.
const CompletedMark = " ✔"

// Task is a single to-do entry.
type Task struct {
	ID        string
	Category  Category
	Text      string
	Completed bool
	CreatedAt time.Time
}

// NewTask creates an open task with a fresh ID.
func NewTask(category Category, text string, now time.Time) Task {
	return Task{
		ID:        "t_" + uuid.New().String(),
		Category:  category,
		Text:      text,
		CreatedAt: now,
	}
}

// String renders the task as "[Category] text", plus the mark when completed.
func (t Task) String() string {
	s := "[" + t.Category.String() + "] " + t.Text
	if t.Completed {
		s += CompletedMark
	}
	return s
}

// Selection is an index into the task list, or NoSelection.
type Selection int

// NoSelection means no task is highlighted.
const NoSelection Selection = -1

// Select returns the selection for index i. Negative values mean none.
func Select(i int) Selection {
	if i < 0 {
		return NoSelection
	}
	return Selection(i)
}

// Index returns the selected index and whether anything is selected.
func (s Selection) Index() (int, bool) {
	if s < 0 {
		return 0, false
	}
	return int(s), true
}

// MarkResult tells whether MarkComplete changed anything.
type MarkResult int

const (
	// Marked means the task moved from open to completed.
	Marked MarkResult = iota + 1
	// AlreadyCompleted means the task was completed before the call.
	AlreadyCompleted
)

func (r MarkResult) String() string {
	switch r {
	case Marked:
		return "marked"
	case AlreadyCompleted:
		return "already completed"
	default:
		return "unknown"
	}
}
