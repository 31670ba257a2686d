package todo

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Repository is ordered storage for tasks.
// Index arguments are positions in insertion order; implementations return
// an error wrapping ErrSelectionOutOfRange for positions that do not exist.
type Repository interface {
	Append(t Task) error
	Get(i int) (Task, error)
	Update(i int, t Task) error
	RemoveAt(i int) (Task, error)
	All() ([]Task, error)
	Len() (int, error)
}

// Controller is what a presentation layer calls in response to user input.
type Controller interface {
	OnAdd(text string, categories CategorySet) error
	OnDelete(sel Selection) error
	OnMarkComplete(sel Selection) (MarkResult, error)
}

// EntryForm is the state of one "add task" dialog.
type EntryForm struct {
	Text       string
	Categories CategorySet
}

// Validate checks the form and returns the chosen category and trimmed text.
// The first failing rule wins: empty text, then no category, then more than one.
func (f EntryForm) Validate() (Category, string, error) {
	text := strings.TrimSpace(f.Text)
	if text == "" {
		return 0, "", ErrEmptyText
	}
	selected := f.Categories.Selected()
	if len(selected) == 0 {
		return 0, "", ErrNoCategory
	}
	if len(selected) > 1 {
		return 0, "", ErrMultipleCategories
	}
	return selected[0], text, nil
}

// List is the task list controller.
type List struct {
	repo Repository
	log  logrus.FieldLogger
	now  func() time.Time
}

// NewList creates a list over repo. A nil logger discards output.
func NewList(repo Repository, log logrus.FieldLogger) *List {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &List{repo: repo, log: log, now: time.Now}
}

// Add validates the form and appends a new open task.
func (l *List) Add(form EntryForm) (Task, error) {
	category, text, err := form.Validate()
	if err != nil {
		l.log.WithError(err).Info("task rejected")
		return Task{}, err
	}

	t := NewTask(category, text, l.now())
	if err := l.repo.Append(t); err != nil {
		return Task{}, fmt.Errorf("appending task: %w", err)
	}

	l.log.WithFields(logrus.Fields{"id": t.ID, "category": t.Category.String()}).Debug("task added")
	return t, nil
}

// Delete removes the selected task and returns it.
func (l *List) Delete(sel Selection) (Task, error) {
	i, err := l.resolve(sel)
	if err != nil {
		l.log.WithError(err).Info("delete rejected")
		return Task{}, err
	}

	t, err := l.repo.RemoveAt(i)
	if err != nil {
		return Task{}, fmt.Errorf("removing task: %w", err)
	}

	l.log.WithFields(logrus.Fields{"id": t.ID, "index": i}).Debug("task deleted")
	return t, nil
}

// MarkComplete marks the selected task completed.
// Marking a completed task again changes nothing and reports AlreadyCompleted.
func (l *List) MarkComplete(sel Selection) (MarkResult, error) {
	i, err := l.resolve(sel)
	if err != nil {
		l.log.WithError(err).Info("mark rejected")
		return 0, err
	}

	t, err := l.repo.Get(i)
	if err != nil {
		return 0, fmt.Errorf("loading task: %w", err)
	}
	if t.Completed {
		return AlreadyCompleted, nil
	}

	t.Completed = true
	if err := l.repo.Update(i, t); err != nil {
		return 0, fmt.Errorf("updating task: %w", err)
	}

	l.log.WithFields(logrus.Fields{"id": t.ID, "index": i}).Debug("task completed")
	return Marked, nil
}

// Tasks returns the list in insertion order.
func (l *List) Tasks() ([]Task, error) {
	return l.repo.All()
}

// Len returns the number of tasks.
func (l *List) Len() (int, error) {
	return l.repo.Len()
}

// OnAdd implements Controller.
func (l *List) OnAdd(text string, categories CategorySet) error {
	_, err := l.Add(EntryForm{Text: text, Categories: categories})
	return err
}

// OnDelete implements Controller.
func (l *List) OnDelete(sel Selection) error {
	_, err := l.Delete(sel)
	return err
}

// OnMarkComplete implements Controller.
func (l *List) OnMarkComplete(sel Selection) (MarkResult, error) {
	return l.MarkComplete(sel)
}

// resolve turns a selection into a valid index.
func (l *List) resolve(sel Selection) (int, error) {
	i, ok := sel.Index()
	if !ok {
		return 0, ErrNoSelection
	}
	n, err := l.repo.Len()
	if err != nil {
		return 0, fmt.Errorf("counting tasks: %w", err)
	}
	if i >= n {
		return 0, fmt.Errorf("%w: index %d of %d", ErrSelectionOutOfRange, i, n)
	}
	return i, nil
}

var _ Controller = (*List)(nil)
