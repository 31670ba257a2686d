package todo_test

import (
	"strings"
	"testing"

	"github.com/pdxmph/todo-tui/internal/tasks"
	"github.com/pdxmph/todo-tui/internal/todo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(t *testing.T) *todo.List {
	t.Helper()
	return todo.NewList(tasks.NewMemoryBackend(), nil)
}

// rendered returns the display form of every task.
func rendered(t *testing.T, l *todo.List) []string {
	t.Helper()
	all, err := l.Tasks()
	require.NoError(t, err)
	out := make([]string, 0, len(all))
	for _, task := range all {
		out = append(out, task.String())
	}
	return out
}

func length(t *testing.T, l *todo.List) int {
	t.Helper()
	n, err := l.Len()
	require.NoError(t, err)
	return n
}

func TestAdd_Valid(t *testing.T) {
	l := newList(t)

	task, err := l.Add(todo.EntryForm{Text: "Complete assignment", Categories: todo.NewCategorySet(todo.Work)})
	require.NoError(t, err)

	assert.Equal(t, "[Work] Complete assignment", task.String())
	assert.False(t, task.Completed)
	assert.True(t, strings.HasPrefix(task.ID, "t_"))
	assert.False(t, task.CreatedAt.IsZero())
	assert.Equal(t, []string{"[Work] Complete assignment"}, rendered(t, l))
}

func TestAdd_TrimsText(t *testing.T) {
	l := newList(t)

	task, err := l.Add(todo.EntryForm{Text: "  \n Buy milk \t", Categories: todo.NewCategorySet(todo.Housework)})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Text)
}

func TestAdd_AllCategories(t *testing.T) {
	tests := []struct {
		category todo.Category
		text     string
		want     string
	}{
		{todo.Work, "Task 1", "[Work] Task 1"},
		{todo.Housework, "Clean kitchen", "[Housework] Clean kitchen"},
		{todo.Else, "Call mom", "[Else] Call mom"},
	}
	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			l := newList(t)
			task, err := l.Add(todo.EntryForm{Text: tt.text, Categories: todo.NewCategorySet(tt.category)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, task.String())
		})
	}
}

func TestAdd_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		categories todo.CategorySet
		want       error
	}{
		{"empty text", "", todo.NewCategorySet(todo.Work), todo.ErrEmptyText},
		{"whitespace text", "   \t\n", todo.NewCategorySet(todo.Work), todo.ErrEmptyText},
		{"empty text wins over no category", "", 0, todo.ErrEmptyText},
		{"no category", "Task", 0, todo.ErrNoCategory},
		{"two categories", "Task", todo.NewCategorySet(todo.Work, todo.Housework), todo.ErrMultipleCategories},
		{"three categories", "Task", todo.NewCategorySet(todo.Categories...), todo.ErrMultipleCategories},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newList(t)
			_, err := l.Add(todo.EntryForm{Text: "keep", Categories: todo.NewCategorySet(todo.Else)})
			require.NoError(t, err)

			_, err = l.Add(todo.EntryForm{Text: tt.text, Categories: tt.categories})
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, todo.KindInput, todo.Classify(err))
			assert.Equal(t, 1, length(t, l), "rejected add must not change the list")
		})
	}
}

func TestAdd_DuplicatesAllowed(t *testing.T) {
	l := newList(t)
	form := todo.EntryForm{Text: "Water plants", Categories: todo.NewCategorySet(todo.Housework)}

	a, err := l.Add(form)
	require.NoError(t, err)
	b, err := l.Add(form)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, []string{"[Housework] Water plants", "[Housework] Water plants"}, rendered(t, l))
}

func TestDelete(t *testing.T) {
	l := newList(t)
	for _, text := range []string{"one", "two", "three"} {
		require.NoError(t, l.OnAdd(text, todo.NewCategorySet(todo.Work)))
	}

	removed, err := l.Delete(todo.Select(1))
	require.NoError(t, err)
	assert.Equal(t, "two", removed.Text)
	assert.Equal(t, []string{"[Work] one", "[Work] three"}, rendered(t, l))
}

func TestDelete_NoSelection(t *testing.T) {
	l := newList(t)
	require.NoError(t, l.OnAdd("one", todo.NewCategorySet(todo.Work)))

	err := l.OnDelete(todo.NoSelection)
	assert.ErrorIs(t, err, todo.ErrNoSelection)
	assert.Equal(t, todo.KindSelection, todo.Classify(err))
	assert.Equal(t, 1, length(t, l))
}

func TestDelete_OutOfRange(t *testing.T) {
	l := newList(t)

	err := l.OnDelete(todo.Select(0))
	assert.ErrorIs(t, err, todo.ErrSelectionOutOfRange)
	assert.Equal(t, todo.KindSelection, todo.Classify(err))
}

func TestMarkComplete(t *testing.T) {
	l := newList(t)
	require.NoError(t, l.OnAdd("Buy groceries", todo.NewCategorySet(todo.Work)))

	res, err := l.MarkComplete(todo.Select(0))
	require.NoError(t, err)
	assert.Equal(t, todo.Marked, res)
	assert.Equal(t, []string{"[Work] Buy groceries ✔"}, rendered(t, l))

	res, err = l.MarkComplete(todo.Select(0))
	require.NoError(t, err)
	assert.Equal(t, todo.AlreadyCompleted, res)
	assert.Equal(t, []string{"[Work] Buy groceries ✔"}, rendered(t, l), "second mark must not double-mark")
}

func TestMarkComplete_NoSelection(t *testing.T) {
	l := newList(t)
	require.NoError(t, l.OnAdd("one", todo.NewCategorySet(todo.Work)))

	_, err := l.OnMarkComplete(todo.NoSelection)
	assert.ErrorIs(t, err, todo.ErrNoSelection)
	assert.Equal(t, []string{"[Work] one"}, rendered(t, l))
}

func TestMarkComplete_OnlyTargetChanges(t *testing.T) {
	l := newList(t)
	require.NoError(t, l.OnAdd("a", todo.NewCategorySet(todo.Work)))
	require.NoError(t, l.OnAdd("b", todo.NewCategorySet(todo.Else)))

	_, err := l.OnMarkComplete(todo.Select(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"[Work] a", "[Else] b ✔"}, rendered(t, l))
}

func TestWorkflow(t *testing.T) {
	l := newList(t)

	require.NoError(t, l.OnAdd("Buy milk", todo.NewCategorySet(todo.Work)))
	assert.Equal(t, []string{"[Work] Buy milk"}, rendered(t, l))

	res, err := l.OnMarkComplete(todo.Select(0))
	require.NoError(t, err)
	assert.Equal(t, todo.Marked, res)
	assert.Equal(t, []string{"[Work] Buy milk ✔"}, rendered(t, l))

	res, err = l.OnMarkComplete(todo.Select(0))
	require.NoError(t, err)
	assert.Equal(t, todo.AlreadyCompleted, res)
	assert.Equal(t, []string{"[Work] Buy milk ✔"}, rendered(t, l))

	require.NoError(t, l.OnDelete(todo.Select(0)))
	assert.Empty(t, rendered(t, l))
}

func TestClassify_Unexpected(t *testing.T) {
	assert.Equal(t, todo.KindUnexpected, todo.Classify(assert.AnError))
}
