package tasks

import (
	"fmt"

	"github.com/pdxmph/todo-tui/internal/todo"
)

type fixture struct {
	category  todo.Category
	text      string
	completed bool
}

// fixtures is the sample list shown with --demo.
var fixtures = []fixture{
	{todo.Work, "Finish quarterly report", false},
	{todo.Housework, "Clean kitchen", false},
	{todo.Else, "Call mom", false},
	{todo.Work, "Complete assignment", true},
	{todo.Housework, "Water the plants", false},
}

// Seed adds the sample tasks to list through the normal add path.
func Seed(list *todo.List) error {
	for _, f := range fixtures {
		if err := list.OnAdd(f.text, todo.NewCategorySet(f.category)); err != nil {
			return fmt.Errorf("adding fixture %q: %w", f.text, err)
		}
		if !f.completed {
			continue
		}
		n, err := list.Len()
		if err != nil {
			return fmt.Errorf("counting fixtures: %w", err)
		}
		if _, err := list.OnMarkComplete(todo.Select(n - 1)); err != nil {
			return fmt.Errorf("completing fixture %q: %w", f.text, err)
		}
	}
	return nil
}
