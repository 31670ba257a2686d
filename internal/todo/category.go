package todo

import (
	"fmt"
	"strings"
)

// Category is the fixed label every task carries.
type Category int

const (
	Work Category = iota
	Housework
	Else
)

// Categories lists every category in display order.
var Categories = []Category{Work, Housework, Else}

func (c Category) String() string {
	switch c {
	case Work:
		return "Work"
	case Housework:
		return "Housework"
	case Else:
		return "Else"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	return c >= Work && c <= Else
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(s), c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// CategorySet holds the state of the three category checkboxes.
// Any combination may be on at once; validation happens on Add.
type CategorySet uint8

// NewCategorySet returns a set with the given categories ticked.
func NewCategorySet(cs ...Category) CategorySet {
	var s CategorySet
	for _, c := range cs {
		s = s.With(c)
	}
	return s
}

// Has reports whether c is ticked.
func (s CategorySet) Has(c Category) bool {
	return c.Valid() && s&(1<<uint(c)) != 0
}

// With returns s with c ticked.
func (s CategorySet) With(c Category) CategorySet {
	if !c.Valid() {
		return s
	}
	return s | 1<<uint(c)
}

// Toggle flips the checkbox for c.
func (s CategorySet) Toggle(c Category) CategorySet {
	if !c.Valid() {
		return s
	}
	return s ^ 1<<uint(c)
}

// Len returns how many categories are ticked.
func (s CategorySet) Len() int {
	n := 0
	for _, c := range Categories {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Selected returns the ticked categories in display order.
func (s CategorySet) Selected() []Category {
	var out []Category
	for _, c := range Categories {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
