package todo

import "errors"

// Input validation errors.
var (
	ErrEmptyText          = errors.New("please enter some text")
	ErrNoCategory         = errors.New("please select at least one category")
	ErrMultipleCategories = errors.New("please select only one category")
)

// Selection errors.
var (
	ErrNoSelection         = errors.New("no task selected")
	ErrSelectionOutOfRange = errors.New("selected task does not exist")
)

// Kind classifies an error for presentation.
type Kind int

const (
	KindUnexpected Kind = iota
	KindInput
	KindSelection
)

// Classify reports which class err belongs to.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, ErrEmptyText),
		errors.Is(err, ErrNoCategory),
		errors.Is(err, ErrMultipleCategories):
		return KindInput
	case errors.Is(err, ErrNoSelection),
		errors.Is(err, ErrSelectionOutOfRange):
		return KindSelection
	default:
		return KindUnexpected
	}
}
