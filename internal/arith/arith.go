// Package arith provides small arithmetic helpers that validate their operands.
//
// Operands are taken as interface values so that callers feeding raw input
// (CLI arguments, decoded JSON) get a type error instead of a silent zero.
package arith

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotNumeric is returned when an operand is not an integer or float.
	ErrNotNumeric = errors.New("not a number")

	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("cannot divide by zero")

	// ErrEmptyInput is returned by Average for an empty sequence.
	ErrEmptyInput = errors.New("list cannot be empty")
)

// Multiply returns a * b.
func Multiply(a, b any) (float64, error) {
	x, okA := toFloat(a)
	y, okB := toFloat(b)
	if !okA || !okB {
		return 0, fmt.Errorf("%w: both a and b must be ints or floats", ErrNotNumeric)
	}
	return x * y, nil
}

// Divide returns a / b.
// A zero divisor is reported before operand types are checked, so
// Divide("x", 0) fails with ErrDivisionByZero.
func Divide(a, b any) (float64, error) {
	if y, ok := toFloat(b); ok && y == 0 {
		return 0, ErrDivisionByZero
	}
	x, okA := toFloat(a)
	y, okB := toFloat(b)
	if !okA || !okB {
		return 0, fmt.Errorf("%w: both a and b must be ints or floats", ErrNotNumeric)
	}
	return x / y, nil
}

// Average returns the arithmetic mean of numbers.
// Element types are checked first; an empty slice has no elements to reject
// and so always yields ErrEmptyInput.
func Average(numbers []any) (float64, error) {
	var sum float64
	for i, n := range numbers {
		f, ok := toFloat(n)
		if !ok {
			return 0, fmt.Errorf("%w: element %d (%v) must be an int or float", ErrNotNumeric, i, n)
		}
		sum += f
	}
	if len(numbers) == 0 {
		return 0, ErrEmptyInput
	}
	return sum / float64(len(numbers)), nil
}

// toFloat converts any integer or float kind to float64.
// Bools, strings and nil are rejected.
func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
