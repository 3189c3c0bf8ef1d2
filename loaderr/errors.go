package loaderr

import (
	"fmt"
	"strings"

	"github.com/daler-sz/adaptix/internal/common"
)

// Shape names the container kind a position was declared to be.
type Shape int

const (
	ShapeDict Shape = iota
	ShapeList
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeDict:
		return "dict"
	case ShapeList:
		return "list"
	default:
		return common.UnknownStr
	}
}

// MissingFieldsError reports required mapping keys absent from the
// input. It is decorated with the trail of the containing mapping, not
// of the missing keys themselves.
type MissingFieldsError struct {
	Keys []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Keys, ", ")
}

// MissingItemsError reports an input sequence shorter than the declared
// item count.
type MissingItemsError struct {
	Expected int
}

func (e *MissingItemsError) Error() string {
	return fmt.Sprintf("not enough items: %d declared", e.Expected)
}

// WrongTypeError reports an input value that is not the container kind
// its crown position declares.
type WrongTypeError struct {
	Expected Shape
}

func (e *WrongTypeError) Error() string {
	return "value is not a " + e.Expected.String()
}

// ExtraFieldsError reports mapping keys present in the input but not
// declared, under the forbid policy. Keys are sorted.
type ExtraFieldsError struct {
	Keys []string
}

func (e *ExtraFieldsError) Error() string {
	return "unexpected fields: " + strings.Join(e.Keys, ", ")
}

// ExtraItemsError reports an input sequence longer than the declared
// item count, under the forbid policy.
type ExtraItemsError struct {
	Expected int
}

func (e *ExtraItemsError) Error() string {
	return fmt.Sprintf("too many items: %d declared", e.Expected)
}

// FieldError wraps a field loader's own failure. The wrapped error is
// opaque to the extraction machinery and is never reinterpreted.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// AggregateError groups every failure found during one extraction pass
// in collect-all trail mode. Each grouped error carries its own trail.
type AggregateError struct {
	Errs []error
}

func (e *AggregateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d errors while loading model:", len(e.Errs))

	for _, err := range e.Errs {
		b.WriteString("\n  ")
		b.WriteString(err.Error())
	}

	return b.String()
}

// Unwrap exposes the grouped errors to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errs }
