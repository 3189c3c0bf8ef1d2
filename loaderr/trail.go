package loaderr

import (
	"strconv"
	"strings"
)

// Elem is one step of a trail: a mapping key or a sequence index.
type Elem struct {
	Key     string
	Index   int
	IsIndex bool
}

// KeyElem returns a mapping-key trail element.
func KeyElem(key string) Elem { return Elem{Key: key} }

// IndexElem returns a sequence-index trail element.
func IndexElem(idx int) Elem { return Elem{Index: idx, IsIndex: true} }

// Trail is the sequence of keys and indices from the input root to a
// value. The zero-length trail denotes the root itself.
type Trail []Elem

// String renders the trail in $-rooted form: "$", "$.key", "$.a[2].b".
// Keys containing path metacharacters are quoted.
func (t Trail) String() string {
	var b strings.Builder
	b.WriteByte('$')

	for _, e := range t {
		if e.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(e.Index))
			b.WriteByte(']')
			continue
		}

		b.WriteByte('.')
		if strings.IndexAny(e.Key, "'.$[] ") == -1 && e.Key != "" {
			b.WriteString(e.Key)
		} else {
			b.WriteByte('\'')
			b.WriteString(strings.ReplaceAll(e.Key, "'", "\\'"))
			b.WriteByte('\'')
		}
	}

	return b.String()
}

// TrailedError decorates an error with the trail of the failure point.
// The wrapped error keeps its identity: errors.As still matches the
// inner kind.
type TrailedError struct {
	Trail Trail
	Err   error
}

// Error renders the trail before the wrapped message.
func (e *TrailedError) Error() string {
	return "at " + e.Trail.String() + ": " + e.Err.Error()
}

// Unwrap returns the decorated error.
func (e *TrailedError) Unwrap() error { return e.Err }

// WithTrail attaches trail to err. A zero-length trail attaches nothing.
// Decorating an already trailed error prepends the new segments, so an
// error bubbling out of a nested extraction accumulates the outer path
// in front of its own.
func WithTrail(err error, trail Trail) error {
	if err == nil || len(trail) == 0 {
		return err
	}

	if inner, ok := err.(*TrailedError); ok {
		merged := make(Trail, 0, len(trail)+len(inner.Trail))
		merged = append(merged, trail...)
		merged = append(merged, inner.Trail...)

		return &TrailedError{Trail: merged, Err: inner.Err}
	}

	return &TrailedError{Trail: trail, Err: err}
}

// TrailOf returns the trail attached to err, or nil if err carries none.
func TrailOf(err error) Trail {
	if trailed, ok := err.(*TrailedError); ok {
		return trailed.Trail
	}

	return nil
}
