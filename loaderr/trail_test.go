package loaderr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailString(t *testing.T) {
	tests := []struct {
		name  string
		trail Trail
		want  string
	}{
		{
			name:  "root",
			trail: nil,
			want:  "$",
		},
		{
			name:  "single key",
			trail: Trail{KeyElem("key")},
			want:  "$.key",
		},
		{
			name:  "single index",
			trail: Trail{IndexElem(2)},
			want:  "$[2]",
		},
		{
			name:  "mixed",
			trail: Trail{KeyElem("a"), IndexElem(1), KeyElem("b")},
			want:  "$.a[1].b",
		},
		{
			name:  "key with dot",
			trail: Trail{KeyElem("a.b")},
			want:  "$.'a.b'",
		},
		{
			name:  "key with space",
			trail: Trail{KeyElem("a b")},
			want:  "$.'a b'",
		},
		{
			name:  "key with quote",
			trail: Trail{KeyElem("a'b")},
			want:  `$.'a\'b'`,
		},
		{
			name:  "empty key",
			trail: Trail{KeyElem("")},
			want:  "$.''",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.trail.String())
		})
	}
}

func TestWithTrail(t *testing.T) {
	base := &MissingFieldsError{Keys: []string{"x"}}

	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, WithTrail(nil, Trail{KeyElem("a")}))
	})

	t.Run("empty trail attaches nothing", func(t *testing.T) {
		err := WithTrail(base, nil)
		assert.Same(t, error(base), err)
		assert.Nil(t, TrailOf(err))
	})

	t.Run("decorates", func(t *testing.T) {
		err := WithTrail(base, Trail{KeyElem("a"), IndexElem(3)})
		assert.EqualError(t, err, "at $.a[3]: missing required fields: x")

		var inner *MissingFieldsError
		require.ErrorAs(t, err, &inner)
		assert.Equal(t, []string{"x"}, inner.Keys)
	})

	t.Run("prepends on redecoration", func(t *testing.T) {
		err := WithTrail(base, Trail{KeyElem("inner")})
		err = WithTrail(err, Trail{KeyElem("outer"), IndexElem(0)})

		assert.Equal(t, "$.outer[0].inner", TrailOf(err).String())

		var inner *MissingFieldsError
		require.ErrorAs(t, err, &inner)
	})
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing fields",
			err:  &MissingFieldsError{Keys: []string{"a", "b"}},
			want: "missing required fields: a, b",
		},
		{
			name: "missing items",
			err:  &MissingItemsError{Expected: 3},
			want: "not enough items: 3 declared",
		},
		{
			name: "wrong type dict",
			err:  &WrongTypeError{Expected: ShapeDict},
			want: "value is not a dict",
		},
		{
			name: "wrong type list",
			err:  &WrongTypeError{Expected: ShapeList},
			want: "value is not a list",
		},
		{
			name: "extra fields",
			err:  &ExtraFieldsError{Keys: []string{"v", "w"}},
			want: "unexpected fields: v, w",
		},
		{
			name: "extra items",
			err:  &ExtraItemsError{Expected: 2},
			want: "too many items: 2 declared",
		},
		{
			name: "field error",
			err:  &FieldError{Field: "price", Err: errors.New("boom")},
			want: `field "price": boom`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestAggregateError(t *testing.T) {
	inner := &FieldError{Field: "f", Err: errors.New("boom")}
	agg := &AggregateError{Errs: []error{
		WithTrail(inner, Trail{KeyElem("f")}),
		&MissingFieldsError{Keys: []string{"g"}},
	}}

	assert.Equal(t,
		"2 errors while loading model:\n  at $.f: field \"f\": boom\n  missing required fields: g",
		agg.Error())

	// errors.As descends into the grouped errors.
	var fieldErr *FieldError
	require.ErrorAs(t, agg, &fieldErr)
	assert.Equal(t, "f", fieldErr.Field)

	var missing *MissingFieldsError
	require.ErrorAs(t, agg, &missing)
}
