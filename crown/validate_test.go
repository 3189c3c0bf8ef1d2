package crown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOK(t *testing.T) {
	layout := NameLayout{
		Crown: &DictCrown{
			Map: []DictEntry{
				{Key: "x", Child: FieldCrown{ID: "a"}},
				{Key: "tags", Child: &ListCrown{
					Items: []Crown{NoneCrown{}, FieldCrown{ID: "b"}},
				}},
			},
			Extra: ExtraCollect,
		},
		Extra: ExtraTargets{Fields: []string{"rest"}},
	}
	fields := []Field{
		{ID: "a", Required: true},
		{ID: "b", Required: false},
		{ID: "rest", Required: true},
	}

	assert.NoError(t, Validate(layout, fields))
}

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name   string
		layout NameLayout
		fields []Field
		want   string
	}{
		{
			name: "unknown field",
			layout: NameLayout{
				Crown: &DictCrown{
					Map: []DictEntry{{Key: "x", Child: FieldCrown{ID: "ghost"}}},
				},
			},
			want: `unknown field "ghost"`,
		},
		{
			name: "double reference",
			layout: NameLayout{
				Crown: &DictCrown{
					Map: []DictEntry{
						{Key: "x", Child: FieldCrown{ID: "a"}},
						{Key: "y", Child: FieldCrown{ID: "a"}},
					},
				},
			},
			fields: []Field{{ID: "a", Required: true}},
			want:   `field "a" referenced by 2 field crowns`,
		},
		{
			name: "target in crown",
			layout: NameLayout{
				Crown: &DictCrown{
					Map:   []DictEntry{{Key: "x", Child: FieldCrown{ID: "rest"}}},
					Extra: ExtraCollect,
				},
				Extra: ExtraTargets{Fields: []string{"rest"}},
			},
			fields: []Field{{ID: "rest", Required: true}},
			want:   `extra target "rest" must not appear in the crown`,
		},
		{
			name: "undeclared target",
			layout: NameLayout{
				Crown: &DictCrown{Extra: ExtraCollect},
				Extra: ExtraTargets{Fields: []string{"rest"}},
			},
			want: `extra target "rest" is not a declared field`,
		},
		{
			name: "unreferenced field",
			layout: NameLayout{
				Crown: &DictCrown{},
			},
			fields: []Field{{ID: "a", Required: true}},
			want:   `field "a" is not referenced by any field crown`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.layout, tt.fields)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateDuplicateField(t *testing.T) {
	layout := NameLayout{
		Crown: &DictCrown{
			Map: []DictEntry{{Key: "x", Child: FieldCrown{ID: "a"}}},
		},
	}
	fields := []Field{
		{ID: "a", Required: true},
		{ID: "a", Required: false},
	}

	err := Validate(layout, fields)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate field id "a"`)
}

func TestDictCrownKeys(t *testing.T) {
	d := &DictCrown{
		Map: []DictEntry{
			{Key: "z", Child: NoneCrown{}},
			{Key: "a", Child: NoneCrown{}},
			{Key: "m", Child: NoneCrown{}},
		},
	}

	// Declaration order, not sorted.
	assert.Equal(t, []string{"z", "a", "m"}, d.Keys())
}

func TestIsExtraTarget(t *testing.T) {
	layout := NameLayout{
		Crown: &DictCrown{Extra: ExtraCollect},
		Extra: ExtraTargets{Fields: []string{"rest", "more"}},
	}

	assert.True(t, layout.IsExtraTarget("rest"))
	assert.True(t, layout.IsExtraTarget("more"))
	assert.False(t, layout.IsExtraTarget("other"))

	assert.False(t, NameLayout{Crown: &DictCrown{}}.IsExtraTarget("rest"))
}
