package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daler-sz/adaptix/crown"
)

func TestCompileContractErrors(t *testing.T) {
	tests := []struct {
		name    string
		layout  crown.NameLayout
		fields  []crown.Field
		loaders map[string]crown.Loader
		want    string
	}{
		{
			name: "undeclared field",
			layout: crown.NameLayout{
				Crown: &crown.DictCrown{
					Map: []crown.DictEntry{
						{Key: "x", Child: crown.FieldCrown{ID: "ghost"}},
					},
				},
			},
			loaders: map[string]crown.Loader{"ghost": crown.AsIs},
			want:    `undeclared field "ghost"`,
		},
		{
			name: "missing loader",
			layout: crown.NameLayout{
				Crown: &crown.DictCrown{
					Map: []crown.DictEntry{
						{Key: "x", Child: crown.FieldCrown{ID: "a"}},
					},
				},
			},
			fields: []crown.Field{{ID: "a", Required: true}},
			want:   `no loader for field "a"`,
		},
		{
			name: "missing target loader",
			layout: crown.NameLayout{
				Crown: &crown.DictCrown{Extra: crown.ExtraCollect},
				Extra: crown.ExtraTargets{Fields: []string{"rest"}},
			},
			fields: []crown.Field{{ID: "rest", Required: true}},
			want:   `no loader for field "rest"`,
		},
		{
			name: "leaf root",
			layout: crown.NameLayout{
				Crown: crown.FieldCrown{ID: "a"},
			},
			fields:  []crown.Field{{ID: "a", Required: true}},
			loaders: map[string]crown.Loader{"a": crown.AsIs},
			want:    "root crown must be a dict or list crown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCompiler(DefaultConfig()).Compile(tt.layout, tt.fields, tt.loaders)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFieldPaths(t *testing.T) {
	layout := crown.NameLayout{
		Crown: &crown.DictCrown{
			Map: []crown.DictEntry{
				{Key: "x", Child: crown.FieldCrown{ID: "f1"}},
				{Key: "tags", Child: &crown.ListCrown{
					Items: []crown.Crown{
						crown.NoneCrown{},
						crown.FieldCrown{ID: "f2"},
					},
				}},
			},
		},
	}
	fields := []crown.Field{
		{ID: "f1", Required: true},
		{ID: "f2", Required: true},
	}
	loaders := map[string]crown.Loader{"f1": crown.AsIs, "f2": crown.AsIs}

	proc := mustCompile(t, DefaultConfig(), layout, fields, loaders)

	assert.Equal(t, map[string]string{
		"f1": "$.x",
		"f2": "$.tags[1]",
	}, proc.FieldPaths())
}

func TestDisassemble(t *testing.T) {
	layout := crown.NameLayout{
		Crown: &crown.DictCrown{
			Map: []crown.DictEntry{
				{Key: "x", Child: crown.FieldCrown{ID: "f1"}},
				{Key: "y", Child: &crown.DictCrown{
					Map: []crown.DictEntry{
						{Key: "z", Child: crown.FieldCrown{ID: "f2"}},
					},
					Extra: crown.ExtraForbid,
				}},
			},
			Extra: crown.ExtraCollect,
		},
		Extra: crown.ExtraTargets{Fields: []string{"rest"}},
	}
	fields := []crown.Field{
		{ID: "f1", Required: true},
		{ID: "f2", Required: false},
		{ID: "rest", Required: true},
	}
	loaders := map[string]crown.Loader{
		"f1":   double,
		"f2":   crown.AsIs,
		"rest": crown.AsIs,
	}

	proc := mustCompile(t, DefaultConfig(), layout, fields, loaders)

	dump := proc.Disassemble()
	t.Log("\n" + dump)

	assert.Contains(t, dump, "trail=all, strict=true")
	assert.Contains(t, dump, "f1 <- $.x")
	assert.Contains(t, dump, "f2 <- $.y.z")
	assert.Contains(t, dump, "opCheckDict")
	assert.Contains(t, dump, "opForbidKeys")
	assert.Contains(t, dump, "opCollectKeys")
	assert.Contains(t, dump, "opExtraTarget")
	assert.Contains(t, dump, "optional")
	assert.Contains(t, dump, "as-is")
	assert.Contains(t, dump, "skip=")
	assert.Contains(t, dump, "@$.y")
}

func TestCompileDeterministic(t *testing.T) {
	layout := crown.NameLayout{
		Crown: &crown.DictCrown{
			Map: []crown.DictEntry{
				{Key: "b", Child: crown.FieldCrown{ID: "fb"}},
				{Key: "a", Child: crown.FieldCrown{ID: "fa"}},
				{Key: "c", Child: &crown.DictCrown{Extra: crown.ExtraForbid}},
			},
			Extra: crown.ExtraForbid,
		},
	}
	fields := []crown.Field{
		{ID: "fa", Required: true},
		{ID: "fb", Required: true},
	}
	loaders := map[string]crown.Loader{"fa": crown.AsIs, "fb": crown.AsIs}

	first := mustCompile(t, DefaultConfig(), layout, fields, loaders)
	second := mustCompile(t, DefaultConfig(), layout, fields, loaders)

	assert.Equal(t, first.Disassemble(), second.Disassemble())
}

func TestCompilerReuse(t *testing.T) {
	c := NewCompiler(Config{DebugTrail: DebugTrailFirst, StrictCoercion: true})

	for _, key := range []string{"one", "two"} {
		layout := crown.NameLayout{
			Crown: &crown.DictCrown{
				Map: []crown.DictEntry{
					{Key: key, Child: crown.FieldCrown{ID: "f"}},
				},
			},
		}

		proc, err := c.Compile(layout,
			[]crown.Field{{ID: "f", Required: true}},
			map[string]crown.Loader{"f": crown.AsIs})
		require.NoError(t, err)

		out, err := proc.Extract(map[string]any{key: key})
		require.NoError(t, err)
		assert.Equal(t, key, out["f"])
	}
}
