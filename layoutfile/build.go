package layoutfile

import (
	"fmt"

	"github.com/daler-sz/adaptix/crown"
)

// Build validates the file and constructs the name layout and field
// list the extraction compiler consumes.
func (f *File) Build() (crown.NameLayout, []crown.Field, error) {
	diags := f.Validate()
	if err := diags.Error(); err != nil {
		return crown.NameLayout{}, nil, fmt.Errorf("invalid layout file: %w", err)
	}

	fields := make([]crown.Field, 0, len(f.Fields))

	var targets []string

	for _, fd := range f.Fields {
		fields = append(fields, crown.Field{ID: fd.ID, Required: !fd.Optional})

		if fd.ExtraTarget {
			targets = append(targets, fd.ID)
		}
	}

	layout := crown.NameLayout{Crown: buildNode(f.Crown)}
	if len(targets) > 0 {
		layout.Extra = crown.ExtraTargets{Fields: targets}
	}

	return layout, fields, nil
}

func buildNode(n NodeDef) crown.Crown {
	switch {
	case n.Dict != nil:
		d := &crown.DictCrown{Extra: parsePolicy(n.Dict.Extra)}
		for _, entry := range n.Dict.Keys {
			d.Map = append(d.Map, crown.DictEntry{
				Key:   entry.Key,
				Child: buildNode(entry.Node),
			})
		}

		return d

	case n.List != nil:
		l := &crown.ListCrown{Extra: parsePolicy(n.List.Extra)}
		for _, item := range n.List.Items {
			l.Items = append(l.Items, buildNode(item))
		}

		return l

	case n.Field != "":
		return crown.FieldCrown{ID: n.Field}
	}

	return crown.NoneCrown{}
}

// parsePolicy maps a policy string to its enum value. Validate has
// already rejected anything outside this set; the empty string means
// the default.
func parsePolicy(s string) crown.ExtraPolicy {
	switch s {
	case "forbid":
		return crown.ExtraForbid
	case "collect":
		return crown.ExtraCollect
	}

	return crown.ExtraIgnore
}
