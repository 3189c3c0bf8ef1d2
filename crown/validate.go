package crown

import (
	"errors"
	"fmt"
)

// Validate checks the structural invariants of a layout against its
// field list:
//
//   - every FieldCrown references a declared field,
//   - every non-target field is referenced by exactly one FieldCrown,
//   - extra-target fields never appear in the crown (they receive the
//     collected overflow instead of a positional value),
//   - every extra target names a declared field.
//
// All violations found are reported in one joined error.
func Validate(layout NameLayout, fields []Field) error {
	byID := make(map[string]Field, len(fields))
	for _, field := range fields {
		if _, dup := byID[field.ID]; dup {
			return fmt.Errorf("duplicate field id %q", field.ID)
		}

		byID[field.ID] = field
	}

	refs := map[string]int{}
	countRefs(layout.Crown, refs)

	var errs []error

	for id, n := range refs {
		if _, ok := byID[id]; !ok {
			errs = append(errs, fmt.Errorf("crown references unknown field %q", id))
		}

		if n > 1 {
			errs = append(errs, fmt.Errorf("field %q referenced by %d field crowns", id, n))
		}

		if layout.IsExtraTarget(id) {
			errs = append(errs, fmt.Errorf("extra target %q must not appear in the crown", id))
		}
	}

	if targets, ok := layout.Extra.(ExtraTargets); ok {
		for _, id := range targets.Fields {
			if _, ok := byID[id]; !ok {
				errs = append(errs, fmt.Errorf("extra target %q is not a declared field", id))
			}
		}
	}

	for _, field := range fields {
		if layout.IsExtraTarget(field.ID) {
			continue
		}

		if refs[field.ID] == 0 {
			errs = append(errs, fmt.Errorf("field %q is not referenced by any field crown", field.ID))
		}
	}

	return errors.Join(errs...)
}

func countRefs(c Crown, refs map[string]int) {
	switch node := c.(type) {
	case *DictCrown:
		for _, entry := range node.Map {
			countRefs(entry.Child, refs)
		}
	case *ListCrown:
		for _, item := range node.Items {
			countRefs(item, refs)
		}
	case FieldCrown:
		refs[node.ID]++
	case *FieldCrown:
		refs[node.ID]++
	}
}
