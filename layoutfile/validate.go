package layoutfile

import (
	"fmt"

	"github.com/daler-sz/adaptix/internal/diagnostic"
	"github.com/daler-sz/adaptix/loaderr"
)

// Diagnostic codes reported by Validate.
const (
	CodeUnsupportedVersion = "unsupported-version"
	CodeDuplicateField     = "duplicate-field"
	CodeUnknownField       = "unknown-field"
	CodeDuplicateRef       = "duplicate-ref"
	CodeTargetInCrown      = "target-in-crown"
	CodeUnreferencedField  = "unreferenced-field"
	CodeBadPolicy          = "bad-policy"
	CodeBadRoot            = "bad-root"
	CodeTargetsNoCollect   = "targets-without-collect"
)

// Validate checks the file for structural problems and reports all of
// them at once. A file with error-level diagnostics must not be built.
func (f *File) Validate() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if f.Version != "1" {
		diags.AddError(CodeUnsupportedVersion,
			fmt.Sprintf("unsupported layout version %q", f.Version), "")
	}

	declared := make(map[string]FieldDef, len(f.Fields))
	for _, fd := range f.Fields {
		if _, ok := declared[fd.ID]; ok {
			diags.AddError(CodeDuplicateField,
				fmt.Sprintf("field %q declared more than once", fd.ID), "")
			continue
		}

		declared[fd.ID] = fd
	}

	if f.Crown.Dict == nil && f.Crown.List == nil {
		diags.AddError(CodeBadRoot, "crown root must be a dict or list node", "$")
	}

	refs := make(map[string]int)
	walkNode(f.Crown, nil, &diags, declared, refs)

	for _, fd := range f.Fields {
		if refs[fd.ID] == 0 && !fd.ExtraTarget {
			diags.AddWarning(CodeUnreferencedField,
				fmt.Sprintf("field %q is not referenced by the crown", fd.ID), "")
		}
	}

	if hasTargets(f.Fields) && rootPolicy(f.Crown) != "collect" {
		diags.AddWarning(CodeTargetsNoCollect,
			"extra targets declared but the root node does not collect extras", "$")
	}

	return diags
}

func walkNode(n NodeDef, path loaderr.Trail, diags *diagnostic.Diagnostics,
	declared map[string]FieldDef, refs map[string]int,
) {
	switch {
	case n.Dict != nil:
		checkPolicy(n.Dict.Extra, path, diags)

		for _, entry := range n.Dict.Keys {
			walkNode(entry.Node, append(path, loaderr.KeyElem(entry.Key)), diags, declared, refs)
		}

	case n.List != nil:
		checkPolicy(n.List.Extra, path, diags)

		for i, item := range n.List.Items {
			walkNode(item, append(path, loaderr.IndexElem(i)), diags, declared, refs)
		}

	case n.Field != "":
		refs[n.Field]++

		fd, ok := declared[n.Field]
		if !ok {
			diags.AddError(CodeUnknownField,
				fmt.Sprintf("crown references undeclared field %q", n.Field), path.String())
			return
		}

		if fd.ExtraTarget {
			diags.AddError(CodeTargetInCrown,
				fmt.Sprintf("extra target %q must not appear in the crown", n.Field), path.String())
		}

		if refs[n.Field] == 2 {
			diags.AddError(CodeDuplicateRef,
				fmt.Sprintf("field %q is referenced more than once", n.Field), path.String())
		}
	}
}

func checkPolicy(s string, path loaderr.Trail, diags *diagnostic.Diagnostics) {
	switch s {
	case "", "ignore", "forbid", "collect":
	default:
		diags.AddError(CodeBadPolicy,
			fmt.Sprintf("unknown extra policy %q (expected 'ignore', 'forbid' or 'collect')", s),
			path.String())
	}
}

func hasTargets(fields []FieldDef) bool {
	for _, fd := range fields {
		if fd.ExtraTarget {
			return true
		}
	}

	return false
}

func rootPolicy(n NodeDef) string {
	switch {
	case n.Dict != nil:
		return n.Dict.Extra
	case n.List != nil:
		return n.List.Extra
	}

	return ""
}
