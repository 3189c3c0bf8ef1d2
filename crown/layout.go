package crown

import "slices"

// ExtraMove describes what happens to collected overflow after the main
// tree walk. A nil ExtraMove means no routing.
type ExtraMove interface {
	extraMove()
}

// ExtraTargets routes the root-level overflow mapping to the named
// fields: each target's loader receives the collected mapping as its raw
// input instead of a value read from a tree position.
type ExtraTargets struct {
	Fields []string
}

func (ExtraTargets) extraMove() {}

// Contains reports whether id is one of the target fields.
func (t ExtraTargets) Contains(id string) bool {
	return slices.Contains(t.Fields, id)
}

// NameLayout is the complete declarative input for one compilation: the
// root crown plus the overflow routing descriptor.
type NameLayout struct {
	Crown Crown
	Extra ExtraMove
}

// IsExtraTarget reports whether the field id is routed collected
// overflow instead of a normal positional value.
func (l NameLayout) IsExtraTarget(id string) bool {
	targets, ok := l.Extra.(ExtraTargets)
	return ok && targets.Contains(id)
}
