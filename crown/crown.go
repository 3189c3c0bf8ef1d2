package crown

// Crown is a node of the tree describing the correspondence between an
// input tree shape and a flat set of fields.
//
// Exactly four implementations exist: *DictCrown, *ListCrown, FieldCrown
// and NoneCrown. The interface is sealed so the compiler can dispatch
// over the closed set of kinds.
type Crown interface {
	crown()
}

// Branch is a crown that owns nested positions (a dict or a list node).
type Branch interface {
	Crown
	ExtraPolicy() ExtraPolicy
}

// DictEntry is one declared key of a DictCrown. Entries are kept as an
// ordered slice, not a map: declared order is the traversal order and
// must survive construction.
type DictEntry struct {
	Key   string
	Child Crown
}

// DictCrown declares that the input position is a mapping.
type DictCrown struct {
	// Map lists the declared keys with their child crowns, in order.
	Map []DictEntry
	// Extra is the policy for keys present in the input but not declared.
	Extra ExtraPolicy
}

// Keys returns the declared keys in declaration order.
func (d *DictCrown) Keys() []string {
	keys := make([]string, len(d.Map))
	for i, entry := range d.Map {
		keys[i] = entry.Key
	}

	return keys
}

// ExtraPolicy implements Branch.
func (d *DictCrown) ExtraPolicy() ExtraPolicy { return d.Extra }

// ListCrown declares that the input position is a sequence. Children are
// positional: child i corresponds to input index i.
type ListCrown struct {
	Items []Crown
	// Extra is interpreted as the policy for trailing items beyond the
	// declared count. ExtraCollect gathers nothing for lists; trailing
	// items are accepted but dropped unless the policy is ExtraForbid.
	Extra ExtraPolicy
}

// ExtraPolicy implements Branch.
func (l *ListCrown) ExtraPolicy() ExtraPolicy { return l.Extra }

// FieldCrown is a leaf binding the input position to one field.
type FieldCrown struct {
	ID string
}

// NoneCrown is a leaf that deliberately consumes nothing. It exists to
// preserve positional layout, e.g. a list index that no field claims.
type NoneCrown struct{}

func (*DictCrown) crown() {}
func (*ListCrown) crown() {}
func (FieldCrown) crown() {}
func (NoneCrown) crown()  {}
