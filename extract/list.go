package extract

import (
	"github.com/daler-sz/adaptix/crown"
	"github.com/daler-sz/adaptix/loaderr"
)

// genList lowers a list crown. Children sit at dense indices 0..n-1.
// The length check runs after the children: forbid rejects both
// shortage and trailing items; any other policy only rejects shortage,
// and trailing items are accepted and dropped.
func (c *Compiler) genList(s *state, node *crown.ListCrown) {
	if s.collectsExtra() {
		s.emit(instr{
			op:   opInitExtraList,
			dst:  s.extraSlot(s.trail()),
			mask: leafMask(node),
		})
	}

	readIdx := -1
	if len(s.path) > 0 {
		readIdx = c.genSelfRead(s)
	}

	for i, item := range node.Items {
		c.genCrown(s, item, loaderr.IndexElem(i))
	}

	c.ensureShape(s, s.trail(), loaderr.ShapeList)
	s.emit(instr{
		op:       opCheckLen,
		src:      s.seqSlot(s.trail()),
		declared: len(node.Items),
		forbid:   node.Extra == crown.ExtraForbid,
		trail:    s.trail(),
	})

	// Skip jumps land on the propagation op, same as for dict nodes.
	c.patchSkips(s, readIdx)

	if s.collectsExtra() {
		c.genMoveExtra(s)
	}
}

// leafMask marks which positions of the overflow holder start as empty
// placeholder mappings; branch children overwrite theirs when they
// propagate.
func leafMask(node *crown.ListCrown) []bool {
	mask := make([]bool, len(node.Items))
	for i, item := range node.Items {
		switch item.(type) {
		case crown.FieldCrown, *crown.FieldCrown, crown.NoneCrown, *crown.NoneCrown:
			mask[i] = true
		}
	}

	return mask
}
