package extract

import (
	"github.com/daler-sz/adaptix/crown"
	"github.com/daler-sz/adaptix/internal/common"
	"github.com/daler-sz/adaptix/loaderr"
)

// genDict lowers a dict crown: read own value (non-root), shape check,
// overflow holder, children in declared order, then the extra policy and
// the propagation into the parent holder.
func (c *Compiler) genDict(s *state, node *crown.DictCrown) {
	// The holder is initialized ahead of the read so that a failed
	// container in collect-all mode still propagates an empty holder
	// instead of a nil one.
	if s.collectsExtra() {
		s.emit(instr{
			op:  opInitExtraDict,
			dst: s.extraSlot(s.trail()),
		})
	}

	readIdx := -1
	if len(s.path) > 0 {
		readIdx = c.genSelfRead(s)
	}

	for _, entry := range node.Map {
		c.genCrown(s, entry.Child, loaderr.KeyElem(entry.Key))
	}

	if len(node.Map) == 0 {
		// No child read verifies the shape, so plan the check here.
		c.ensureShape(s, s.trail(), loaderr.ShapeDict)
	}

	switch node.Extra {
	case crown.ExtraForbid:
		c.ensureShape(s, s.trail(), loaderr.ShapeDict)
		s.emit(instr{
			op:    opForbidKeys,
			src:   s.mapSlot(s.trail()),
			known: common.SetOf(node.Keys()),
			keys:  sortedKeys(node),
			trail: s.trail(),
		})

	case crown.ExtraCollect:
		// Gathering without a routing destination would be dead work;
		// holders only exist when the layout declares an extra move.
		if s.collectsExtra() {
			c.ensureShape(s, s.trail(), loaderr.ShapeDict)
			s.emit(instr{
				op:    opCollectKeys,
				src:   s.mapSlot(s.trail()),
				dst:   s.extraSlot(s.trail()),
				known: common.SetOf(node.Keys()),
				keys:  sortedKeys(node),
			})
		}
	}

	// The skip target lands on the propagation op, so a failed container
	// still hands its (empty) holder to the parent.
	c.patchSkips(s, readIdx)

	if s.collectsExtra() {
		c.genMoveExtra(s)
	}
}

func sortedKeys(node *crown.DictCrown) []string {
	return common.SortedKeys(common.SetOf(node.Keys()))
}
