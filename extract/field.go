package extract

import (
	"github.com/daler-sz/adaptix/crown"
	"github.com/daler-sz/adaptix/loaderr"
)

// genField lowers a field leaf: a positional read fused with the loader
// call. Optional fields swallow lookup misses; their slot is simply
// absent from the result afterwards.
func (c *Compiler) genField(s *state, node crown.FieldCrown) {
	field := s.fields[node.ID]
	s.fieldIDToPath[node.ID] = s.trail()

	loader := s.loaders[node.ID]
	if isAsIs(loader) {
		loader = nil
	}

	elem := s.path[len(s.path)-1]
	parent := s.parentPath()

	in := instr{
		fieldID:  node.ID,
		loader:   loader,
		optional: !field.Required,
		trail:    s.trail(),
		ptrail:   parent,
	}

	if elem.IsIndex {
		c.ensureShape(s, parent, loaderr.ShapeList)
		in.op = opFieldIndex
		in.src = s.seqSlot(parent)
		in.idx = elem.Index
		in.declared = declaredLen(s.parentCrown())
	} else {
		c.ensureShape(s, parent, loaderr.ShapeDict)
		in.op = opFieldKey
		in.src = s.mapSlot(parent)
		in.key = elem.Key
	}

	s.emit(in)
}

// genExtraTargets saturates the extra-target fields after the main tree
// walk. When the root collected, every target's loader receives the
// root overflow holder; when it did not, required targets receive an
// empty mapping unconditionally. There was no positional read for them,
// so no lookup-miss path exists.
func (c *Compiler) genExtraTargets(s *state) {
	targets, ok := s.layout.Extra.(crown.ExtraTargets)
	if !ok {
		return
	}

	rootCollects := false
	if branch, ok := s.layout.Crown.(crown.Branch); ok {
		rootCollects = branch.ExtraPolicy() == crown.ExtraCollect
	}

	for _, id := range targets.Fields {
		field := s.fields[id]
		if !rootCollects && !field.Required {
			continue
		}

		loader := s.loaders[id]
		if isAsIs(loader) {
			loader = nil
		}

		src := -1
		if rootCollects {
			src = s.extraSlot(nil)
		}

		s.emit(instr{
			op:      opExtraTarget,
			src:     src,
			fieldID: id,
			loader:  loader,
		})
	}
}
