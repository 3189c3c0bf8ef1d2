package extract

import (
	"slices"

	"github.com/daler-sz/adaptix/crown"
	"github.com/daler-sz/adaptix/loaderr"
)

// state is the transient compile-time bookkeeping of one Compile call:
// the current path through the crown, the slot tables that give every
// tree position a stable frame index, and the memo of container checks
// already planned. It is discarded once the program is built.
type state struct {
	layout  crown.NameLayout
	fields  map[string]crown.Field
	loaders map[string]crown.Loader

	prog []instr

	path       loaderr.Trail
	crownStack []crown.Crown

	valueSlots map[string]int
	mapSlots   map[string]int
	seqSlots   map[string]int
	extraSlots map[string]int

	numValues int
	numMaps   int
	numSeqs   int
	numExtras int

	// checkedTypePaths records paths whose container check is already
	// planned. Several children read from the same parent at compile
	// time; the check must be emitted for the first of them only.
	checkedTypePaths map[string]struct{}

	// pendingChecks maps a container path to the program indexes of its
	// planned check ops, so the container's own generation can patch
	// their skip targets once its subtree is complete.
	pendingChecks map[string][]int

	// fieldIDToPath records where each field's value is read from.
	// Diagnostics only; surfaced by the disassembler.
	fieldIDToPath map[string]loaderr.Trail
}

func newState(layout crown.NameLayout, fields map[string]crown.Field, loaders map[string]crown.Loader) *state {
	s := &state{
		layout:           layout,
		fields:           fields,
		loaders:          loaders,
		crownStack:       []crown.Crown{layout.Crown},
		valueSlots:       map[string]int{},
		mapSlots:         map[string]int{},
		seqSlots:         map[string]int{},
		extraSlots:       map[string]int{},
		checkedTypePaths: map[string]struct{}{},
		pendingChecks:    map[string][]int{},
		fieldIDToPath:    map[string]loaderr.Trail{},
	}

	// The root value is the procedure's argument; slot 0 is reserved
	// for it.
	s.valueSlots[pathKey(nil)] = 0
	s.numValues = 1

	return s
}

func pathKey(path loaderr.Trail) string { return path.String() }

// enter pushes one child position. The returned func restores the prior
// path state and must run on every exit from the child's generation.
func (s *state) enter(child crown.Crown, elem loaderr.Elem) func() {
	s.path = append(s.path, elem)
	s.crownStack = append(s.crownStack, child)

	return func() {
		s.path = s.path[:len(s.path)-1]
		s.crownStack = s.crownStack[:len(s.crownStack)-1]
	}
}

// trail returns an owned copy of the current path, safe to store in an
// instruction after the compiler moves on.
func (s *state) trail() loaderr.Trail {
	return slices.Clone(s.path)
}

func (s *state) parentPath() loaderr.Trail {
	if len(s.path) == 0 {
		panic("extract: root position has no parent")
	}

	return slices.Clone(s.path[:len(s.path)-1])
}

func (s *state) parentCrown() crown.Crown {
	if len(s.crownStack) < 2 {
		panic("extract: root position has no parent crown")
	}

	return s.crownStack[len(s.crownStack)-2]
}

// collectsExtra reports whether the layout routes overflow at all. Only
// then do overflow holders exist.
func (s *state) collectsExtra() bool {
	return s.layout.Extra != nil
}

func slotFor(table map[string]int, next *int, key string) int {
	if idx, ok := table[key]; ok {
		return idx
	}

	idx := *next
	*next++
	table[key] = idx

	return idx
}

func (s *state) valueSlot(path loaderr.Trail) int {
	return slotFor(s.valueSlots, &s.numValues, pathKey(path))
}

func (s *state) mapSlot(path loaderr.Trail) int {
	return slotFor(s.mapSlots, &s.numMaps, pathKey(path))
}

func (s *state) seqSlot(path loaderr.Trail) int {
	return slotFor(s.seqSlots, &s.numSeqs, pathKey(path))
}

func (s *state) extraSlot(path loaderr.Trail) int {
	return slotFor(s.extraSlots, &s.numExtras, pathKey(path))
}

// emit appends one instruction and returns its program index.
func (s *state) emit(in instr) int {
	s.prog = append(s.prog, in)
	return len(s.prog) - 1
}

// takePendingChecks returns and clears the planned-check indexes for a
// container path.
func (s *state) takePendingChecks(path loaderr.Trail) []int {
	key := pathKey(path)
	idxs := s.pendingChecks[key]
	delete(s.pendingChecks, key)

	return idxs
}
