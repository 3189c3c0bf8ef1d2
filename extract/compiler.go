package extract

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/daler-sz/adaptix/crown"
	"github.com/daler-sz/adaptix/internal/common"
	"github.com/daler-sz/adaptix/loaderr"
)

// DebugTrail selects how much positional context failures carry, trading
// diagnostic detail for per-call cost.
type DebugTrail int

const (
	// DebugTrailDisable aborts on the first failure with no positional
	// context attached.
	DebugTrailDisable DebugTrail = iota
	// DebugTrailFirst aborts on the first failure, decorated with the
	// full path from the root to the failure point.
	DebugTrailFirst
	// DebugTrailAll collects every failure found in one pass and groups
	// them into a single aggregate error at the end.
	DebugTrailAll
)

// String returns the mode name.
func (d DebugTrail) String() string {
	switch d {
	case DebugTrailDisable:
		return "disable"
	case DebugTrailFirst:
		return "first"
	case DebugTrailAll:
		return "all"
	default:
		return common.UnknownStr
	}
}

// Config holds compilation settings.
type Config struct {
	DebugTrail DebugTrail
	// StrictCoercion restricts container positions to exactly
	// map[string]any and []any. When off, other map and slice shapes
	// are accepted through a reflective fallback. Strings are rejected
	// at sequence positions either way.
	StrictCoercion bool
}

// DefaultConfig returns the default compilation settings: collect-all
// trails and strict coercion.
func DefaultConfig() Config {
	return Config{
		DebugTrail:     DebugTrailAll,
		StrictCoercion: true,
	}
}

// Compiler compiles name layouts into extraction procedures. One
// compiler may be reused for any number of Compile calls.
type Compiler struct {
	config Config
}

// NewCompiler creates a Compiler with the given configuration.
func NewCompiler(config Config) *Compiler {
	return &Compiler{config: config}
}

// Compile lowers the layout into one executable Procedure. Every field
// referenced by a FieldCrown or listed as an extra target must be
// declared and must have a loader; violations are contract errors
// reported here, not at extraction time.
func (c *Compiler) Compile(
	layout crown.NameLayout,
	fields []crown.Field,
	fieldLoaders map[string]crown.Loader,
) (*Procedure, error) {
	byID := make(map[string]crown.Field, len(fields))
	for _, field := range fields {
		byID[field.ID] = field
	}

	if err := checkContract(layout, byID, fieldLoaders); err != nil {
		return nil, err
	}

	s := newState(layout, byID, fieldLoaders)

	switch root := layout.Crown.(type) {
	case *crown.DictCrown:
		c.genDict(s, root)
	case *crown.ListCrown:
		c.genList(s, root)
	default:
		return nil, fmt.Errorf("root crown must be a dict or list crown, got %T", layout.Crown)
	}

	c.genExtraTargets(s)

	fieldPaths := make(map[string]string, len(s.fieldIDToPath))
	for id, path := range s.fieldIDToPath {
		fieldPaths[id] = path.String()
	}

	return &Procedure{
		prog:       s.prog,
		mode:       c.config.DebugTrail,
		strict:     c.config.StrictCoercion,
		numValues:  s.numValues,
		numMaps:    s.numMaps,
		numSeqs:    s.numSeqs,
		numExtras:  s.numExtras,
		numFields:  len(fields),
		fieldPaths: fieldPaths,
	}, nil
}

func checkContract(layout crown.NameLayout, fields map[string]crown.Field, loaders map[string]crown.Loader) error {
	var errs []error

	check := func(id string) {
		if _, ok := fields[id]; !ok {
			errs = append(errs, fmt.Errorf("crown references undeclared field %q", id))
		}

		if loaders[id] == nil {
			errs = append(errs, fmt.Errorf("no loader for field %q", id))
		}
	}

	walkFieldCrowns(layout.Crown, check)

	if targets, ok := layout.Extra.(crown.ExtraTargets); ok {
		for _, id := range targets.Fields {
			check(id)
		}
	}

	return errors.Join(errs...)
}

func walkFieldCrowns(c crown.Crown, visit func(id string)) {
	switch node := c.(type) {
	case *crown.DictCrown:
		for _, entry := range node.Map {
			walkFieldCrowns(entry.Child, visit)
		}
	case *crown.ListCrown:
		for _, item := range node.Items {
			walkFieldCrowns(item, visit)
		}
	case crown.FieldCrown:
		visit(node.ID)
	case *crown.FieldCrown:
		visit(node.ID)
	}
}

// genCrown dispatches generation for one child position.
func (c *Compiler) genCrown(s *state, node crown.Crown, elem loaderr.Elem) {
	exit := s.enter(node, elem)
	defer exit()

	switch n := node.(type) {
	case *crown.DictCrown:
		c.genDict(s, n)
	case *crown.ListCrown:
		c.genList(s, n)
	case crown.FieldCrown:
		c.genField(s, n)
	case *crown.FieldCrown:
		c.genField(s, *n)
	case crown.NoneCrown, *crown.NoneCrown:
		// Consumes nothing; present only to keep positional layout.
	}
}

// ensureShape plans the container check for path once per compilation,
// no matter how many children request it.
func (c *Compiler) ensureShape(s *state, path loaderr.Trail, shape loaderr.Shape) {
	key := pathKey(path)
	if _, done := s.checkedTypePaths[key]; done {
		return
	}

	s.checkedTypePaths[key] = struct{}{}

	in := instr{
		src:   s.valueSlot(path),
		trail: path,
	}

	if shape == loaderr.ShapeDict {
		in.op = opCheckDict
		in.dst = s.mapSlot(path)
	} else {
		in.op = opCheckList
		in.dst = s.seqSlot(path)
	}

	s.pendingChecks[key] = append(s.pendingChecks[key], s.emit(in))
}

// genSelfRead emits the positional read of the current branch's own
// value from its parent container and returns the instruction index for
// skip patching.
func (c *Compiler) genSelfRead(s *state) int {
	elem := s.path[len(s.path)-1]
	parent := s.parentPath()

	if elem.IsIndex {
		c.ensureShape(s, parent, loaderr.ShapeList)

		return s.emit(instr{
			op:       opReadIndex,
			src:      s.seqSlot(parent),
			dst:      s.valueSlot(s.trail()),
			idx:      elem.Index,
			declared: declaredLen(s.parentCrown()),
			trail:    s.trail(),
			ptrail:   parent,
		})
	}

	c.ensureShape(s, parent, loaderr.ShapeDict)

	return s.emit(instr{
		op:     opReadKey,
		src:    s.mapSlot(parent),
		dst:    s.valueSlot(s.trail()),
		key:    elem.Key,
		trail:  s.trail(),
		ptrail: parent,
	})
}

// genMoveExtra propagates this branch's overflow holder into the parent
// holder under the branch's own key or index, so collected overflow
// nests mirroring the tree.
func (c *Compiler) genMoveExtra(s *state) {
	if len(s.path) == 0 {
		return
	}

	elem := s.path[len(s.path)-1]
	in := instr{
		src: s.extraSlot(s.trail()),
		dst: s.extraSlot(s.parentPath()),
	}

	if elem.IsIndex {
		in.op = opMoveExtraIndex
		in.idx = elem.Index
	} else {
		in.op = opMoveExtraKey
		in.key = elem.Key
	}

	s.emit(in)
}

// patchSkips points the subtree-abort jumps of the finished container at
// the first instruction past it.
func (c *Compiler) patchSkips(s *state, readIdx int) {
	end := len(s.prog)

	if readIdx >= 0 {
		s.prog[readIdx].skip = end
	}

	for _, idx := range s.takePendingChecks(s.path) {
		s.prog[idx].skip = end
	}
}

func declaredLen(c crown.Crown) int {
	if list, ok := c.(*crown.ListCrown); ok {
		return len(list.Items)
	}

	return 0
}

// asIsPC is the function identity of crown.AsIs, compared via code
// pointer the same way caster functions are told apart by their PC.
var asIsPC = reflect.ValueOf(crown.AsIs).Pointer()

func isAsIs(loader crown.Loader) bool {
	return loader != nil && reflect.ValueOf(loader).Pointer() == asIsPC
}
