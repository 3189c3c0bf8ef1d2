package extract

import (
	"reflect"
	"sort"

	"github.com/daler-sz/adaptix/crown"
	"github.com/daler-sz/adaptix/loaderr"
)

// opcode enumerates the instruction kinds of a compiled program.
type opcode uint8

const (
	opCheckDict opcode = iota
	opCheckList
	opReadKey
	opReadIndex
	opInitExtraDict
	opInitExtraList
	opForbidKeys
	opCollectKeys
	opCheckLen
	opMoveExtraKey
	opMoveExtraIndex
	opFieldKey
	opFieldIndex
	opExtraTarget
)

// instr is one step of the flat extraction program. Operand fields are
// reused across opcodes; the opcode decides which are meaningful.
type instr struct {
	op opcode

	// src is the subject slot: a value slot for checks, a typed
	// container slot for reads and policy ops, an extra slot for moves.
	src int
	// dst is the destination slot: the typed slot a check fills, the
	// value slot a read fills, or the extra holder being written.
	dst int

	key      string
	idx      int
	declared int  // declared child count of the subject list
	forbid   bool // length check also rejects trailing items

	fieldID  string
	loader   crown.Loader // nil when the field's loader is crown.AsIs
	optional bool

	known map[string]struct{} // declared keys of the subject dict
	keys  []string            // same, sorted, for the disassembler
	mask  []bool              // init-extra-list: true marks leaf placeholders

	// skip is the jump target taken after a container failure in
	// collect-all mode: the first instruction past the container's
	// subtree.
	skip int

	trail  loaderr.Trail // own path
	ptrail loaderr.Trail // parent path, for lookup-miss errors
}

// Procedure is one compiled extraction. It is immutable and safe for
// concurrent use; all per-call state lives in the frame.
type Procedure struct {
	prog   []instr
	mode   DebugTrail
	strict bool

	numValues int
	numMaps   int
	numSeqs   int
	numExtras int
	numFields int

	fieldPaths map[string]string
}

// frame is the per-call slot storage of one Extract invocation.
type frame struct {
	values []any
	maps   []map[string]any
	seqs   [][]any
	extras []any
	out    map[string]any
	errs   []error
}

// Extract runs the compiled program against one raw input tree. It
// returns the extracted values keyed by field id; optional fields whose
// position was absent do not appear in the result.
func (p *Procedure) Extract(data any) (map[string]any, error) {
	f := frame{
		values: make([]any, p.numValues),
		maps:   make([]map[string]any, p.numMaps),
		seqs:   make([][]any, p.numSeqs),
		extras: make([]any, p.numExtras),
		out:    make(map[string]any, p.numFields),
	}
	f.values[0] = data

	prog := p.prog
	for pc := 0; pc < len(prog); pc++ {
		in := &prog[pc]

		switch in.op {
		case opCheckDict:
			m, ok := p.asMap(f.values[in.src])
			if !ok {
				if err := p.fail(&f, &loaderr.WrongTypeError{Expected: loaderr.ShapeDict}, in.trail); err != nil {
					return nil, err
				}

				pc = in.skip - 1
				continue
			}

			f.maps[in.dst] = m

		case opCheckList:
			seq, ok := p.asSeq(f.values[in.src])
			if !ok {
				if err := p.fail(&f, &loaderr.WrongTypeError{Expected: loaderr.ShapeList}, in.trail); err != nil {
					return nil, err
				}

				pc = in.skip - 1
				continue
			}

			f.seqs[in.dst] = seq

		case opReadKey:
			v, ok := f.maps[in.src][in.key]
			if !ok {
				err := &loaderr.MissingFieldsError{Keys: []string{in.key}}
				if err := p.fail(&f, err, in.ptrail); err != nil {
					return nil, err
				}

				pc = in.skip - 1
				continue
			}

			f.values[in.dst] = v

		case opReadIndex:
			seq := f.seqs[in.src]
			if in.idx >= len(seq) {
				// In collect-all mode the list length check reports the
				// shortage once for the whole list.
				if p.mode != DebugTrailAll {
					return nil, p.fail(&f, &loaderr.MissingItemsError{Expected: in.declared}, in.ptrail)
				}

				pc = in.skip - 1
				continue
			}

			f.values[in.dst] = seq[in.idx]

		case opInitExtraDict:
			f.extras[in.dst] = map[string]any{}

		case opInitExtraList:
			holder := make([]any, len(in.mask))
			for i, leaf := range in.mask {
				if leaf {
					holder[i] = map[string]any{}
				}
			}

			f.extras[in.dst] = holder

		case opForbidKeys:
			var unexpected []string
			for k := range f.maps[in.src] {
				if _, ok := in.known[k]; !ok {
					unexpected = append(unexpected, k)
				}
			}

			if len(unexpected) > 0 {
				sort.Strings(unexpected)

				if err := p.fail(&f, &loaderr.ExtraFieldsError{Keys: unexpected}, in.trail); err != nil {
					return nil, err
				}
			}

		case opCollectKeys:
			holder := f.extras[in.dst].(map[string]any)
			for k, v := range f.maps[in.src] {
				if _, ok := in.known[k]; !ok {
					holder[k] = v
				}
			}

		case opCheckLen:
			n := len(f.seqs[in.src])

			switch {
			case n < in.declared:
				if err := p.fail(&f, &loaderr.MissingItemsError{Expected: in.declared}, in.trail); err != nil {
					return nil, err
				}
			case in.forbid && n > in.declared:
				if err := p.fail(&f, &loaderr.ExtraItemsError{Expected: in.declared}, in.trail); err != nil {
					return nil, err
				}
			}

		case opMoveExtraKey:
			f.extras[in.dst].(map[string]any)[in.key] = f.extras[in.src]

		case opMoveExtraIndex:
			f.extras[in.dst].([]any)[in.idx] = f.extras[in.src]

		case opFieldKey:
			v, ok := f.maps[in.src][in.key]
			if !ok {
				if in.optional {
					continue
				}

				err := &loaderr.MissingFieldsError{Keys: []string{in.key}}
				if err := p.fail(&f, err, in.ptrail); err != nil {
					return nil, err
				}

				continue
			}

			if err := p.loadField(&f, in, v); err != nil {
				return nil, err
			}

		case opFieldIndex:
			seq := f.seqs[in.src]
			if in.idx >= len(seq) {
				if in.optional || p.mode == DebugTrailAll {
					continue
				}

				return nil, p.fail(&f, &loaderr.MissingItemsError{Expected: in.declared}, in.ptrail)
			}

			if err := p.loadField(&f, in, seq[in.idx]); err != nil {
				return nil, err
			}

		case opExtraTarget:
			var raw any = map[string]any{}
			if in.src >= 0 {
				raw = f.extras[in.src]
			}

			if err := p.loadField(&f, in, raw); err != nil {
				return nil, err
			}
		}
	}

	if p.mode == DebugTrailAll && len(f.errs) > 0 {
		return nil, &loaderr.AggregateError{Errs: f.errs}
	}

	return f.out, nil
}

// loadField runs the field's loader on the raw value and stores the
// result. Loader failures are wrapped, never reinterpreted.
func (p *Procedure) loadField(f *frame, in *instr, raw any) error {
	if in.loader == nil {
		f.out[in.fieldID] = raw
		return nil
	}

	v, err := in.loader(raw)
	if err != nil {
		wrapped := &loaderr.FieldError{Field: in.fieldID, Err: err}
		if err := p.fail(f, wrapped, in.trail); err != nil {
			return err
		}

		return nil
	}

	f.out[in.fieldID] = v

	return nil
}

// fail handles a failure according to the trail mode. A nil return
// means the error was collected and extraction continues.
func (p *Procedure) fail(f *frame, err error, trail loaderr.Trail) error {
	switch p.mode {
	case DebugTrailDisable:
		return err
	case DebugTrailFirst:
		return loaderr.WithTrail(err, trail)
	default:
		f.errs = append(f.errs, loaderr.WithTrail(err, trail))
		return nil
	}
}

// asMap coerces a raw value to a mapping. Strict coercion accepts only
// map[string]any; otherwise any map with string-compatible keys is
// converted.
func (p *Procedure) asMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}

	if p.strict {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}

	m := make(map[string]any, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		k, ok := iter.Key().Interface().(string)
		if !ok {
			return nil, false
		}

		m[k] = iter.Value().Interface()
	}

	return m, true
}

// asSeq coerces a raw value to a sequence. A string is never a
// sequence here: iterating its characters as items is exactly the
// accident this check guards against.
func (p *Procedure) asSeq(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case string:
		return nil, false
	}

	if p.strict {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	seq := make([]any, rv.Len())
	for i := range seq {
		seq[i] = rv.Index(i).Interface()
	}

	return seq, true
}

// FieldPaths returns where each field's value is read from, rendered as
// $-rooted paths. Diagnostics only.
func (p *Procedure) FieldPaths() map[string]string {
	paths := make(map[string]string, len(p.fieldPaths))
	for id, path := range p.fieldPaths {
		paths[id] = path
	}

	return paths
}
