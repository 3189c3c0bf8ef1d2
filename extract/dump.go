package extract

import (
	"fmt"
	"strings"

	"github.com/daler-sz/adaptix/internal/common"
)

// Disassemble renders the compiled program for inspection: the
// field-to-path table followed by one line per instruction. The output
// format is a debug aid, not a contract.
func (p *Procedure) Disassemble() string {
	var b strings.Builder

	fmt.Fprintf(&b, "procedure: %d instructions, trail=%s, strict=%v\n", len(p.prog), p.mode, p.strict)

	if len(p.fieldPaths) > 0 {
		b.WriteString("fields:\n")

		for _, id := range common.SortedKeys(p.fieldPaths) {
			fmt.Fprintf(&b, "  %s <- %s\n", id, p.fieldPaths[id])
		}
	}

	b.WriteString("code:\n")

	for i := range p.prog {
		in := &p.prog[i]
		fmt.Fprintf(&b, "  %3d %-16s", i, in.op)

		switch in.op {
		case opCheckDict:
			fmt.Fprintf(&b, " m%d <- v%d", in.dst, in.src)
		case opCheckList:
			fmt.Fprintf(&b, " s%d <- v%d", in.dst, in.src)
		case opReadKey:
			fmt.Fprintf(&b, " v%d <- m%d[%q]", in.dst, in.src, in.key)
		case opReadIndex:
			fmt.Fprintf(&b, " v%d <- s%d[%d]", in.dst, in.src, in.idx)
		case opInitExtraDict:
			fmt.Fprintf(&b, " e%d <- {}", in.dst)
		case opInitExtraList:
			fmt.Fprintf(&b, " e%d <- %v", in.dst, in.mask)
		case opForbidKeys:
			fmt.Fprintf(&b, " m%d known=%v", in.src, in.keys)
		case opCollectKeys:
			fmt.Fprintf(&b, " e%d <- m%d known=%v", in.dst, in.src, in.keys)
		case opCheckLen:
			fmt.Fprintf(&b, " s%d declared=%d forbid=%v", in.src, in.declared, in.forbid)
		case opMoveExtraKey:
			fmt.Fprintf(&b, " e%d[%q] <- e%d", in.dst, in.key, in.src)
		case opMoveExtraIndex:
			fmt.Fprintf(&b, " e%d[%d] <- e%d", in.dst, in.idx, in.src)
		case opFieldKey:
			fmt.Fprintf(&b, " %s <- m%d[%q]", in.fieldID, in.src, in.key)
		case opFieldIndex:
			fmt.Fprintf(&b, " %s <- s%d[%d]", in.fieldID, in.src, in.idx)
		case opExtraTarget:
			if in.src >= 0 {
				fmt.Fprintf(&b, " %s <- e%d", in.fieldID, in.src)
			} else {
				fmt.Fprintf(&b, " %s <- {}", in.fieldID)
			}
		}

		if in.optional {
			b.WriteString(" optional")
		}

		if in.loader == nil && (in.op == opFieldKey || in.op == opFieldIndex || in.op == opExtraTarget) {
			b.WriteString(" as-is")
		}

		if in.skip > 0 {
			fmt.Fprintf(&b, " skip=%d", in.skip)
		}

		if len(in.trail) > 0 {
			fmt.Fprintf(&b, " @%s", in.trail)
		}

		b.WriteByte('\n')
	}

	return b.String()
}
