package interpreter

type transitionKind uint8

const (
	advance transitionKind = iota // pc += 2
	skip                          // pc += 4
	jump                          // pc = address
)

// transition describes how the program counter changes after an instruction.
type transition struct {
	kind    transitionKind
	address uint16
}

var (
	next     = transition{kind: advance}
	skipNext = transition{kind: skip}
)

func jumpTo(address uint16) transition {
	return transition{kind: jump, address: address}
}

func skipIf(condition bool) transition {
	if condition {
		return skipNext
	}
	return next
}

// apply returns the new program counter.
func (t transition) apply(pc uint16) uint16 {
	switch t.kind {
	case skip:
		return pc + 2*opcodeSize
	case jump:
		return t.address
	default:
		return pc + opcodeSize
	}
}
