package gauntlet

import (
	"github.com/pgavlin/gauntlet/wasm/code"
	"github.com/willf/bitset"
)

// Coverage relates a catalogue to the set of instructions that a single-instruction test module can exercise.
type Coverage struct {
	// Covered is the number of testable instructions with at least one catalogue entry.
	Covered int
	// Missing lists the testable instructions without a catalogue entry.
	Missing []code.Instruction
	// Duplicates lists entries whose instruction already appeared earlier in the catalogue.
	Duplicates []Entry
	// Untestable lists entries whose instruction is outside the testable ranges.
	Untestable []Entry
}

// Testable returns every memory access, numeric, and saturating truncation instruction.
func Testable() []code.Instruction {
	var instrs []code.Instruction
	for op := code.FirstMemoryAccess; op <= code.LastMemoryAccess; op++ {
		instrs = append(instrs, code.Op(byte(op)))
	}
	for op := code.FirstNumeric; op <= code.LastNumeric; op++ {
		instrs = append(instrs, code.Op(byte(op)))
	}
	for op := code.FirstTruncSat; op <= code.LastTruncSat; op++ {
		instrs = append(instrs, code.Prefixed(uint32(op)))
	}
	return instrs
}

// ComputeCoverage checks entries against the testable instructions.
func ComputeCoverage(entries []Entry) Coverage {
	var testable, seen bitset.BitSet
	for _, instr := range Testable() {
		testable.Set(instr.Index())
	}

	var c Coverage
	for _, e := range entries {
		idx := e.Op.Index()
		switch {
		case !testable.Test(idx):
			c.Untestable = append(c.Untestable, e)
		case seen.Test(idx):
			c.Duplicates = append(c.Duplicates, e)
		default:
			seen.Set(idx)
		}
	}

	for _, instr := range Testable() {
		if seen.Test(instr.Index()) {
			c.Covered++
		} else {
			c.Missing = append(c.Missing, instr)
		}
	}
	return c
}

// Complete returns true if every testable instruction is covered exactly once.
func (c Coverage) Complete() bool {
	return len(c.Missing) == 0 && len(c.Duplicates) == 0 && len(c.Untestable) == 0
}

// Catalogue returns the entries of every family in generation order.
func Catalogue() []Entry {
	var entries []Entry
	for _, f := range Families() {
		entries = append(entries, f.Catalogue()...)
	}
	return entries
}
