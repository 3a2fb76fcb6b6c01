package gauntlet

import (
	"fmt"
	"strings"

	"github.com/pgavlin/gauntlet/wasm"
	"github.com/pgavlin/gauntlet/wasm/code"
)

// A Kind selects the positional rule used to turn a mnemonic's tokens into a test.
type Kind int

const (
	CompareUnary Kind = iota
	CompareBinary
	Load
	Store
	FloatUnary
	FloatBinary
	IntUnary
	IntBinary
	Convert
	SelfExtend
	TruncSat
)

var kindInfo = [...]struct {
	name   string
	family Family
}{
	CompareUnary:  {"compare-unary", Compares},
	CompareBinary: {"compare-binary", Compares},
	Load:          {"load", DataOps},
	Store:         {"store", DataOps},
	FloatUnary:    {"float-unary", FloatMath},
	FloatBinary:   {"float-binary", FloatMath},
	IntUnary:      {"int-unary", IntMath},
	IntBinary:     {"int-binary", IntMath},
	Convert:       {"convert", Conversions},
	SelfExtend:    {"self-extend", Conversions},
	TruncSat:      {"trunc-sat", TruncSats},
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindInfo) {
		return fmt.Sprintf("<unknown kind %d>", int(k))
	}
	return kindInfo[k].name
}

func (k Kind) Family() Family {
	return kindInfo[k].family
}

// An Entry is a single catalogue record. Mnemonic is the underscore-separated instruction name, e.g. "i32_lt_s".
type Entry struct {
	Mnemonic string
	Kind     Kind
	Op       code.Instruction
}

func op(opcode byte) code.Instruction {
	return code.Op(opcode)
}

// Signature is the type of a test's exported function.
type Signature struct {
	ParamTypes  []wasm.ValueType
	ReturnTypes []wasm.ValueType
}

func (s Signature) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, p := range s.ParamTypes {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(") ->")
	if len(s.ReturnTypes) == 0 {
		b.WriteString(" ()")
	}
	for _, r := range s.ReturnTypes {
		b.WriteString(" ")
		b.WriteString(r.String())
	}
	return b.String()
}

// A Test is a resolved catalogue entry.
type Test struct {
	Entry

	// Operator is the dotted instruction name, e.g. "i32.lt_s".
	Operator string
	// Name names the test's header comment and output file.
	Name      string
	Signature Signature
	// Memory holds the contents of the module's memory, if any.
	Memory []byte
}

// MalformedEntryError is returned when a catalogue entry's tokens do not fit its kind's rule.
type MalformedEntryError struct {
	Mnemonic string
	Kind     Kind
	Tokens   int
	Reason   string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("malformed %v entry '%v' (%d tokens): %v", e.Kind, e.Mnemonic, e.Tokens, e.Reason)
}
