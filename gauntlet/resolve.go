package gauntlet

import (
	"fmt"
	"strings"

	"github.com/pgavlin/gauntlet/wasm"
)

// Tokenize splits a mnemonic into its underscore-separated tokens. Surrounding blanks are ignored.
func Tokenize(mnemonic string) []string {
	return strings.Split(strings.TrimSpace(mnemonic), "_")
}

type resolver struct {
	entry Entry
	toks  []string
}

func (r *resolver) fail(format string, args ...interface{}) {
	panic(&MalformedEntryError{
		Mnemonic: r.entry.Mnemonic,
		Kind:     r.entry.Kind,
		Tokens:   len(r.toks),
		Reason:   fmt.Sprintf(format, args...),
	})
}

func (r *resolver) expect(counts ...int) {
	for _, c := range counts {
		if len(r.toks) == c {
			return
		}
	}
	r.fail("expected %v tokens", counts)
}

func (r *resolver) valueType(i int) wasm.ValueType {
	t, ok := wasm.ParseValueType(r.toks[i])
	if !ok {
		r.fail("token %d ('%v') is not a value type", i, r.toks[i])
	}
	return t
}

func (r *resolver) integerType(i int) wasm.ValueType {
	t := r.valueType(i)
	if !t.IsInteger() {
		r.fail("token %d ('%v') is not an integer type", i, r.toks[i])
	}
	return t
}

func (r *resolver) floatType(i int) wasm.ValueType {
	t := r.valueType(i)
	if t.IsInteger() {
		r.fail("token %d ('%v') is not a float type", i, r.toks[i])
	}
	return t
}

// operator joins the type token to the rest of the tokens: "i32_trunc_f32_s" becomes "i32.trunc_f32_s".
func (r *resolver) operator() string {
	return r.toks[0] + "." + strings.Join(r.toks[1:], "_")
}

// Resolve applies the entry's positional rule to its tokens, producing the test's operator, name and signature.
func Resolve(entry Entry) (test *Test, err error) {
	defer func() {
		if x := recover(); x != nil {
			if e, ok := x.(*MalformedEntryError); ok {
				test, err = nil, e
				return
			}
			panic(x)
		}
	}()

	r := &resolver{entry: entry, toks: Tokenize(entry.Mnemonic)}

	var params, results []wasm.ValueType
	switch entry.Kind {
	case CompareUnary:
		r.expect(2)
		t := r.integerType(0)
		params, results = []wasm.ValueType{t}, []wasm.ValueType{wasm.ValueTypeI32}
	case CompareBinary:
		r.expect(2, 3)
		t := r.valueType(0)
		params, results = []wasm.ValueType{t, t}, []wasm.ValueType{wasm.ValueTypeI32}
	case Load:
		r.expect(2, 3)
		params, results = []wasm.ValueType{wasm.ValueTypeI32}, []wasm.ValueType{r.valueType(0)}
	case Store:
		r.expect(2)
		params = []wasm.ValueType{wasm.ValueTypeI32, r.valueType(0)}
	case FloatUnary:
		r.expect(2)
		t := r.floatType(0)
		params, results = []wasm.ValueType{t}, []wasm.ValueType{t}
	case FloatBinary:
		r.expect(2)
		t := r.floatType(0)
		params, results = []wasm.ValueType{t, t}, []wasm.ValueType{t}
	case IntUnary:
		r.expect(2)
		t := r.integerType(0)
		params, results = []wasm.ValueType{t}, []wasm.ValueType{t}
	case IntBinary:
		r.expect(2, 3)
		t := r.integerType(0)
		params, results = []wasm.ValueType{t, t}, []wasm.ValueType{t}
	case Convert:
		// Destination type first, source type third.
		r.expect(3, 4)
		params, results = []wasm.ValueType{r.valueType(2)}, []wasm.ValueType{r.valueType(0)}
	case SelfExtend:
		// extendN_s narrows internally, but its operand and result share a type.
		r.expect(3)
		t := r.integerType(0)
		params, results = []wasm.ValueType{t}, []wasm.ValueType{t}
	case TruncSat:
		// i32_trunc_sat_f32_s: destination type first, source type fourth.
		r.expect(5)
		params, results = []wasm.ValueType{r.floatType(3)}, []wasm.ValueType{r.integerType(0)}
	default:
		r.fail("unknown kind")
	}

	test = &Test{
		Entry:     entry,
		Operator:  r.operator(),
		Signature: Signature{ParamTypes: params, ReturnTypes: results},
	}
	test.Name = test.Operator
	if entry.Kind.Family() == DataOps {
		test.Name += "(" + PayloadNickname + ")"
		test.Memory = []byte(Payload)
	}
	return test, nil
}

// MustResolve is like Resolve, but panics if the entry is malformed.
func MustResolve(entry Entry) *Test {
	test, err := Resolve(entry)
	if err != nil {
		panic(err)
	}
	return test
}

// Tests resolves the catalogues of the given families in order.
func Tests(families ...Family) ([]*Test, error) {
	var tests []*Test
	for _, f := range families {
		for _, entry := range f.Catalogue() {
			test, err := Resolve(entry)
			if err != nil {
				return nil, err
			}
			tests = append(tests, test)
		}
	}
	return tests, nil
}
