// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import "fmt"

// ValueType represents the type of a valid value in Wasm
type ValueType int8

const (
	ValueTypeI32 ValueType = -0x01
	ValueTypeI64 ValueType = -0x02
	ValueTypeF32 ValueType = -0x03
	ValueTypeF64 ValueType = -0x04
)

var valueTypeStrMap = map[ValueType]string{
	ValueTypeI32: "i32",
	ValueTypeI64: "i64",
	ValueTypeF32: "f32",
	ValueTypeF64: "f64",
}

func (t ValueType) String() string {
	str, ok := valueTypeStrMap[t]
	if !ok {
		str = fmt.Sprintf("<unknown value_type %d>", int8(t))
	}
	return str
}

// IsInteger returns true if t is i32 or i64.
func (t ValueType) IsInteger() bool {
	return t == ValueTypeI32 || t == ValueTypeI64
}

// ParseValueType returns the value type named by s, which must be one of the
// text-format type names.
func ParseValueType(s string) (ValueType, bool) {
	switch s {
	case "i32":
		return ValueTypeI32, true
	case "i64":
		return ValueTypeI64, true
	case "f32":
		return ValueTypeF32, true
	case "f64":
		return ValueTypeF64, true
	default:
		return 0, false
	}
}
