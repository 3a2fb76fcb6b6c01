package code

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpString(t *testing.T) {
	cases := []struct {
		instr Instruction
		name  string
	}{
		{Op(OpI32Eqz), "i32.eqz"},
		{Op(OpI64Load32U), "i64.load32_u"},
		{Op(OpF32ConvertI64U), "f32.convert_i64_u"},
		{Op(OpI64Extend32S), "i64.extend32_s"},
		{Prefixed(OpI64TruncSatF64U), "i64.trunc_sat_f64_u"},
		{Op(0xff), "invalid"},
		{Prefixed(0x42), "invalid"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.name, c.instr.OpString())
		})
	}
}

func TestLocalGetString(t *testing.T) {
	instr := LocalGet(1)
	assert.Equal(t, "local.get 1", instr.String())
}

func TestNumericRangesNamed(t *testing.T) {
	for op := FirstMemoryAccess; op <= LastMemoryAccess; op++ {
		instr := Op(byte(op))
		assert.NotEqual(t, "invalid", instr.OpString(), "0x%02x", op)
	}
	for op := FirstNumeric; op <= LastNumeric; op++ {
		instr := Op(byte(op))
		assert.NotEqual(t, "invalid", instr.OpString(), "0x%02x", op)
	}
	for op := FirstTruncSat; op <= LastTruncSat; op++ {
		instr := Prefixed(uint32(op))
		assert.True(t, strings.Contains(instr.OpString(), ".trunc_sat_"), instr.OpString())
	}
}

func TestIndexAndEncoding(t *testing.T) {
	i32Eqz, sat := Op(OpI32Eqz), Prefixed(OpI32TruncSatF64U)

	assert.Equal(t, uint(0x45), i32Eqz.Index())
	assert.Equal(t, uint(0x103), sat.Index())
	assert.Equal(t, "0x45", i32Eqz.Encoding())
	assert.Equal(t, "0xfc 0x03", sat.Encoding())
}
