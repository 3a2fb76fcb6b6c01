package gauntlet

import "github.com/pgavlin/gauntlet/wasm/code"

var intUnaryCatalogue = []Entry{
	{"i32_clz", IntUnary, op(code.OpI32Clz)},
	{"i32_ctz", IntUnary, op(code.OpI32Ctz)},
	{"i32_popcnt", IntUnary, op(code.OpI32Popcnt)},
	{"i64_clz", IntUnary, op(code.OpI64Clz)},
	{"i64_ctz", IntUnary, op(code.OpI64Ctz)},
	{"i64_popcnt", IntUnary, op(code.OpI64Popcnt)},
}

var intBinaryCatalogue = []Entry{
	{"i32_add", IntBinary, op(code.OpI32Add)},
	{"i32_sub", IntBinary, op(code.OpI32Sub)},
	{"i32_mul", IntBinary, op(code.OpI32Mul)},
	{"i32_div_s", IntBinary, op(code.OpI32DivS)},
	{"i32_div_u", IntBinary, op(code.OpI32DivU)},
	{"i32_rem_s", IntBinary, op(code.OpI32RemS)},
	{"i32_rem_u", IntBinary, op(code.OpI32RemU)},
	{"i32_and", IntBinary, op(code.OpI32And)},
	{"i32_or", IntBinary, op(code.OpI32Or)},
	{"i32_xor", IntBinary, op(code.OpI32Xor)},
	{"i32_shl", IntBinary, op(code.OpI32Shl)},
	{"i32_shr_s", IntBinary, op(code.OpI32ShrS)},
	{"i32_shr_u", IntBinary, op(code.OpI32ShrU)},
	{"i32_rotl", IntBinary, op(code.OpI32Rotl)},
	{"i32_rotr", IntBinary, op(code.OpI32Rotr)},
	{"i64_add", IntBinary, op(code.OpI64Add)},
	{"i64_sub", IntBinary, op(code.OpI64Sub)},
	{"i64_mul", IntBinary, op(code.OpI64Mul)},
	{"i64_div_s", IntBinary, op(code.OpI64DivS)},
	{"i64_div_u", IntBinary, op(code.OpI64DivU)},
	{"i64_rem_s", IntBinary, op(code.OpI64RemS)},
	{"i64_rem_u", IntBinary, op(code.OpI64RemU)},
	{"i64_and", IntBinary, op(code.OpI64And)},
	{"i64_or", IntBinary, op(code.OpI64Or)},
	{"i64_xor", IntBinary, op(code.OpI64Xor)},
	{"i64_shl", IntBinary, op(code.OpI64Shl)},
	{"i64_shr_s", IntBinary, op(code.OpI64ShrS)},
	{"i64_shr_u", IntBinary, op(code.OpI64ShrU)},
	{"i64_rotl", IntBinary, op(code.OpI64Rotl)},
	{"i64_rotr", IntBinary, op(code.OpI64Rotr)},
}
