package gauntlet

import "github.com/pgavlin/gauntlet/wasm/code"

var floatUnaryCatalogue = []Entry{
	{"f32_abs", FloatUnary, op(code.OpF32Abs)},
	{"f32_neg", FloatUnary, op(code.OpF32Neg)},
	{"f32_ceil", FloatUnary, op(code.OpF32Ceil)},
	{"f32_floor", FloatUnary, op(code.OpF32Floor)},
	{"f32_trunc", FloatUnary, op(code.OpF32Trunc)},
	{"f32_nearest", FloatUnary, op(code.OpF32Nearest)},
	{"f32_sqrt", FloatUnary, op(code.OpF32Sqrt)},
	{"f64_abs", FloatUnary, op(code.OpF64Abs)},
	{"f64_neg", FloatUnary, op(code.OpF64Neg)},
	{"f64_ceil", FloatUnary, op(code.OpF64Ceil)},
	{"f64_floor", FloatUnary, op(code.OpF64Floor)},
	{"f64_trunc", FloatUnary, op(code.OpF64Trunc)},
	{"f64_nearest", FloatUnary, op(code.OpF64Nearest)},
	{"f64_sqrt", FloatUnary, op(code.OpF64Sqrt)},
}

var floatBinaryCatalogue = []Entry{
	{"f32_add", FloatBinary, op(code.OpF32Add)},
	{"f32_sub", FloatBinary, op(code.OpF32Sub)},
	{"f32_mul", FloatBinary, op(code.OpF32Mul)},
	{"f32_div", FloatBinary, op(code.OpF32Div)},
	{"f32_min", FloatBinary, op(code.OpF32Min)},
	{"f32_max", FloatBinary, op(code.OpF32Max)},
	{"f32_copysign", FloatBinary, op(code.OpF32Copysign)},
	{"f64_add", FloatBinary, op(code.OpF64Add)},
	{"f64_sub", FloatBinary, op(code.OpF64Sub)},
	{"f64_mul", FloatBinary, op(code.OpF64Mul)},
	{"f64_div", FloatBinary, op(code.OpF64Div)},
	{"f64_min", FloatBinary, op(code.OpF64Min)},
	{"f64_max", FloatBinary, op(code.OpF64Max)},
	{"f64_copysign", FloatBinary, op(code.OpF64Copysign)},
}
