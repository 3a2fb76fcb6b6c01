package gauntlet

import "github.com/pgavlin/gauntlet/wasm/code"

var compareUnaryCatalogue = []Entry{
	{"i32_eqz", CompareUnary, op(code.OpI32Eqz)},
	{"i64_eqz", CompareUnary, op(code.OpI64Eqz)},
}

var compareBinaryCatalogue = []Entry{
	{"i32_eq", CompareBinary, op(code.OpI32Eq)},
	{"i32_ne", CompareBinary, op(code.OpI32Ne)},
	{"i32_lt_s", CompareBinary, op(code.OpI32LtS)},
	{"i32_lt_u", CompareBinary, op(code.OpI32LtU)},
	{"i32_gt_s", CompareBinary, op(code.OpI32GtS)},
	{"i32_gt_u", CompareBinary, op(code.OpI32GtU)},
	{"i32_le_s", CompareBinary, op(code.OpI32LeS)},
	{"i32_le_u", CompareBinary, op(code.OpI32LeU)},
	{"i32_ge_s", CompareBinary, op(code.OpI32GeS)},
	{"i32_ge_u", CompareBinary, op(code.OpI32GeU)},
	{"i64_eq", CompareBinary, op(code.OpI64Eq)},
	{"i64_ne", CompareBinary, op(code.OpI64Ne)},
	{"i64_lt_s", CompareBinary, op(code.OpI64LtS)},
	{"i64_lt_u", CompareBinary, op(code.OpI64LtU)},
	{"i64_gt_s", CompareBinary, op(code.OpI64GtS)},
	{"i64_gt_u", CompareBinary, op(code.OpI64GtU)},
	{"i64_le_s", CompareBinary, op(code.OpI64LeS)},
	{"i64_le_u", CompareBinary, op(code.OpI64LeU)},
	{"i64_ge_s", CompareBinary, op(code.OpI64GeS)},
	{"i64_ge_u", CompareBinary, op(code.OpI64GeU)},
	{"f32_eq", CompareBinary, op(code.OpF32Eq)},
	{"f32_ne", CompareBinary, op(code.OpF32Ne)},
	{"f32_lt", CompareBinary, op(code.OpF32Lt)},
	{"f32_gt", CompareBinary, op(code.OpF32Gt)},
	{"f32_le", CompareBinary, op(code.OpF32Le)},
	{"f32_ge", CompareBinary, op(code.OpF32Ge)},
	{"f64_eq", CompareBinary, op(code.OpF64Eq)},
	{"f64_ne", CompareBinary, op(code.OpF64Ne)},
	{"f64_lt", CompareBinary, op(code.OpF64Lt)},
	{"f64_gt", CompareBinary, op(code.OpF64Gt)},
	{"f64_le", CompareBinary, op(code.OpF64Le)},
	{"f64_ge", CompareBinary, op(code.OpF64Ge)},
}
