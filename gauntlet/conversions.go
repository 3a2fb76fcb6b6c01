package gauntlet

import "github.com/pgavlin/gauntlet/wasm/code"

var conversionCatalogue = []Entry{
	{"i32_wrap_i64", Convert, op(code.OpI32WrapI64)},
	{"i32_trunc_f32_s", Convert, op(code.OpI32TruncF32S)},
	{"i32_trunc_f32_u", Convert, op(code.OpI32TruncF32U)},
	{"i32_trunc_f64_s", Convert, op(code.OpI32TruncF64S)},
	{"i32_trunc_f64_u", Convert, op(code.OpI32TruncF64U)},
	{"i64_extend_i32_s", Convert, op(code.OpI64ExtendI32S)},
	{"i64_extend_i32_u", Convert, op(code.OpI64ExtendI32U)},
	{"i64_trunc_f32_s", Convert, op(code.OpI64TruncF32S)},
	{"i64_trunc_f32_u", Convert, op(code.OpI64TruncF32U)},
	{"i64_trunc_f64_s", Convert, op(code.OpI64TruncF64S)},
	{"i64_trunc_f64_u", Convert, op(code.OpI64TruncF64U)},
	{"f32_convert_i32_s", Convert, op(code.OpF32ConvertI32S)},
	{"f32_convert_i32_u", Convert, op(code.OpF32ConvertI32U)},
	{"f32_convert_i64_s", Convert, op(code.OpF32ConvertI64S)},
	{"f32_convert_i64_u", Convert, op(code.OpF32ConvertI64U)},
	{"f32_demote_f64", Convert, op(code.OpF32DemoteF64)},
	{"f64_convert_i32_s", Convert, op(code.OpF64ConvertI32S)},
	{"f64_convert_i32_u", Convert, op(code.OpF64ConvertI32U)},
	{"f64_convert_i64_s", Convert, op(code.OpF64ConvertI64S)},
	{"f64_convert_i64_u", Convert, op(code.OpF64ConvertI64U)},
	{"f64_promote_f32", Convert, op(code.OpF64PromoteF32)},
	{"i32_reinterpret_f32", Convert, op(code.OpI32ReinterpretF32)},
	{"i64_reinterpret_f64", Convert, op(code.OpI64ReinterpretF64)},
	{"f32_reinterpret_i32", Convert, op(code.OpF32ReinterpretI32)},
	{"f64_reinterpret_i64", Convert, op(code.OpF64ReinterpretI64)},
}

// The sign-extension operators take and return the full-width type even though they only consider its low bits.
var selfExtendCatalogue = []Entry{
	{"i32_extend8_s", SelfExtend, op(code.OpI32Extend8S)},
	{"i32_extend16_s", SelfExtend, op(code.OpI32Extend16S)},
	{"i64_extend8_s", SelfExtend, op(code.OpI64Extend8S)},
	{"i64_extend16_s", SelfExtend, op(code.OpI64Extend16S)},
	{"i64_extend32_s", SelfExtend, op(code.OpI64Extend32S)},
}
