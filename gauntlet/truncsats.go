package gauntlet

import "github.com/pgavlin/gauntlet/wasm/code"

var truncSatCatalogue = []Entry{
	{"i32_trunc_sat_f32_s", TruncSat, code.Prefixed(code.OpI32TruncSatF32S)},
	{"i32_trunc_sat_f32_u", TruncSat, code.Prefixed(code.OpI32TruncSatF32U)},
	{"i32_trunc_sat_f64_s", TruncSat, code.Prefixed(code.OpI32TruncSatF64S)},
	{"i32_trunc_sat_f64_u", TruncSat, code.Prefixed(code.OpI32TruncSatF64U)},
	{"i64_trunc_sat_f32_s", TruncSat, code.Prefixed(code.OpI64TruncSatF32S)},
	{"i64_trunc_sat_f32_u", TruncSat, code.Prefixed(code.OpI64TruncSatF32U)},
	{"i64_trunc_sat_f64_s", TruncSat, code.Prefixed(code.OpI64TruncSatF64S)},
	{"i64_trunc_sat_f64_u", TruncSat, code.Prefixed(code.OpI64TruncSatF64U)},
}
