package gauntlet

import "github.com/pgavlin/gauntlet/wasm/code"

// Payload is the memory image of every data operation test. Loads read from it and stores write into it.
const Payload = "I am the very model of a modern Major-Gineral\n" +
	"I've information vegetable, animal, and mineral,\n" +
	"I know the kings of England, and I quote the fights historical\n" +
	"From Marathon to Waterloo, in order categorical;"

// PayloadNickname decorates the names of data operation tests so that they cannot collide with tests from other
// families.
const PayloadNickname = "gineral"

var loadCatalogue = []Entry{
	{"i32_load", Load, op(code.OpI32Load)},
	{"i64_load", Load, op(code.OpI64Load)},
	{"f32_load", Load, op(code.OpF32Load)},
	{"f64_load", Load, op(code.OpF64Load)},
	{"i32_load8_s", Load, op(code.OpI32Load8S)},
	{"i32_load8_u", Load, op(code.OpI32Load8U)},
	{"i32_load16_s", Load, op(code.OpI32Load16S)},
	{"i32_load16_u", Load, op(code.OpI32Load16U)},
	{"i64_load8_s", Load, op(code.OpI64Load8S)},
	{"i64_load8_u", Load, op(code.OpI64Load8U)},
	{"i64_load16_s", Load, op(code.OpI64Load16S)},
	{"i64_load16_u", Load, op(code.OpI64Load16U)},
	{"i64_load32_s", Load, op(code.OpI64Load32S)},
	{"i64_load32_u", Load, op(code.OpI64Load32U)},
}

var storeCatalogue = []Entry{
	{"i32_store", Store, op(code.OpI32Store)},
	{"i64_store", Store, op(code.OpI64Store)},
	{"f32_store", Store, op(code.OpF32Store)},
	{"f64_store", Store, op(code.OpF64Store)},
	{"i32_store8", Store, op(code.OpI32Store8)},
	{"i32_store16", Store, op(code.OpI32Store16)},
	{"i64_store8", Store, op(code.OpI64Store8)},
	{"i64_store16", Store, op(code.OpI64Store16)},
	{"i64_store32", Store, op(code.OpI64Store32)},
}
