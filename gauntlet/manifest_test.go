package gauntlet

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/jszwec/csvutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteManifest(t *testing.T) {
	tests, err := Tests(DataOps, TruncSats)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteManifest(&buf, tests))

	type row struct {
		Family   string `csv:"family"`
		Mnemonic string `csv:"mnemonic"`
		Name     string `csv:"name"`
		Params   string `csv:"params"`
		Result   string `csv:"result"`
		Opcode   string `csv:"opcode"`
		Memory   bool   `csv:"memory"`
	}
	var rows []row
	require.NoError(t, csvutil.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, len(tests))

	assert.Equal(t, row{"dataops", "i32_load", "i32.load(gineral)", "i32", "i32", "0x28", true}, rows[0])
	assert.Equal(t, row{"dataops", "i32_store", "i32.store(gineral)", "i32 i32", "", "0x36", true}, rows[14])
	assert.Equal(t, row{"truncsats", "i64_trunc_sat_f64_u", "i64.trunc_sat_f64_u", "f64", "i64", "0xfc 0x07", false}, rows[len(rows)-1])

	header, err := csv.NewReader(&buf).Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"family", "mnemonic", "operator", "name", "params", "result", "opcode", "memory"}, header)
}
