package gauntlet

import (
	"testing"

	"github.com/pgavlin/gauntlet/wasm/code"
	"github.com/stretchr/testify/assert"
)

func TestCatalogueCoverage(t *testing.T) {
	c := ComputeCoverage(Catalogue())

	assert.Empty(t, c.Missing)
	assert.Empty(t, c.Duplicates)
	assert.Empty(t, c.Untestable)
	assert.Equal(t, len(Testable()), c.Covered)
	assert.True(t, c.Complete())
}

func TestCoverageProblems(t *testing.T) {
	entries := []Entry{
		{"i32_eqz", CompareUnary, code.Op(code.OpI32Eqz)},
		{"i32_eqz", CompareUnary, code.Op(code.OpI32Eqz)},
		{"local_get", IntUnary, code.LocalGet(0)},
	}
	c := ComputeCoverage(entries)

	assert.Equal(t, 1, c.Covered)
	assert.Len(t, c.Missing, len(Testable())-1)
	assert.Equal(t, entries[1:2], c.Duplicates)
	assert.Equal(t, entries[2:], c.Untestable)
	assert.False(t, c.Complete())
}
