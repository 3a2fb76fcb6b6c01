package gauntlet

import (
	"bytes"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/guregu/null.v3"
)

func readFile(t *testing.T, fs afero.Fs, path string) string {
	b, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(b)
}

func TestGenerateAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	core, logs := observer.New(zapcore.InfoLevel)

	g := NewGenerator(fs, NewConfig(), zap.New(core))
	require.NoError(t, g.Generate(Families()...))

	entries := Catalogue()
	require.Len(t, logs.All(), len(entries))
	for i, e := range entries {
		test := MustResolve(e)
		assert.Equal(t, "Writing minimal test for "+test.Name, logs.All()[i].Message)
		assert.Equal(t, test.Text(), readFile(t, fs, g.Path(test)))
	}
}

func TestGenerateScenarios(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := NewGenerator(fs, NewConfig(), nil)
	require.NoError(t, g.Generate(Compares, DataOps, Conversions))

	eqz := readFile(t, fs, "i32.eqz.WAT")
	assert.Contains(t, eqz, "(param i32) (result i32)")
	assert.Contains(t, eqz, "\ti32.eqz\n")

	load := readFile(t, fs, "i64.load32_u(gineral).WAT")
	assert.Contains(t, load, "(memory (data "+payloadLiteral+"))")
	assert.Contains(t, load, "(param i32) (result i64)")
	assert.Contains(t, load, "\ti64.load32_u\n")

	convert := readFile(t, fs, "f32.convert_i64_u.WAT")
	assert.Contains(t, convert, "(param i64) (result f32)")
	assert.Contains(t, convert, "\tf32.convert_i64_u\n")

	extend := readFile(t, fs, "i64.extend32_s.WAT")
	assert.Contains(t, extend, "(param i64) (result i64)")

	// Families that were not requested are not written.
	exists, err := afero.Exists(fs, "f32.add.WAT")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDataOpsSharePayload(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := NewGenerator(fs, NewConfig(), nil)
	require.NoError(t, g.Generate(DataOps))

	memory := "\t(memory (data " + payloadLiteral + "))\n"
	for _, e := range DataOps.Catalogue() {
		text := readFile(t, fs, g.Path(MustResolve(e)))
		lines := strings.SplitAfter(text, "\n")
		require.True(t, len(lines) > 2, e.Mnemonic)
		assert.Equal(t, memory, lines[2], e.Mnemonic)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := NewGenerator(fs, NewConfig(), nil)

	require.NoError(t, g.Generate(Families()...))
	first := map[string]string{}
	for _, e := range Catalogue() {
		path := g.Path(MustResolve(e))
		first[path] = readFile(t, fs, path)
	}

	// Overwrite with junk that is longer than any module to make sure files are truncated.
	for path := range first {
		require.NoError(t, afero.WriteFile(fs, path, bytes.Repeat([]byte("x"), 4096), 0644))
	}

	require.NoError(t, g.Generate(Families()...))
	for path, text := range first {
		assert.Equal(t, text, readFile(t, fs, path), path)
	}
}

func TestGenerateSplit(t *testing.T) {
	fs := afero.NewMemMapFs()
	config := Config{
		Out:   null.StringFrom("gauntlet"),
		Ext:   null.StringFrom(".wat"),
		Split: null.BoolFrom(true),
	}
	g := NewGenerator(fs, config, nil)
	require.NoError(t, g.Generate(TruncSats, DataOps))

	for _, path := range []string{
		filepath.Join("gauntlet", "TruncSats", "i32.trunc_sat_f32_s.wat"),
		filepath.Join("gauntlet", "DataOps", "i32.load(gineral).wat"),
		filepath.Join("gauntlet", "DataOps", "i64.store32(gineral).wat"),
	} {
		exists, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.True(t, exists, path)
	}
}

func TestGenerateNoExtension(t *testing.T) {
	g := NewGenerator(afero.NewMemMapFs(), Config{Ext: null.NewString("", true)}, nil)
	assert.Equal(t, "i32.add", g.Path(MustResolve(findEntry(t, "i32_add"))))
}

func TestGenerateCollision(t *testing.T) {
	fs := afero.NewMemMapFs()
	core, logs := observer.New(zapcore.InfoLevel)
	g := NewGenerator(fs, NewConfig(), zap.New(core))

	err := g.Generate(TruncSats, TruncSats)

	var collision *CollisionError
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "i32.trunc_sat_f32_s.WAT", collision.Path)
	assert.Len(t, logs.All(), len(TruncSats.Catalogue()))
}

func TestGenerateFilesystemError(t *testing.T) {
	base := afero.NewMemMapFs()
	g := NewGenerator(afero.NewReadOnlyFs(base), NewConfig(), nil)

	err := g.Generate(Compares)
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.EPERM)

	exists, err := afero.Exists(base, "i32.eqz.WAT")
	require.NoError(t, err)
	assert.False(t, exists)
}
