package generate

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pgavlin/gauntlet/gauntlet"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, fs afero.Fs, env map[string]string, args ...string) (string, error) {
	command := newCommand(fs, env)
	var stdout bytes.Buffer
	command.SetOut(&stdout)
	command.SetArgs(args)
	err := command.Execute()
	return stdout.String(), err
}

func TestGenerateFamily(t *testing.T) {
	fs := afero.NewMemMapFs()
	stdout, err := run(t, fs, nil, "compares")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, len(gauntlet.Compares.Catalogue()))
	assert.Equal(t, "Writing minimal test for i32.eqz", lines[0])
	assert.Equal(t, "Writing minimal test for f64.ge", lines[len(lines)-1])

	text, err := afero.ReadFile(fs, "i32.lt_s.WAT")
	require.NoError(t, err)
	assert.Equal(t, ";; i32.lt_s\n(module\n\t(func (export \"Test\") (param i32 i32) (result i32)\n\tlocal.get 0\n\tlocal.get 1\n\ti32.lt_s\n))", string(text))
}

func TestGenerateFlags(t *testing.T) {
	fs := afero.NewMemMapFs()
	stdout, err := run(t, fs, nil, "-q", "--split", "-o", "out", "--ext", "wat", "-f", "TruncSats")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	exists, err := afero.Exists(fs, filepath.Join("out", "TruncSats", "i64.trunc_sat_f64_u.wat"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGenerateEnv(t *testing.T) {
	fs := afero.NewMemMapFs()
	env := map[string]string{"GAUNTLET_OUT": "env", "GAUNTLET_EXT": "wast"}
	_, err := run(t, fs, env, "-q", "--ext", "wat", "intmath")
	require.NoError(t, err)

	exists, err := afero.Exists(fs, filepath.Join("env", "i32.rotl.wat"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGenerateVerbose(t *testing.T) {
	stdout, err := run(t, afero.NewMemMapFs(), nil, "-v", "truncsats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Writing minimal test for i32.trunc_sat_f32_s\n")
	assert.Contains(t, stdout, `"mnemonic": "i32_trunc_sat_f32_s"`)
}

func TestGenerateUnknownFamily(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := run(t, fs, nil, "simd")
	assert.EqualError(t, err, "unknown family 'simd'")
}
