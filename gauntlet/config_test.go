package gauntlet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestGetConsolidatedConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := GetConsolidatedConfig(nil, Config{})
		require.NoError(t, err)
		assert.Equal(t, ".", config.Out.String)
		assert.Equal(t, "WAT", config.Ext.String)
		assert.False(t, config.Split.Bool)
	})

	t.Run("env", func(t *testing.T) {
		env := map[string]string{
			"GAUNTLET_OUT":   "out",
			"GAUNTLET_SPLIT": "true",
		}
		config, err := GetConsolidatedConfig(env, Config{})
		require.NoError(t, err)
		assert.Equal(t, null.StringFrom("out"), config.Out)
		assert.Equal(t, "WAT", config.Ext.String)
		assert.Equal(t, null.BoolFrom(true), config.Split)
	})

	t.Run("cli overrides env", func(t *testing.T) {
		env := map[string]string{
			"GAUNTLET_OUT": "out",
			"GAUNTLET_EXT": "wast",
		}
		config, err := GetConsolidatedConfig(env, Config{Out: null.StringFrom("cli")})
		require.NoError(t, err)
		assert.Equal(t, "cli", config.Out.String)
		assert.Equal(t, "wast", config.Ext.String)
	})

	t.Run("bad env", func(t *testing.T) {
		_, err := GetConsolidatedConfig(map[string]string{"GAUNTLET_SPLIT": "sometimes"}, Config{})
		assert.Error(t, err)
	})
}
