package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSubcommands(t *testing.T) {
	root := configureCLI()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"generate", "list", "coverage"})
}

func TestUnknownFamilyFails(t *testing.T) {
	root := configureCLI()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"list", "branching"})

	err := root.Execute()
	require.Error(t, err)
	assert.Equal(t, "unknown family 'branching'", err.Error())
}
