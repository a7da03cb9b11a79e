package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "basemapper [directory] [output-file] [ignore-file]", cmd.Use)
	assert.True(t, cmd.SilenceUsage)

	for _, name := range []string{"raw", "gitignore", "show-skipped", "verbose", "quiet", "no-color"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s should be registered", name)
	}
}

func TestRootCommandRejectsExtraArguments(t *testing.T) {
	cmd := NewRootCommand()
	err := cmd.Args(cmd, []string{"dir", "out.md", ".bmignore", "extra"})
	require.Error(t, err)

	assert.NoError(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"dir", "out.md", ".bmignore"}))
}
