package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMatch(t *testing.T) {
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"¿ else like ¿", "Something else like that", "--extract"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "score:    1.0000")
	assert.Contains(t, out.String(), "distance: 0")
	assert.Contains(t, out.String(), `variables: ["Something" "that"]`)
}
