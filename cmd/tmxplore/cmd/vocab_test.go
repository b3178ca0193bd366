package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabCommandStructure(t *testing.T) {
	assert.NotNil(t, vocabCmd)
	assert.Equal(t, "vocab", vocabCmd.Use)
	assert.NotEmpty(t, vocabCmd.Short)
	assert.NotEmpty(t, vocabCmd.Long)
	assert.NotNil(t, vocabCmd.RunE)
}

func TestVocabCommandFlags(t *testing.T) {
	flags := vocabCmd.Flags()

	maxPairsFlag := flags.Lookup("max-pairs")
	require.NotNil(t, maxPairsFlag)
	assert.Equal(t, "0", maxPairsFlag.DefValue)

	topWordsFlag := flags.Lookup("top-words")
	require.NotNil(t, topWordsFlag)
	assert.Equal(t, "0", topWordsFlag.DefValue)
}

func TestVocabIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "vocab" {
			found = true
			break
		}
	}
	assert.True(t, found, "vocab command should be added to root command")
}

func TestVocabCmd_Execute(t *testing.T) {
	defer resetFlags()
	corpus := writeTestCorpus(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{
		"vocab",
		"--corpus", corpus,
		"--top-words", "5",
		"--log-level", "error",
	})

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "=== Top words ===")
	assert.Contains(t, out, "en: ")
	assert.Contains(t, out, "tokens")
	assert.Contains(t, out, "unique")
	// "bonjour" appears in both fixture targets.
	assert.Contains(t, out, "bonjour (2)")
}
