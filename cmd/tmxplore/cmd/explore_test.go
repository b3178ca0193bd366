package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestCorpus writes a small en/fr TMX document and returns its path.
func writeTestCorpus(t *testing.T) string {
	t.Helper()
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<tmx version="1.4">
  <header srclang="en" datatype="plaintext"/>
  <body>
    <tu>
      <tuv xml:lang="en"><seg>Hello world</seg></tuv>
      <tuv xml:lang="fr"><seg>Bonjour le monde</seg></tuv>
    </tu>
    <tu>
      <tuv xml:lang="en"><seg>Good morning everyone</seg></tuv>
      <tuv xml:lang="fr"><seg>Bonjour tout le monde</seg></tuv>
    </tu>
    <tu>
      <tuv xml:lang="en"><seg>See you soon</seg></tuv>
      <tuv xml:lang="fr"><seg>A bientot</seg></tuv>
    </tu>
  </body>
</tmx>`
	path := filepath.Join(t.TempDir(), "corpus.tmx")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

// resetFlags restores root and command flag variables mutated by an
// execution test.
func resetFlags() {
	cfgFile = ""
	logLevel = ""
	logFormat = ""
	corpusPath = ""
	sourceLang = ""
	targetLang = ""
	exploreMaxPairs = 20000
	exploreSamples = 0
	exploreBuckets = 0
	exploreTopWords = 25
	statsMaxPairs = 0
	ratiosMaxPairs = 0
	ratiosTopRatios = 0
	histogramMaxPairs = 0
	histogramBuckets = 0
	vocabMaxPairs = 0
	vocabTopWords = 0
	sampleMaxPairs = 0
	sampleCount = 0
	rootCmd.SetArgs(nil)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
}

func TestExploreCommandStructure(t *testing.T) {
	assert.NotNil(t, exploreCmd)
	assert.Equal(t, "explore", exploreCmd.Use)
	assert.NotEmpty(t, exploreCmd.Short)
	assert.NotEmpty(t, exploreCmd.Long)
	assert.NotNil(t, exploreCmd.RunE)
}

func TestExploreCommandFlags(t *testing.T) {
	flags := exploreCmd.Flags()

	maxPairsFlag := flags.Lookup("max-pairs")
	require.NotNil(t, maxPairsFlag)
	assert.Equal(t, "20000", maxPairsFlag.DefValue)

	topWordsFlag := flags.Lookup("top-words")
	require.NotNil(t, topWordsFlag)
	assert.Equal(t, "25", topWordsFlag.DefValue)

	samplesFlag := flags.Lookup("samples")
	require.NotNil(t, samplesFlag)
	assert.Equal(t, "0", samplesFlag.DefValue)

	bucketsFlag := flags.Lookup("buckets")
	require.NotNil(t, bucketsFlag)
	assert.Equal(t, "0", bucketsFlag.DefValue)
}

func TestExploreIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "explore" {
			found = true
			break
		}
	}
	assert.True(t, found, "explore command should be added to root command")
}

func TestExploreCommandExample(t *testing.T) {
	assert.Contains(t, exploreCmd.Long, "Example:")
	assert.Contains(t, exploreCmd.Long, "tmxplore explore")
}

func TestExploreCmd_Execute(t *testing.T) {
	defer resetFlags()
	corpus := writeTestCorpus(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{
		"explore",
		"--corpus", corpus,
		"--max-pairs", "2",
		"--samples", "2",
		"--log-level", "error",
	})

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Loading up to 2 pairs from "+corpus)
	assert.Contains(t, out, "Loaded 2 pairs.")

	// All five reports, in order.
	headers := []string{
		"=== Basic statistics ===",
		"=== Length ratios (fr/en) ===",
		"=== Sentence length (words) distribution ===",
		"=== Top words ===",
		"=== Sample pairs ===",
	}
	last := -1
	for _, h := range headers {
		idx := strings.Index(out, h)
		require.GreaterOrEqual(t, idx, 0, h)
		assert.Greater(t, idx, last, h)
		last = idx
	}
	assert.Contains(t, out, "Number of sentence pairs: 2")
}

func TestExploreCmd_Execute_MissingCorpus(t *testing.T) {
	defer resetFlags()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{
		"explore",
		"--corpus", filepath.Join(t.TempDir(), "absent.tmx"),
		"--log-level", "error",
	})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exploration failed")
}

func TestExploreCmd_Execute_SameLanguages(t *testing.T) {
	defer resetFlags()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{
		"explore",
		"--source-lang", "en",
		"--target-lang", "en",
	})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
