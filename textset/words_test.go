package textset

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/paraset/jtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBase(t *testing.T) jtree.Tree[string] {
	t.Helper()
	base, err := jtree.New(jtree.Ordered[string]())
	require.NoError(t, err)
	return base
}

func TestWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paraset")
	defer teardown()
	//
	text := "The quick brown fox jumps over the lazy dog. The dog sleeps!"
	set, err := Words(newBase(t), strings.NewReader(text), Options{})
	require.NoError(t, err)
	require.NoError(t, set.Check())
	assert.Equal(t, []string{"The", "brown", "dog", "fox", "jumps", "lazy", "over",
		"quick", "sleeps", "the"}, set.InOrder())
}

func TestWordsFolded(t *testing.T) {
	text := "The quick (brown) fox, the QUICK dog."
	set, err := Words(newBase(t), strings.NewReader(text), Options{Fold: true, MinLen: 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"brown", "quick"}, set.InOrder())
}

func TestWordsAddsToBase(t *testing.T) {
	base := newBase(t).Build("alpha", "omega")
	set, err := Words(base, strings.NewReader("beta alpha\ngamma"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma", "omega"}, set.InOrder())
	assert.Equal(t, []string{"alpha", "omega"}, base.InOrder())
}

func TestWordsEmptyText(t *testing.T) {
	set, err := Words(newBase(t), strings.NewReader("  ... \n"), Options{})
	require.NoError(t, err)
	assert.True(t, set.IsEmpty())
}

var errBroken = errors.New("broken reader")

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errBroken
}

func TestWordsReaderError(t *testing.T) {
	_, err := Words(newBase(t), io.MultiReader(strings.NewReader("some words "), brokenReader{}), Options{})
	assert.ErrorIs(t, err, errBroken)
}

func TestVocabulary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paraset")
	defer teardown()
	//
	texts := []io.Reader{
		strings.NewReader("one two three"),
		strings.NewReader("three four"),
		strings.NewReader("Five, six; one."),
		strings.NewReader(""),
		strings.NewReader("seven"),
	}
	voc, err := Vocabulary(context.Background(), newBase(t), Options{Fold: true}, texts...)
	require.NoError(t, err)
	require.NoError(t, voc.Check())
	assert.Equal(t, []string{"five", "four", "one", "seven", "six", "three", "two"}, voc.InOrder())
}

func TestVocabularyWithoutTexts(t *testing.T) {
	base := newBase(t).Build("keep")
	voc, err := Vocabulary(context.Background(), base, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, voc.InOrder())
}

func TestVocabularyFailsOnFirstError(t *testing.T) {
	texts := []io.Reader{
		strings.NewReader("fine text"),
		brokenReader{},
	}
	_, err := Vocabulary(context.Background(), newBase(t), Options{}, texts...)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBroken)
	assert.Contains(t, err.Error(), "text #1")
}

func TestVocabularyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Vocabulary(ctx, newBase(t), Options{}, strings.NewReader("never read"))
	assert.ErrorIs(t, err, context.Canceled)
}
