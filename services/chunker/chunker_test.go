package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTwoWindows(t *testing.T) {
	text := strings.Repeat("a", 1300)

	chunks := Split(text, 1200, 200)

	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], 1200)
	// Second window starts at 1200-200=1000 and runs to the end.
	assert.Len(t, chunks[1], 300)
}

func TestSplitShortText(t *testing.T) {
	chunks := Split("hello world", 1200, 200)

	require.Len(t, chunks, 1)
	assert.Equal(t, "hello world", chunks[0])
}

func TestSplitOverlapLargerThanWindow(t *testing.T) {
	text := strings.Repeat("x", 500)

	// overlap >= maxChars makes the advance step non-positive; the loop must
	// emit a single chunk and stop instead of hanging.
	chunks := Split(text, 100, 150)

	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0], 100)
}

func TestSplitOverlapEqualToWindow(t *testing.T) {
	chunks := Split(strings.Repeat("y", 400), 100, 100)

	require.Len(t, chunks, 1)
}

func TestSplitEmptyInput(t *testing.T) {
	assert.Empty(t, Split("", 1200, 200))
	assert.Empty(t, Split("   \n\t  ", 1200, 200))
}

func TestSplitNoEmptyChunks(t *testing.T) {
	text := strings.Repeat("word ", 800)

	chunks := Split(text, 300, 50)

	require.NotEmpty(t, chunks)
	for i, c := range chunks {
		assert.NotEmpty(t, c, "chunk %d is empty", i)
		assert.LessOrEqual(t, len(c), 300, "chunk %d exceeds the window size", i)
	}
}

func TestSplitNormalizationIdempotent(t *testing.T) {
	text := "First  line\nsecond\t\tline\n\n" + strings.Repeat("lorem ipsum ", 200)

	direct := Split(text, 250, 40)
	renormalized := Split(Normalize(text), 250, 40)

	assert.Equal(t, direct, renormalized)
}

func TestSplitCoversWholeText(t *testing.T) {
	text := strings.Repeat("0123456789", 150)
	normalized := Normalize(text)

	chunks := Split(text, 200, 30)

	// Stitching consecutive windows back together (dropping each overlap
	// region) must reconstruct the normalized text with no gaps.
	rebuilt := chunks[0]
	for _, c := range chunks[1:] {
		rebuilt = rebuilt[:len(rebuilt)-30] + c
	}
	assert.Equal(t, normalized, rebuilt)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("  a\n\nb\t c  "))
	assert.Equal(t, "", Normalize("\n \t"))
}
