package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPlain(t *testing.T) {
	out, err := Text("notes.txt", []byte("plain text content"))

	require.NoError(t, err)
	assert.Equal(t, "plain text content", out)
}

func TestTextUnknownExtensionFallsBack(t *testing.T) {
	out, err := Text("notes.log", []byte("some log output"))

	require.NoError(t, err)
	assert.Equal(t, "some log output", out)
}

func TestTextMarkdownStripsStructure(t *testing.T) {
	source := "# Photosynthesis\n\nPlants convert *light* into **energy**.\n\n" +
		"- chlorophyll\n- sunlight\n\n```\nCO2 + H2O\n```\n"

	out, err := Text("chapter.md", []byte(source))

	require.NoError(t, err)
	assert.Contains(t, out, "Photosynthesis")
	assert.Contains(t, out, "Plants convert light into energy")
	assert.Contains(t, out, "chlorophyll")
	assert.Contains(t, out, "CO2 + H2O")
	assert.NotContains(t, out, "#")
	assert.NotContains(t, out, "*")
	assert.NotContains(t, out, "```")
}

func TestTextInvalidPDF(t *testing.T) {
	_, err := Text("broken.pdf", []byte("not a pdf at all"))

	assert.Error(t, err)
}
