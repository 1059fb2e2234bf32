package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractImages(t *testing.T) {
	body := []byte("# Title\n\nSome text.\n\n![diagram](images/diagram.png)\n\n" +
		"A [link](https://example.com) and ![logo](https://example.com/logo.svg).\n\n" +
		"```md\n![not an image](code.png)\n```\n")

	images := ExtractImages(body)
	require.Len(t, images, 2)

	assert.Equal(t, "images/diagram.png", images[0].Destination)
	assert.Equal(t, 5, images[0].Line)
	assert.True(t, images[0].IsLocal())
	assert.Equal(t, "diagram.png", images[0].BaseName())

	assert.Equal(t, "https://example.com/logo.svg", images[1].Destination)
	assert.False(t, images[1].IsLocal())
}

func TestImage_BaseNameStripsQuery(t *testing.T) {
	img := Image{Destination: "./images/chart.png?raw=true#top"}
	assert.Equal(t, "chart.png", img.BaseName())
	assert.True(t, img.IsLocal())
	assert.False(t, Image{Destination: "//cdn.example.com/x.png"}.IsLocal())
}

func TestExtractImages_Empty(t *testing.T) {
	assert.Empty(t, ExtractImages(nil))
	assert.Empty(t, ExtractImages([]byte("no images here")))
}
