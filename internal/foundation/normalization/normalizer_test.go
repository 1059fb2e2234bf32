package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

const (
	colorRed   color = "red"
	colorGreen color = "green"
)

func newColors() *Normalizer[color] {
	return NewNormalizer(map[string]color{
		"Red":   colorRed,
		"green": colorGreen,
	}, colorRed)
}

func TestNormalize(t *testing.T) {
	n := newColors()

	tests := []struct {
		input string
		want  color
	}{
		{"red", colorRed},
		{"  GREEN ", colorGreen},
		{"blue", colorRed},
		{"", colorRed},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalizeWithError(t *testing.T) {
	n := newColors()

	got, err := n.NormalizeWithError("Green")
	require.NoError(t, err)
	assert.Equal(t, colorGreen, got)

	got, err = n.NormalizeWithError("  ")
	require.NoError(t, err)
	assert.Equal(t, colorRed, got)

	_, err = n.NormalizeWithError("blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"blue"`)
	assert.Contains(t, err.Error(), "[green red]")
}

func TestValidKeys_ReturnsCopy(t *testing.T) {
	n := newColors()
	keys := n.ValidKeys()
	assert.Equal(t, []string{"green", "red"}, keys)

	keys[0] = "mutated"
	assert.Equal(t, []string{"green", "red"}, n.ValidKeys())
}
