package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Overview", "overview"},
		{"intro-to-systems", "intro-to-systems"},
		{"Intro to Systems", "intro-to-systems"},
		{"  Ownership & Borrowing!  ", "ownership-borrowing"},
		{"Café Crème", "cafe-creme"},
		{"Traits_and generics", "traits-and-generics"},
		{"Unit 2.1", "unit-2-1"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.in))
		})
	}
}

func TestPrefixed(t *testing.T) {
	assert.Equal(t, "1_1_overview", Prefixed("Overview", "1_1"))
	assert.Equal(t, "3_12_async-await", Prefixed("Async / Await", "3_12"))
	assert.Equal(t, "2_4", Prefixed("!!!", "2_4"))
	assert.Equal(t, "overview", Prefixed("Overview", ""))
}
