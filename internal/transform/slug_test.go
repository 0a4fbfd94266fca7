package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"basic", "Hello, World! 2025", "hello-world-2025"},
		{"already clean", "langar-aid", "langar-aid"},
		{"punctuation stripped", "Women's Empowerment: The Success of No Spot Initiative", "womens-empowerment-the-success-of-no-spot-initiative"},
		{"whitespace collapsed", "  Punjab   Floods \t Relief  ", "punjab-floods-relief"},
		{"empty", "", ""},
		{"only punctuation", "!!!???", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slug(tc.title))
		})
	}
}

func TestSlugCapsLength(t *testing.T) {
	long := strings.Repeat("word ", 60)
	got := Slug(long)
	assert.Len(t, got, 100)
	assert.False(t, strings.HasPrefix(got, "-"))
}

func TestSlugCollapsesHyphenRuns(t *testing.T) {
	assert.Equal(t, "a-b", Slug("a - b"))
}
