package lexical

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractor_Tokens(t *testing.T) {
	req := require.New(t)
	extractor := NewExtractor()

	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name:     "Lowercases and strips punctuation",
			body:     "Hello, WORLD!",
			expected: []string{"hello", "world"},
		},
		{
			name:     "Drops stop words",
			body:     "I am very happy about the weather",
			expected: []string{"happy", "weather"},
		},
		{
			name:     "Drops single-rune leftovers",
			body:     "a b c coffee",
			expected: []string{"coffee"},
		},
		{
			name:     "Export placeholder vocabulary is stopped",
			body:     "image omitted yesterday",
			expected: []string{"yesterday"},
		},
		{
			name:     "Empty body",
			body:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, extractor.Tokens(tt.body))
		})
	}
}

func TestExtractor_Emojis(t *testing.T) {
	req := require.New(t)
	extractor := NewExtractor()

	// Multiplicity preserved: the same emoji twice contributes twice.
	req.Equal([]string{"😂", "😂"}, extractor.Emojis("I love this!! 😂😂"))
	req.Equal([]string{"🎉", "😂", "🎉"}, extractor.Emojis("party 🎉 so funny 😂 again 🎉"))
	req.Empty(extractor.Emojis("no emoji here, just text"))
}

func TestExtractor_Domains(t *testing.T) {
	req := require.New(t)
	extractor := NewExtractor()

	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name:     "Strips scheme path and query",
			body:     "watch https://www.youtube.com/watch?v=dQw4w9WgXcQ now",
			expected: []string{"youtube.com"},
		},
		{
			name:     "Shortener variant ranks as the same domain",
			body:     "https://youtu.be/abc123",
			expected: []string{"youtube.com"},
		},
		{
			name:     "Case-insensitive host with port",
			body:     "dev server http://Example.com:8080/status",
			expected: []string{"example.com"},
		},
		{
			name:     "Bare www domain without scheme",
			body:     "found it on www.reddit.com/r/golang yesterday",
			expected: []string{"reddit.com"},
		},
		{
			name:     "Multiple links keep multiplicity and order",
			body:     "https://medium.com/a then https://medium.com/b",
			expected: []string{"medium.com", "medium.com"},
		},
		{
			name: "No links",
			body: "nothing shared today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, extractor.Domains(tt.body))
		})
	}
}
