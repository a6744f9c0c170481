package parser

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chatlens/errors"
)

func testLogger() *slog.Logger {
	// Silencing logs for clean test output
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMatchHeader(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		line     string
		expected time.Time
		rest     string
	}{
		{
			name:     "Bracketed with seconds",
			line:     "[4/3/2023, 09:15:27] Alice: hello",
			expected: time.Date(2023, time.March, 4, 9, 15, 27, 0, time.UTC),
			rest:     "Alice: hello",
		},
		{
			name:     "Bracketed without seconds",
			line:     "[4/3/2023, 09:15] Alice: hello",
			expected: time.Date(2023, time.March, 4, 9, 15, 0, 0, time.UTC),
			rest:     "Alice: hello",
		},
		{
			name:     "Bracketed 12-hour with PM marker",
			line:     "[4/3/2023, 9:15 PM] Alice: hello",
			expected: time.Date(2023, time.March, 4, 21, 15, 0, 0, time.UTC),
			rest:     "Alice: hello",
		},
		{
			name:     "Bracketed 12-hour lowercase marker without space",
			line:     "[4/3/23, 9:15:02am] Alice: hello",
			expected: time.Date(2023, time.March, 4, 9, 15, 2, 0, time.UTC),
			rest:     "Alice: hello",
		},
		{
			name:     "Dash separator",
			line:     "4/3/2023, 21:15 - Alice: hello",
			expected: time.Date(2023, time.March, 4, 21, 15, 0, 0, time.UTC),
			rest:     "Alice: hello",
		},
		{
			name:     "Em dash separator",
			line:     "4/3/2023, 21:15 — Alice: hello",
			expected: time.Date(2023, time.March, 4, 21, 15, 0, 0, time.UTC),
			rest:     "Alice: hello",
		},
		{
			name:     "Colon separator",
			line:     "4/3/2023, 21:15: Alice: hello",
			expected: time.Date(2023, time.March, 4, 21, 15, 0, 0, time.UTC),
			rest:     "Alice: hello",
		},
		{
			name:     "Two-digit year with dash",
			line:     "4/3/23, 08:05 - Bruno: salut",
			expected: time.Date(2023, time.March, 4, 8, 5, 0, 0, time.UTC),
			rest:     "Bruno: salut",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, rest, ok := matchHeader(tt.line)
			req.True(ok, "line should be recognized: %s", tt.line)
			req.Equal(tt.expected, ts)
			req.Equal(tt.rest, rest)
		})
	}

	for _, line := range []string{
		"just a continuation line",
		"4/3/2023 21:15 - missing comma: nope",
		"[not a date] Alice: hello",
		"",
	} {
		_, _, ok := matchHeader(line)
		req.False(ok, "line should not be recognized: %q", line)
	}
}

func TestParser_Parse_Reassembly(t *testing.T) {
	req := require.New(t)
	p, err := NewParser(testLogger())
	req.NoError(err)

	raw := strings.Join([]string{
		"[4/3/2023, 09:15:00] Alice: first line",
		"second line",
		"third line",
		"[4/3/2023, 09:16:00] Bruno: short",
	}, "\n")

	messages, stats, err := p.Parse(raw)
	req.NoError(err)
	req.Len(messages, 2)
	req.Equal("first line\nsecond line\nthird line", messages[0].Body)
	req.Equal("short", messages[1].Body)
	req.EqualValues(2, stats.MessagesParsed)
	req.EqualValues(0, stats.Warnings())
}

func TestParser_Parse_DiscardsPreamble(t *testing.T) {
	req := require.New(t)
	p, err := NewParser(testLogger())
	req.NoError(err)

	raw := strings.Join([]string{
		"export metadata before any header",
		"[4/3/2023, 09:15:00] Alice: hello",
	}, "\n")

	messages, stats, err := p.Parse(raw)
	req.NoError(err)
	req.Len(messages, 1)
	req.EqualValues(1, stats.DiscardedPrefix)
}

func TestParser_Parse_SystemMessages(t *testing.T) {
	req := require.New(t)
	p, err := NewParser(testLogger())
	req.NoError(err)

	tests := []struct {
		name string
		line string
	}{
		{"No author pattern", "[4/3/2023, 09:15:00] Alice added Bruno"},
		{"Subject change keeps colon shape", "[4/3/2023, 09:15:00] Alice changed the subject to: Trips"},
		{"Encryption notice with author prefix", "[4/3/2023, 09:15:00] Alice: Messages and calls are end-to-end encrypted. No one outside of this chat can read them."},
		{"Invisible marks around notice", "[4/3/2023, 09:15:00] ‎Alice left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages, _, err := p.Parse(tt.line)
			req.NoError(err)
			req.Len(messages, 1)
			req.True(messages[0].IsSystem, "expected system message for %q", tt.line)
			req.Empty(messages[0].Author)
		})
	}
}

func TestParser_Parse_MediaPlaceholders(t *testing.T) {
	req := require.New(t)
	p, err := NewParser(testLogger())
	req.NoError(err)

	raw := strings.Join([]string{
		"[4/3/2023, 09:15:00] Alice: <Media omitted>",
		"[4/3/2023, 09:16:00] Bruno: image omitted",
		"[4/3/2023, 09:17:00] Alice: This message was deleted",
		"[4/3/2023, 09:18:00] Bruno: a normal message",
	}, "\n")

	messages, stats, err := p.Parse(raw)
	req.NoError(err)
	req.Len(messages, 4)
	req.True(messages[0].IsMedia)
	req.True(messages[1].IsMedia)
	req.True(messages[2].IsMedia)
	req.False(messages[3].IsMedia)
	// Placeholders stay ordinary messages for counting purposes.
	req.Equal("Alice", messages[0].Author)
	req.EqualValues(4, stats.MessagesParsed)
	req.EqualValues(3, stats.MediaMessages)
}

func TestParser_Parse_OutOfOrderTimestamps(t *testing.T) {
	req := require.New(t)
	p, err := NewParser(testLogger())
	req.NoError(err)

	raw := strings.Join([]string{
		"[4/3/2023, 10:00:00] Alice: later",
		"[4/3/2023, 09:00:00] Bruno: earlier",
	}, "\n")

	messages, stats, err := p.Parse(raw)
	req.NoError(err)
	// Anomaly, not a hard error: both messages survive in file order.
	req.Len(messages, 2)
	req.EqualValues(1, stats.OutOfOrder)
}

func TestParser_Parse_NoRecognizedFormat(t *testing.T) {
	req := require.New(t)
	p, err := NewParser(testLogger())
	req.NoError(err)

	_, _, err = p.Parse("these lines\nlook nothing\nlike a chat export")
	req.ErrorIs(err, errors.ErrNoRecognizedFormat)
}

func TestParser_Parse_BlankInput(t *testing.T) {
	req := require.New(t)
	p, err := NewParser(testLogger())
	req.NoError(err)

	for _, raw := range []string{"", "\n\n\n", "   \n  \t \n"} {
		messages, stats, err := p.Parse(raw)
		req.NoError(err)
		req.Empty(messages)
		req.EqualValues(0, stats.Warnings())
	}
}
