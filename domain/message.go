// Package domain contains core concepts of the analysis engine.
// This file defines Message records and participant ordering rules.
// Messages are immutable once parsed; no parsing, runtime or I/O logic here.
package domain

import "time"

// Message represents one immutable logical chat message: a header line
// plus any continuation lines, newline-joined.
type Message struct {
	Timestamp time.Time
	Author    string // empty for system/service events
	Body      string
	IsSystem  bool
	IsMedia   bool // attachment placeholder: counted, never tokenized
}

// Participants returns the distinct non-system authors in file order of
// first appearance. The order is load-bearing: every per-participant list
// in the report aligns to it, and the presentation layer indexes colors
// by position.
func Participants(messages []Message) []string {
	seen := make(map[string]struct{}, 8)
	var ordered []string
	for _, m := range messages {
		if m.IsSystem || m.Author == "" {
			continue
		}
		if _, ok := seen[m.Author]; ok {
			continue
		}
		seen[m.Author] = struct{}{}
		ordered = append(ordered, m.Author)
	}
	return ordered
}

// CountByAuthor counts non-system messages per author.
func CountByAuthor(messages []Message) map[string]int {
	counts := make(map[string]int, 8)
	for _, m := range messages {
		if m.IsSystem {
			continue
		}
		counts[m.Author]++
	}
	return counts
}
