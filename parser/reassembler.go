package parser

import (
	"strings"
	"time"
)

// logicalUnit is a reassembled message: one recognized header line plus
// any continuation lines that followed it.
type logicalUnit struct {
	timestamp time.Time
	rest      string
	extra     []string
}

// reassemble groups physical lines into logical units. A line matching a
// header matcher starts a new unit; anything else continues the previous
// one. Continuation lines appearing before any header are export preamble
// and are discarded.
func reassemble(raw string, stats *Stats) []logicalUnit {
	var units []logicalUnit
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		ts, rest, ok := matchHeader(stripInvisible(line))
		if ok {
			units = append(units, logicalUnit{timestamp: ts, rest: rest})
			continue
		}
		if len(units) == 0 {
			stats.IncrDiscardedPrefix()
			continue
		}
		last := &units[len(units)-1]
		last.extra = append(last.extra, stripInvisible(line))
	}
	return units
}

// body joins the header remainder's text with its continuation lines.
func (u logicalUnit) body(headText string) string {
	if len(u.extra) == 0 {
		return headText
	}
	parts := append([]string{headText}, u.extra...)
	return strings.Join(parts, "\n")
}
