// Package parser turns a raw chat export into an ordered sequence of
// immutable domain.Message records. Export formats are irregular
// (multi-line messages, locale-dependent timestamps, service messages,
// attachment placeholders), so the header grammar is an ordered set of
// matchers tried in sequence, first match wins.
package parser

import (
	"regexp"
	"strings"
	"time"
)

// headerMatcher recognizes one timestamp header convention. The regexp
// captures (date, time, rest); the layouts are tried in order against
// "date time".
type headerMatcher struct {
	name    string
	re      *regexp.Regexp
	layouts []string
}

// Header separators vary by app version: "-", en dash, em dash, or a
// bare colon. Dates are day-first, matching the exporter's locale.
var headerMatchers = []headerMatcher{
	{
		name: "bracketed",
		re:   regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}),\s(\d{1,2}:\d{2}(?::\d{2})?(?:\s?[AaPp][Mm])?)\]\s(.*)$`),
		layouts: []string{
			"2/1/2006 15:04:05",
			"2/1/2006 15:04",
			"2/1/06 15:04:05",
			"2/1/06 15:04",
			"2/1/2006 3:04:05 PM",
			"2/1/2006 3:04 PM",
			"2/1/06 3:04:05 PM",
			"2/1/06 3:04 PM",
		},
	},
	{
		name: "separator",
		re:   regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),\s(\d{1,2}:\d{2}(?::\d{2})?(?:\s?[AaPp][Mm])?)(?:\s[-–—]\s|:\s)(.*)$`),
		layouts: []string{
			"2/1/2006 15:04",
			"2/1/06 15:04",
			"2/1/2006 15:04:05",
			"2/1/06 15:04:05",
			"2/1/2006 3:04 PM",
			"2/1/06 3:04 PM",
			"2/1/2006 3:04:05 PM",
			"2/1/06 3:04:05 PM",
		},
	},
}

// matchHeader tries every matcher in order and returns the parsed
// timestamp plus the author/body remainder.
func matchHeader(line string) (time.Time, string, bool) {
	for _, m := range headerMatchers {
		groups := m.re.FindStringSubmatch(line)
		if groups == nil {
			continue
		}
		stamp := groups[1] + " " + normalizeClock(groups[2])
		for _, layout := range m.layouts {
			ts, err := time.Parse(layout, stamp)
			if err == nil {
				return ts, groups[3], true
			}
		}
	}
	return time.Time{}, "", false
}

// normalizeClock fixes the clock part for time.Parse: uppercase AM/PM
// markers and a regular space before them (iOS exports use a narrow
// no-break space).
func normalizeClock(clock string) string {
	clock = strings.ReplaceAll(clock, " ", " ")
	upper := strings.ToUpper(clock)
	if !strings.HasSuffix(upper, "AM") && !strings.HasSuffix(upper, "PM") {
		return clock
	}
	marker := upper[len(upper)-2:]
	rest := strings.TrimRight(clock[:len(clock)-2], " ")
	return rest + " " + marker
}
