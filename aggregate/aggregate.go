// Package aggregate holds the independent statistics builders that
// consume the parsed message sequence. Each aggregator implements
// contract.Aggregator, folds into its own output structure only, and can
// therefore run concurrently with the others over the same read-only
// slice.
package aggregate

import (
	"math"
	"sort"
	"time"
)

// Fixed design constants. They materially affect report values and test
// fixtures, so they are exported and never configurable per request.
const (
	// IdleGap is the silence after which the next message starts a new
	// conversation.
	IdleGap = 60 * time.Minute
	// ResponseCap bounds what still counts as a response; longer gaps are
	// new conversations, not slow replies.
	ResponseCap = 720 * time.Minute

	TopWords   = 100
	TopEmojis  = 5
	TopDomains = 5
)

// round1 keeps one decimal, the precision the report exposes for
// day-rate and percentage style fields.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ranked is one entry of a frequency ranking.
type ranked struct {
	Key   string
	Count int
}

// rankedCounter counts string occurrences while remembering first
// occurrence order, the deterministic tie-breaker for equal counts.
type rankedCounter struct {
	counts map[string]int
	first  map[string]int
	next   int
}

func newRankedCounter() *rankedCounter {
	return &rankedCounter{
		counts: make(map[string]int),
		first:  make(map[string]int),
	}
}

func (c *rankedCounter) Add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.first[key] = c.next
		c.next++
	}
	c.counts[key]++
}

// Top returns the n most frequent keys, descending by count, ties broken
// by first occurrence.
func (c *rankedCounter) Top(n int) []ranked {
	out := make([]ranked, 0, len(c.counts))
	for key, count := range c.counts {
		out = append(out, ranked{Key: key, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return c.first[out[i].Key] < c.first[out[j].Key]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
