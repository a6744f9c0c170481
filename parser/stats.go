package parser

import "sync/atomic"

// Stats counts parse anomalies. Anomalies are recovered locally and never
// abort the job; the counters surface them to the caller as warnings.
type Stats struct {
	MessagesParsed  uint64
	SystemMessages  uint64
	MediaMessages   uint64
	SkippedLines    uint64
	DiscardedPrefix uint64
	OutOfOrder      uint64
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) IncrMessagesParsed() {
	atomic.AddUint64(&s.MessagesParsed, 1)
}

func (s *Stats) IncrSystemMessages() {
	atomic.AddUint64(&s.SystemMessages, 1)
}

func (s *Stats) IncrMediaMessages() {
	atomic.AddUint64(&s.MediaMessages, 1)
}

func (s *Stats) IncrSkippedLines() {
	atomic.AddUint64(&s.SkippedLines, 1)
}

func (s *Stats) IncrDiscardedPrefix() {
	atomic.AddUint64(&s.DiscardedPrefix, 1)
}

func (s *Stats) IncrOutOfOrder() {
	atomic.AddUint64(&s.OutOfOrder, 1)
}

// Warnings is the total of recovered anomalies.
func (s *Stats) Warnings() uint64 {
	return atomic.LoadUint64(&s.SkippedLines) +
		atomic.LoadUint64(&s.DiscardedPrefix) +
		atomic.LoadUint64(&s.OutOfOrder)
}
