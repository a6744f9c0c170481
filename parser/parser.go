package parser

import (
	"log/slog"
	"strings"

	"chatlens/domain"
	"chatlens/errors"
)

// Parser converts a raw transcript into the ordered message sequence the
// aggregation pipeline consumes. It is safe for concurrent use: all state
// mutated during a parse lives in the per-call Stats.
type Parser struct {
	log           *slog.Logger
	systemSet     phraseSet
	systemBodySet phraseSet
	mediaSet      phraseSet
}

func NewParser(log *slog.Logger) (*Parser, error) {
	systemSet, err := newPhraseSet(systemPhrases)
	if err != nil {
		return nil, err
	}
	systemBodySet, err := newPhraseSet(systemBodyPhrases)
	if err != nil {
		return nil, err
	}
	mediaSet, err := newPhraseSet(mediaPhrases)
	if err != nil {
		return nil, err
	}
	return &Parser{log: log, systemSet: systemSet, systemBodySet: systemBodySet, mediaSet: mediaSet}, nil
}

// Parse reassembles and types every logical unit of the transcript.
//
// Recovery policy: individual malformed lines are skipped and counted,
// out-of-order timestamps are counted but kept. The only fatal case is a
// non-blank input in which no header was recognized at all.
func (p *Parser) Parse(raw string) ([]domain.Message, *Stats, error) {
	stats := NewStats()
	units := reassemble(raw, stats)

	if len(units) == 0 {
		if stats.DiscardedPrefix > 0 {
			return nil, stats, errors.ErrNoRecognizedFormat
		}
		// Blank input: zero messages, structurally valid empty result.
		return []domain.Message{}, stats, nil
	}

	messages := make([]domain.Message, 0, len(units))
	for _, unit := range units {
		msg, ok := p.toMessage(unit, stats)
		if !ok {
			stats.IncrSkippedLines()
			continue
		}
		if len(messages) > 0 && msg.Timestamp.Before(messages[len(messages)-1].Timestamp) {
			p.log.Debug("Out-of-order timestamp", "at", msg.Timestamp)
			stats.IncrOutOfOrder()
		}
		messages = append(messages, msg)
	}

	p.log.Info("Transcript parsed",
		"messages", stats.MessagesParsed,
		"system", stats.SystemMessages,
		"media", stats.MediaMessages,
		"warnings", stats.Warnings())
	return messages, stats, nil
}

// toMessage splits a logical unit's remainder into author and body. The
// absence of the "author: body" shape, or a service phrase in the author
// position, marks a system event.
func (p *Parser) toMessage(unit logicalUnit, stats *Stats) (domain.Message, bool) {
	rest := strings.TrimSpace(unit.rest)
	if rest == "" && len(unit.extra) == 0 {
		return domain.Message{}, false
	}

	author, text, found := strings.Cut(rest, ": ")
	author = strings.TrimSpace(author)

	if !found || author == "" || p.systemSet.Contains(author) || p.systemBodySet.Contains(text) {
		p.log.Debug("Service message", "content", rest)
		stats.IncrSystemMessages()
		return domain.Message{
			Timestamp: unit.timestamp,
			Body:      unit.body(rest),
			IsSystem:  true,
		}, true
	}

	msg := domain.Message{
		Timestamp: unit.timestamp,
		Author:    author,
		Body:      unit.body(strings.TrimSpace(text)),
	}
	if p.mediaSet.Contains(msg.Body) {
		msg.IsMedia = true
		stats.IncrMediaMessages()
	}
	stats.IncrMessagesParsed()
	return msg, true
}
