package aggregate

import (
	"context"
	"strings"

	"chatlens/contract"
	"chatlens/domain"
	"chatlens/sentiment"
)

// Sentiment folds per-participant polarity statistics. Message length is
// a raw whitespace split of the full body, not the filtered token list,
// so the metric reflects verbosity rather than lexical richness.
type Sentiment struct {
	scorer  contract.Scorer
	entries map[string]*sentimentEntry
}

type sentimentEntry struct {
	scoreSum  float64
	wordSum   int
	messages  int
	positives int
	neutrals  int
	negatives int
}

func NewSentiment(scorer contract.Scorer) *Sentiment {
	return &Sentiment{scorer: scorer}
}

func (s *Sentiment) Fold(_ context.Context, messages []domain.Message, _ []string) error {
	s.entries = make(map[string]*sentimentEntry, 8)
	for _, m := range messages {
		if m.IsSystem {
			continue
		}
		entry, ok := s.entries[m.Author]
		if !ok {
			entry = &sentimentEntry{}
			s.entries[m.Author] = entry
		}

		score := s.scorer.Score(m.Body)
		entry.scoreSum += score
		entry.wordSum += len(strings.Fields(m.Body))
		entry.messages++
		switch sentiment.Classify(score) {
		case sentiment.BucketPositive:
			entry.positives++
		case sentiment.BucketNegative:
			entry.negatives++
		default:
			entry.neutrals++
		}
	}
	return nil
}

// ByPerson emits one entry per participant in report order. Response
// latency comes from the response analyzer; merging here keeps the
// per-person card a single object for the presentation layer.
func (s *Sentiment) ByPerson(participants []string, responses *ResponseInitiation) []domain.PersonSentiment {
	out := make([]domain.PersonSentiment, 0, len(participants))
	for _, author := range participants {
		entry, ok := s.entries[author]
		if !ok {
			entry = &sentimentEntry{}
		}
		person := domain.PersonSentiment{
			Author:                 author,
			AvgResponseTimeMinutes: responses.AvgResponseMinutes(author),
			TotalMessages:          entry.messages,
		}
		if entry.messages > 0 {
			n := float64(entry.messages)
			person.AverageSentiment = entry.scoreSum / n
			person.PositivePct = float64(entry.positives) / n * 100
			person.NeutralPct = float64(entry.neutrals) / n * 100
			person.NegativePct = float64(entry.negatives) / n * 100
			person.AvgMessageLength = float64(entry.wordSum) / n
		}
		out = append(out, person)
	}
	return out
}
