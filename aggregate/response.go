package aggregate

import (
	"context"
	"time"

	"chatlens/domain"
)

// ResponseInitiation walks the sequence once, tracking the previous
// non-system message. Order sensitivity is the point: a response exists
// only relative to the message before it, and an initiation only relative
// to the silence before it.
type ResponseInitiation struct {
	avgResponseMinutes map[string]float64
	started            map[string]int
	startedPct         map[string]float64
}

func NewResponseInitiation() *ResponseInitiation {
	return &ResponseInitiation{}
}

func (r *ResponseInitiation) Fold(_ context.Context, messages []domain.Message, _ []string) error {
	responseSum := make(map[string]time.Duration)
	responseCount := make(map[string]int)
	started := make(map[string]int)

	var prev *domain.Message
	for i := range messages {
		m := &messages[i]
		if m.IsSystem {
			continue
		}
		if prev == nil {
			// The first message of the transcript is always exactly one
			// initiation for its author, never a response.
			started[m.Author]++
			prev = m
			continue
		}

		gap := m.Timestamp.Sub(prev.Timestamp)
		if gap > IdleGap {
			started[m.Author]++
		}
		if m.Author != prev.Author && gap <= ResponseCap {
			responseSum[m.Author] += gap
			responseCount[m.Author]++
		}
		prev = m
	}

	totalStarted := 0
	for _, n := range started {
		totalStarted += n
	}

	r.started = started
	r.startedPct = make(map[string]float64, len(started))
	for author, n := range started {
		if totalStarted > 0 {
			r.startedPct[author] = round1(float64(n) / float64(totalStarted) * 100)
		}
	}

	r.avgResponseMinutes = make(map[string]float64, len(responseSum))
	for author, sum := range responseSum {
		r.avgResponseMinutes[author] = sum.Minutes() / float64(responseCount[author])
	}
	return nil
}

// AvgResponseMinutes returns the author's mean response latency, 0 when
// the author never responded.
func (r *ResponseInitiation) AvgResponseMinutes(author string) float64 {
	return r.avgResponseMinutes[author]
}

func (r *ResponseInitiation) Initiations(participants []string) []domain.Initiation {
	out := make([]domain.Initiation, 0, len(participants))
	for _, author := range participants {
		out = append(out, domain.Initiation{
			Author:               author,
			ConversationsStarted: r.started[author],
			InitiationPercentage: r.startedPct[author],
		})
	}
	return out
}
