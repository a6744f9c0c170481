// Package sentiment wraps a lexicon/rule-based polarity engine (VADER):
// word-level polarity weights with negation flips and intensifier
// scaling, compounded into a score in [-1, 1].
package sentiment

import "github.com/jonreiter/govader"

// Bucket thresholds are exact constants. Bucket counts feed percentage
// fields consumed downstream, so any change here shifts every report.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

type Bucket string

const (
	BucketPositive Bucket = "positive"
	BucketNeutral  Bucket = "neutral"
	BucketNegative Bucket = "negative"
)

// Classify buckets a compound score: positive above 0.05, negative below
// -0.05, neutral in between (inclusive).
func Classify(score float64) Bucket {
	switch {
	case score > PositiveThreshold:
		return BucketPositive
	case score < NegativeThreshold:
		return BucketNegative
	default:
		return BucketNeutral
	}
}

// Scorer is immutable after construction and safe for concurrent use.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of a body. System messages are
// never passed here; the caller excludes them before scoring.
func (s *Scorer) Score(body string) float64 {
	return s.analyzer.PolarityScores(body).Compound
}
