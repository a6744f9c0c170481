package sentiment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		score    float64
		expected Bucket
	}{
		{"Clearly positive", 0.8, BucketPositive},
		{"Just above threshold", 0.0501, BucketPositive},
		{"Exactly positive threshold is neutral", 0.05, BucketNeutral},
		{"Zero", 0, BucketNeutral},
		{"Exactly negative threshold is neutral", -0.05, BucketNeutral},
		{"Just below threshold", -0.0501, BucketNegative},
		{"Clearly negative", -0.9, BucketNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, Classify(tt.score))
		})
	}
}

func TestScorer_Score(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()

	positive := scorer.Score("I love this, it is wonderful and amazing!")
	negative := scorer.Score("This is horrible, I hate it so much")
	neutral := scorer.Score("the meeting is at three")

	req.Greater(positive, PositiveThreshold)
	req.Less(negative, NegativeThreshold)
	req.Equal(BucketNeutral, Classify(neutral))

	// Scores stay within the compound range.
	for _, s := range []float64{positive, negative, neutral} {
		req.GreaterOrEqual(s, -1.0)
		req.LessOrEqual(s, 1.0)
	}
}

func TestScorer_NegationAndIntensity(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()

	plain := scorer.Score("this is good")
	negated := scorer.Score("this is not good")
	intensified := scorer.Score("this is extremely good")

	// A negator within the window flips the polarity sign.
	req.Greater(plain, 0.0)
	req.Less(negated, 0.0)
	// An intensifier scales the magnitude upward.
	req.Greater(intensified, plain)
}
