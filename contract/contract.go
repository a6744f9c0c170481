package contract

import (
	"chatlens/domain"
	"context"
	"reflect"
)

// Aggregator consumes the immutable parsed message sequence and folds its
// own slice of the report. Aggregators hold no shared mutable state, so
// the service can fan them out concurrently over the same slice.
//
// Fold must not retain or mutate messages.
type Aggregator interface {
	Fold(ctx context.Context, messages []domain.Message, participants []string) error
}

// Scorer assigns a polarity score in [-1, 1] to a message body.
type Scorer interface {
	Score(body string) float64
}

// Extractor derives the transient lexical feature set of one message body.
type Extractor interface {
	Tokens(body string) []string
	Emojis(body string) []string
	Domains(body string) []string
}

// GetAggregatorName uses reflection to retrieve the type name of an
// aggregator. Used for logging during the fan-out, avoiding manual naming
// in the Aggregator interface.
func GetAggregatorName(a Aggregator) string {
	if a == nil {
		return "NilAggregator"
	}
	t := reflect.TypeOf(a)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
