package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"chatlens/aggregate"
	"chatlens/contract"
	"chatlens/domain"
	"chatlens/errors"
	"chatlens/lexical"
	"chatlens/parser"
	"chatlens/sentiment"
)

var validate = validator.New()

// languageSampleLimit bounds the text handed to language detection; a few
// kilobytes is plenty for a stable guess.
const languageSampleLimit = 8192

type AnalyzeRequest struct {
	Payload []byte `validate:"required"`
}

type IAnalyzerService interface {
	Analyze(ctx context.Context, request AnalyzeRequest) (domain.AnalysisReport, *parser.Stats, error)
}

// AnalyzerService runs the whole pipeline for one transcript: guard the
// payload, parse sequentially, fan the immutable message slice out to the
// aggregators, join their outputs by participant order.
type AnalyzerService struct {
	log             *slog.Logger
	parser          *parser.Parser
	extractor       *lexical.Extractor
	scorer          *sentiment.Scorer
	maxPayloadBytes int
}

func NewAnalyzerService(log *slog.Logger, maxPayloadBytes int) (*AnalyzerService, error) {
	p, err := parser.NewParser(log)
	if err != nil {
		return nil, fmt.Errorf("building parser: %w", err)
	}
	return &AnalyzerService{
		log:             log,
		parser:          p,
		extractor:       lexical.NewExtractor(),
		scorer:          sentiment.NewScorer(),
		maxPayloadBytes: maxPayloadBytes,
	}, nil
}

// Analyze is a single-shot, stateless batch job: no state survives the
// call, and identical input produces an identical report.
func (s *AnalyzerService) Analyze(ctx context.Context, request AnalyzeRequest) (domain.AnalysisReport, *parser.Stats, error) {
	log := s.log.With("request_id", uuid.NewString())
	start := time.Now()

	// Degenerate but valid: zero bytes yields the structurally complete
	// zero report, not an error.
	if len(request.Payload) == 0 {
		log.Info("Empty payload, returning empty report")
		return domain.EmptyReport(), parser.NewStats(), nil
	}

	if err := s.guard(request); err != nil {
		return domain.AnalysisReport{}, nil, err
	}

	messages, stats, err := s.parser.Parse(decode(request.Payload))
	if err != nil {
		return domain.AnalysisReport{}, stats, fmt.Errorf("parsing transcript: %w", err)
	}

	participants := domain.Participants(messages)

	activity := aggregate.NewActivity()
	responses := aggregate.NewResponseInitiation()
	sentiments := aggregate.NewSentiment(s.scorer)
	words := aggregate.NewWordCloud(s.extractor)
	emojis := aggregate.NewEmojiRank(s.extractor)
	domains := aggregate.NewDomainRank(s.extractor)

	aggregators := []contract.Aggregator{activity, responses, sentiments, words, emojis, domains}
	if err := s.fanOut(ctx, log, messages, participants, aggregators); err != nil {
		return domain.AnalysisReport{}, stats, err
	}

	report := domain.AnalysisReport{
		TotalMessages:          totalMessages(messages),
		Participants:           participants,
		TotalDuration:          activity.TotalDuration(),
		AvgMessagesPerDay:      activity.AvgPerDay(),
		DominantLanguage:       dominantLanguage(messages),
		SentimentByPerson:      sentiments.ByPerson(participants, responses),
		HourlyActivity:         activity.Rows(),
		ConversationInitiation: responses.Initiations(participants),
		EmojiStats:             domain.EmojiStats{ByPerson: emojis.ByPerson(participants)},
		WordClouds:             words.ByPerson(participants),
		DomainStats:            domains.ByPerson(participants),
	}
	if report.Participants == nil {
		report.Participants = []string{}
	}

	log.Info("Analysis complete",
		"messages", report.TotalMessages,
		"participants", len(participants),
		"warnings", stats.Warnings(),
		"latency_ms", time.Since(start).Milliseconds())
	return report, stats, nil
}

// guard rejects payloads the pipeline should never touch: oversized
// bodies and binary uploads masquerading as exports.
func (s *AnalyzerService) guard(request AnalyzeRequest) error {
	if err := validate.Struct(request); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	if s.maxPayloadBytes > 0 && len(request.Payload) > s.maxPayloadBytes {
		return fmt.Errorf("%w: %d bytes", errors.ErrPayloadTooLarge, len(request.Payload))
	}
	detected := mimetype.Detect(request.Payload)
	if !strings.HasPrefix(detected.String(), "text/") {
		return fmt.Errorf("%w: detected %s", errors.ErrNotPlainText, detected.String())
	}
	return nil
}

// fanOut runs every aggregator in its own goroutine over the shared
// read-only slice. Each writes only to its own output structure, so no
// locking is involved; the WaitGroup is the fan-in.
func (s *AnalyzerService) fanOut(ctx context.Context, log *slog.Logger,
	messages []domain.Message, participants []string, aggregators []contract.Aggregator) error {
	var wg sync.WaitGroup
	errChan := make(chan error, len(aggregators))

	for _, agg := range aggregators {
		wg.Add(1)
		go func(a contract.Aggregator) {
			defer wg.Done()
			name := contract.GetAggregatorName(a)
			start := time.Now()
			if err := a.Fold(ctx, messages, participants); err != nil {
				errChan <- fmt.Errorf("aggregator %s: %w", name, err)
				return
			}
			log.Debug("Aggregator finished", "name", name, "latency_us", time.Since(start).Microseconds())
		}(agg)
	}

	wg.Wait()
	close(errChan)
	for err := range errChan {
		return err
	}
	return nil
}

// totalMessages counts user messages only; service events are metadata
// about the room, not conversation volume.
func totalMessages(messages []domain.Message) int {
	total := 0
	for _, m := range messages {
		if !m.IsSystem {
			total++
		}
	}
	return total
}

// dominantLanguage guesses the transcript's main language from a bounded
// sample of user message bodies.
func dominantLanguage(messages []domain.Message) string {
	var sample strings.Builder
	for _, m := range messages {
		if m.IsSystem || m.IsMedia {
			continue
		}
		sample.WriteString(m.Body)
		sample.WriteByte('\n')
		if sample.Len() >= languageSampleLimit {
			break
		}
	}
	if sample.Len() == 0 {
		return ""
	}
	info := whatlanggo.Detect(sample.String())
	return info.Lang.Iso6391()
}

// decode returns the payload as UTF-8 text, reinterpreting as Latin-1
// when the bytes are not valid UTF-8 (older exports).
func decode(payload []byte) string {
	if utf8.Valid(payload) {
		return string(payload)
	}
	runes := make([]rune, 0, len(payload))
	for _, b := range payload {
		runes = append(runes, rune(b))
	}
	return string(runes)
}
