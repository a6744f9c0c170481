package aggregate

import (
	"context"

	"github.com/samber/lo"

	"chatlens/contract"
	"chatlens/domain"
)

// The three ranking aggregators share one folding mechanism: count a
// per-author multiset, keep the top N. Only the extracted feature and the
// cutoff differ. Media placeholders carry no analyzable text, so their
// bodies are skipped along with system events.

type perAuthorRanking struct {
	extract  func(body string) []string
	byAuthor map[string]*rankedCounter
}

func (p *perAuthorRanking) fold(messages []domain.Message) {
	p.byAuthor = make(map[string]*rankedCounter, 8)
	for _, m := range messages {
		if m.IsSystem || m.IsMedia {
			continue
		}
		counter, ok := p.byAuthor[m.Author]
		if !ok {
			counter = newRankedCounter()
			p.byAuthor[m.Author] = counter
		}
		for _, feature := range p.extract(m.Body) {
			counter.Add(feature)
		}
	}
}

func (p *perAuthorRanking) top(author string, n int) []ranked {
	counter, ok := p.byAuthor[author]
	if !ok {
		return nil
	}
	return counter.Top(n)
}

// WordCloud ranks each participant's filtered tokens for cloud-layout
// rendering.
type WordCloud struct {
	ranking perAuthorRanking
}

func NewWordCloud(extractor contract.Extractor) *WordCloud {
	return &WordCloud{ranking: perAuthorRanking{extract: extractor.Tokens}}
}

func (w *WordCloud) Fold(_ context.Context, messages []domain.Message, _ []string) error {
	w.ranking.fold(messages)
	return nil
}

func (w *WordCloud) ByPerson(participants []string) []domain.WordCloud {
	return lo.Map(participants, func(author string, _ int) domain.WordCloud {
		return domain.WordCloud{
			Author: author,
			Words: lo.Map(w.ranking.top(author, TopWords), func(r ranked, _ int) domain.WordCount {
				return domain.WordCount{Text: r.Key, Value: r.Count}
			}),
		}
	})
}

// EmojiRank ranks each participant's emoji occurrences, duplicates kept.
type EmojiRank struct {
	ranking perAuthorRanking
}

func NewEmojiRank(extractor contract.Extractor) *EmojiRank {
	return &EmojiRank{ranking: perAuthorRanking{extract: extractor.Emojis}}
}

func (e *EmojiRank) Fold(_ context.Context, messages []domain.Message, _ []string) error {
	e.ranking.fold(messages)
	return nil
}

func (e *EmojiRank) ByPerson(participants []string) []domain.PersonEmojis {
	return lo.Map(participants, func(author string, _ int) domain.PersonEmojis {
		return domain.PersonEmojis{
			Author: author,
			TopEmojis: lo.Map(e.ranking.top(author, TopEmojis), func(r ranked, _ int) domain.EmojiCount {
				return domain.EmojiCount{Emoji: r.Key, Count: r.Count}
			}),
		}
	})
}

// DomainRank ranks the registrable domains each participant shared.
type DomainRank struct {
	ranking perAuthorRanking
}

func NewDomainRank(extractor contract.Extractor) *DomainRank {
	return &DomainRank{ranking: perAuthorRanking{extract: extractor.Domains}}
}

func (d *DomainRank) Fold(_ context.Context, messages []domain.Message, _ []string) error {
	d.ranking.fold(messages)
	return nil
}

func (d *DomainRank) ByPerson(participants []string) []domain.DomainUsage {
	return lo.Map(participants, func(author string, _ int) domain.DomainUsage {
		return domain.DomainUsage{
			Author: author,
			Domains: lo.Map(d.ranking.top(author, TopDomains), func(r ranked, _ int) domain.DomainCount {
				return domain.DomainCount{Domain: r.Key, Count: r.Count}
			}),
		}
	})
}
