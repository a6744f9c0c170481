// Package lexical derives the transient per-message feature set consumed
// by the downstream aggregators: filtered tokens, emoji occurrences, and
// shared-link registrable domains. Extraction is pure: same body in, same
// features out.
package lexical

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/token"
	"github.com/blugelabs/bluge/analysis/tokenizer"
	"github.com/forPelevin/gomoji"
	"golang.org/x/net/publicsuffix"
)

// MinTokenLength drops single-rune leftovers after filtering.
const MinTokenLength = 2

var urlPattern = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s<>"]+`)

// Hosts that should rank as one domain even when shared through a
// shortener variant.
var domainAliases = map[string]string{
	"youtu.be": "youtube.com",
}

// Extractor runs a fixed analysis chain over message bodies. Safe for
// concurrent use: the chain and the stop-word map are immutable.
type Extractor struct {
	analyzer *analysis.Analyzer
}

func NewExtractor() *Extractor {
	return &Extractor{
		analyzer: &analysis.Analyzer{
			Tokenizer: tokenizer.NewUnicodeTokenizer(),
			TokenFilters: []analysis.TokenFilter{
				token.NewLowerCaseFilter(),
				token.NewStopTokensFilter(stopWords),
			},
		},
	}
}

// Tokens returns the lowercased, punctuation-free, stop-word-filtered
// terms of a body, in occurrence order.
func (e *Extractor) Tokens(body string) []string {
	stream := e.analyzer.Analyze([]byte(body))
	tokens := make([]string, 0, len(stream))
	for _, t := range stream {
		term := string(t.Term)
		if len([]rune(term)) < MinTokenLength {
			continue
		}
		tokens = append(tokens, term)
	}
	return tokens
}

// Emojis scans the body code point by code point, preserving order and
// multiplicity: a body with the same emoji three times contributes three
// occurrences.
func (e *Extractor) Emojis(body string) []string {
	var emojis []string
	for _, r := range body {
		// Everything below general punctuation is ASCII/Latin text.
		if r < 0x2000 {
			continue
		}
		if _, err := gomoji.GetInfo(string(r)); err == nil {
			emojis = append(emojis, string(r))
		}
	}
	return emojis
}

// Domains extracts every shared link and reduces it to its registrable
// domain (scheme, path, query, port and subdomains stripped), lowercase.
func (e *Extractor) Domains(body string) []string {
	var domains []string
	for _, match := range urlPattern.FindAllString(body, -1) {
		if !strings.Contains(strings.ToLower(match), "://") {
			match = "https://" + match
		}
		parsed, err := url.Parse(match)
		if err != nil {
			continue
		}
		host := strings.ToLower(strings.TrimSuffix(parsed.Hostname(), "."))
		if host == "" {
			continue
		}
		domains = append(domains, registrableDomain(host))
	}
	return domains
}

func registrableDomain(host string) string {
	reduced, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Unlisted suffix or bare label: fall back to the raw host.
		reduced = strings.TrimPrefix(host, "www.")
	}
	if alias, ok := domainAliases[reduced]; ok {
		return alias
	}
	return reduced
}
