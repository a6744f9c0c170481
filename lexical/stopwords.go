package lexical

import (
	_ "embed"
	"strings"

	"github.com/blugelabs/bluge/analysis"
)

// The stop-word list is static configuration data, loaded once into
// process-wide immutable state. It is never mutated per request.
//
//go:embed stopwords.txt
var stopWordsRaw string

var stopWords = loadStopWords()

func loadStopWords() analysis.TokenMap {
	tm := analysis.NewTokenMap()
	for _, line := range strings.Split(stopWordsRaw, "\n") {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		tm.AddToken(word)
	}
	return tm
}
