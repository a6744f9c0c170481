package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AnalysisReport is the single output of one analysis request.
//
// Field names and per-participant list alignment are a contract with the
// presentation layer: every per-participant list holds exactly one entry
// per name in Participants, in the same order, and empty lists are
// emitted as empty arrays, never omitted.
type AnalysisReport struct {
	TotalMessages          int               `json:"total_messages"`
	Participants           []string          `json:"participants"`
	TotalDuration          string            `json:"total_duration"`
	AvgMessagesPerDay      float64           `json:"avg_messages_per_day"`
	DominantLanguage       string            `json:"dominant_language"`
	SentimentByPerson      []PersonSentiment `json:"sentiment_by_person"`
	HourlyActivity         []HourlyRow       `json:"hourly_activity"`
	ConversationInitiation []Initiation      `json:"conversation_initiation"`
	EmojiStats             EmojiStats        `json:"emoji_stats"`
	WordClouds             []WordCloud       `json:"word_clouds"`
	DomainStats            []DomainUsage     `json:"domain_stats"`
}

type PersonSentiment struct {
	Author                 string  `json:"author"`
	AverageSentiment       float64 `json:"average_sentiment"`
	PositivePct            float64 `json:"positive_pct"`
	NeutralPct             float64 `json:"neutral_pct"`
	NegativePct            float64 `json:"negative_pct"`
	AvgMessageLength       float64 `json:"avg_message_length"`
	AvgResponseTimeMinutes float64 `json:"avg_response_time_minutes"`
	TotalMessages          int     `json:"total_messages"`
}

// HourlyRow is one hour-of-day bucket in wide format: the participant
// names become JSON keys so the chart layer can index counts directly.
type HourlyRow struct {
	Hour         int
	Participants []string
	Counts       map[string]int
}

// MarshalJSON emits {"hour":h,"<name>":n,...} with participants in report
// order. A plain map would also work but Go sorts map keys, and the
// report must serialize identically for identical input regardless of
// participant names.
func (r HourlyRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{"hour":%d`, r.Hour)
	for _, name := range r.Participants {
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, `,%s:%d`, key, r.Counts[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type Initiation struct {
	Author               string  `json:"author"`
	ConversationsStarted int     `json:"conversations_started"`
	InitiationPercentage float64 `json:"initiation_percentage"`
}

type EmojiStats struct {
	ByPerson []PersonEmojis `json:"by_person"`
}

type PersonEmojis struct {
	Author    string       `json:"author"`
	TopEmojis []EmojiCount `json:"top_emojis"`
}

type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

type WordCloud struct {
	Author string      `json:"author"`
	Words  []WordCount `json:"words"`
}

type WordCount struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type DomainUsage struct {
	Author  string        `json:"author"`
	Domains []DomainCount `json:"domains"`
}

type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// EmptyReport returns a structurally valid zero-valued report. Degenerate
// inputs (zero messages, zero participants) must still serialize with
// every list present as an empty array.
func EmptyReport() AnalysisReport {
	return AnalysisReport{
		Participants:           []string{},
		TotalDuration:          "N/A",
		SentimentByPerson:      []PersonSentiment{},
		HourlyActivity:         emptyHours(),
		ConversationInitiation: []Initiation{},
		EmojiStats:             EmojiStats{ByPerson: []PersonEmojis{}},
		WordClouds:             []WordCloud{},
		DomainStats:            []DomainUsage{},
	}
}

func emptyHours() []HourlyRow {
	rows := make([]HourlyRow, 24)
	for h := range rows {
		rows[h] = HourlyRow{Hour: h, Participants: []string{}, Counts: map[string]int{}}
	}
	return rows
}
