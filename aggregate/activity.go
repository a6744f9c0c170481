package aggregate

import (
	"context"
	"fmt"
	"time"

	"chatlens/domain"
)

// Activity buckets messages into 24 hour-of-day slots per participant and
// derives the transcript's calendar footprint. Timestamps are used as
// parsed: exports carry local wall-clock time, so no zone conversion.
type Activity struct {
	rows          []domain.HourlyRow
	totalDuration string
	avgPerDay     float64
}

func NewActivity() *Activity {
	return &Activity{}
}

func (a *Activity) Fold(_ context.Context, messages []domain.Message, participants []string) error {
	a.rows = make([]domain.HourlyRow, 24)
	for h := range a.rows {
		a.rows[h] = domain.HourlyRow{Hour: h, Participants: participants, Counts: make(map[string]int, len(participants))}
	}

	var first, last time.Time
	total := 0
	for _, m := range messages {
		if m.IsSystem {
			continue
		}
		a.rows[m.Timestamp.Hour()].Counts[m.Author]++
		if total == 0 || m.Timestamp.Before(first) {
			first = m.Timestamp
		}
		if total == 0 || m.Timestamp.After(last) {
			last = m.Timestamp
		}
		total++
	}

	if total == 0 {
		a.totalDuration = "N/A"
		a.avgPerDay = 0
		return nil
	}
	a.totalDuration = humanSpan(first, last)
	a.avgPerDay = round1(float64(total) / float64(calendarDays(first, last)))
	return nil
}

func (a *Activity) Rows() []domain.HourlyRow { return a.rows }
func (a *Activity) TotalDuration() string    { return a.totalDuration }
func (a *Activity) AvgPerDay() float64       { return a.avgPerDay }

// calendarDays counts the days spanned, first and last inclusive. Never
// below 1 so the day-rate division is always defined.
func calendarDays(first, last time.Time) int {
	f := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)
	l := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, time.UTC)
	return int(l.Sub(f).Hours()/24) + 1
}

// humanSpan renders the distance between two timestamps the way the
// report presents it: years and months when the span is that large,
// plain days below a month, "Less than a day" under that.
func humanSpan(from, to time.Time) string {
	years := to.Year() - from.Year()
	months := int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}

	var parts []string
	if years > 0 {
		parts = append(parts, plural(years, "year"))
	}
	if months > 0 {
		parts = append(parts, plural(months, "month"))
	}
	if len(parts) > 0 {
		return join(parts)
	}

	days := int(to.Sub(from).Hours() / 24)
	if days > 0 {
		return plural(days, "day")
	}
	return "Less than a day"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func join(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}
