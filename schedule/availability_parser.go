package schedule

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Layouts tried for tokens carrying an explicit year.
// Comma-bearing layouts ("January 2, 2006") are useless here: tokens are
// produced by splitting the response on commas in the first place.
var datedLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2006-01-02",
	"Jan 2 2006",
	"January 2 2006",
}

// Layouts for year-less tokens; the year is resolved against the window.
var yearlessLayouts = []string{
	"1/2",
	"Jan 2",
	"January 2",
}

// AvailabilityParser maps guest-entered free text onto the candidate date
// window. A token counts only on exact calendar-day equality with a window
// date; tokens that do not parse, or that name a day outside the window,
// contribute nothing and never fail the record.
type AvailabilityParser struct {
	window  map[time.Time]bool
	ordered []time.Time
	log     zerolog.Logger
}

func NewAvailabilityParser(window []time.Time, log zerolog.Logger) *AvailabilityParser {
	set := make(map[time.Time]bool, len(window))
	ordered := make([]time.Time, 0, len(window))
	for _, d := range window {
		d = dateOnly(d)
		set[d] = true
		ordered = append(ordered, d)
	}
	return &AvailabilityParser{window: set, ordered: ordered, log: log}
}

// ParseAvailability returns the candidate dates named by raw, deduplicated,
// in window order.
func (p *AvailabilityParser) ParseAvailability(guest, raw string) []time.Time {
	matched := map[time.Time]bool{}
	for _, token := range splitTokens(raw) {
		date, ok := p.resolveToken(token)
		if !ok {
			p.log.Warn().Str("guest", guest).Str("token", token).
				Msg("availability token did not match a candidate date, skipping")
			continue
		}
		matched[date] = true
	}

	out := make([]time.Time, 0, len(matched))
	for _, d := range p.ordered {
		if matched[d] {
			out = append(out, d)
		}
	}
	return out
}

// ParsePreference returns the single preferred candidate date, if any. Only
// the first resolvable token counts; the form asks for one date.
func (p *AvailabilityParser) ParsePreference(guest, raw string) (time.Time, bool) {
	for _, token := range splitTokens(raw) {
		if date, ok := p.resolveToken(token); ok {
			return date, true
		}
		p.log.Warn().Str("guest", guest).Str("token", token).
			Msg("preference token did not match a candidate date, skipping")
	}
	return time.Time{}, false
}

func (p *AvailabilityParser) resolveToken(token string) (time.Time, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, false
	}

	for _, layout := range datedLayouts {
		parsed, err := time.Parse(layout, token)
		if err != nil {
			continue
		}
		date := dateOnly(parsed)
		if p.window[date] {
			return date, true
		}
		return time.Time{}, false
	}

	for _, layout := range yearlessLayouts {
		parsed, err := time.Parse(layout, token)
		if err != nil {
			continue
		}
		// Earliest window date with the same month and day wins; the window
		// spans one year so at most its first and last date can both match.
		for _, d := range p.ordered {
			if d.Month() == parsed.Month() && d.Day() == parsed.Day() {
				return d, true
			}
		}
		return time.Time{}, false
	}

	return time.Time{}, false
}

func splitTokens(raw string) []string {
	raw = strings.NewReplacer(";", ",", "\n", ",", " and ", ",").Replace(raw)
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
