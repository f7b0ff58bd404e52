// Package gap compares what a user says they have (budget, timeline, team)
// with a realistic estimate and recommends how to close the difference.
//
// The parsers accept loosely formatted text and never fail: input they do
// not understand falls back to a documented default.
package gap

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultTimelineWeeks = 12
	DefaultTeamSize      = 1.0
)

var (
	amountPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([km]\b)?\s*(\+)?`)
	intPattern    = regexp.MustCompile(`\d+`)
	spacePattern  = regexp.MustCompile(`\s+`)
)

var (
	underWords = []string{"under", "less than", "below", "up to", "max"}
	overWords  = []string{"over", "more than", "above", "at least"}
)

// timelinePhrases are checked before the week ranges.
var timelinePhrases = []struct {
	all   []string
	weeks int
}{
	{[]string{"asap", "1-2"}, 6},
	{[]string{"standard", "3-4"}, 14},
	{[]string{"flexible", "5+"}, 22},
	{[]string{"long-term", "6+"}, 26},
}

// Longer ranges first so "12-16" is not read as something shorter.
var timelineRanges = []struct {
	text  string
	weeks int
}{
	{"12-16", 14},
	{"16-20", 18},
	{"8-12", 10},
	{"4-6", 5},
	{"6-8", 7},
	{"20+", 24},
}

var teamPhrases = []struct {
	text string
	size float64
}{
	{"just me", 1},
	{"1 person", 1},
	{"solo", 1},
	{"2-3", 2.5},
	{"3-5", 4},
	{"5+", 6},
}

func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("–", "-", "—", "-").Replace(s)
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

type amount struct {
	value float64
	plus  bool
}

func amounts(s string) []amount {
	var out []amount
	for _, m := range amountPattern.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		switch strings.TrimSpace(m[2]) {
		case "k":
			v *= 1_000
		case "m":
			v *= 1_000_000
		}
		out = append(out, amount{value: v, plus: m[3] == "+"})
	}
	return out
}

// ParseBudget reads a budget such as "Under $10k", "Over $50,000",
// "$10,000 - $20,000" or "15000". A bare amount N is read as 0.8N to 1.2N
// and "over N" as N to 2N. ok is false when no amount is present.
func ParseBudget(s string) (minBudget, maxBudget int, ok bool) {
	text := normalize(s)
	text = strings.NewReplacer("$", "", ",", "", "usd", "").Replace(text)

	found := amounts(text)
	if len(found) == 0 {
		return 0, 0, false
	}
	first := found[0].value

	switch {
	case containsAny(text, underWords):
		return 0, round(first), true
	case containsAny(text, overWords) || found[0].plus:
		return round(first), round(first * 2), true
	case len(found) >= 2:
		lo, hi := first, found[1].value
		if lo > hi {
			lo, hi = hi, lo
		}
		return round(lo), round(hi), true
	default:
		return round(first * 0.8), round(first * 1.2), true
	}
}

// ParseTimeline reads a timeline as weeks. Known phrases and week ranges map
// to fixed values, then the first number is taken as weeks. Defaults to 12.
func ParseTimeline(s string) int {
	text := normalize(s)
	if text == "" {
		return DefaultTimelineWeeks
	}

	for _, p := range timelinePhrases {
		matched := true
		for _, frag := range p.all {
			if !strings.Contains(text, frag) {
				matched = false
				break
			}
		}
		if matched {
			return p.weeks
		}
	}
	for _, r := range timelineRanges {
		if strings.Contains(text, r.text) {
			return r.weeks
		}
	}
	if n, ok := firstInt(text); ok && n > 0 {
		return n
	}
	return DefaultTimelineWeeks
}

// ParseTeamSize reads a team size. Ranges map to fixed values ("2-3" is
// 2.5), then the first number is used. Defaults to 1.
func ParseTeamSize(s string) float64 {
	text := normalize(s)
	for _, p := range teamPhrases {
		if strings.Contains(text, p.text) {
			return p.size
		}
	}
	if n, ok := firstInt(text); ok && n > 0 {
		return float64(n)
	}
	return DefaultTeamSize
}

func firstInt(s string) (int, bool) {
	m := intPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

func round(v float64) int {
	return int(math.Round(v))
}
