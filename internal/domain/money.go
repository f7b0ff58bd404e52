package domain

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatUSD renders a whole-dollar amount with thousands separators, e.g. "$12,500".
func FormatUSD(amount int) string {
	return message.NewPrinter(language.English).Sprintf("$%d", amount)
}

// String renders the range as "$12,000 - $18,000", or a single amount when
// both bounds are equal.
func (m MoneyRange) String() string {
	if m.Min == m.Max {
		return FormatUSD(m.Min)
	}
	return FormatUSD(m.Min) + " - " + FormatUSD(m.Max)
}

// String renders the range as "6-9 weeks", or "1 week" for a single week.
func (w WeekRange) String() string {
	if w.Min == w.Max {
		if w.Min == 1 {
			return "1 week"
		}
		return fmt.Sprintf("%d weeks", w.Min)
	}
	return fmt.Sprintf("%d-%d weeks", w.Min, w.Max)
}
