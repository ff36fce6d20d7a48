package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// ParseCurrency returns the ISO 4217 unit for code. Unrecognized codes fall
// back to DefaultCurrency and ok is false.
func ParseCurrency(code string) (unit currency.Unit, ok bool) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil || unit == (currency.Unit{}) {
		return currency.MustParseISO(DefaultCurrency), false
	}
	return unit, true
}

// FormatCurrency renders amount as an English-locale money string, e.g.
// "$5,000.00" or "¥1,500". The number of fraction digits follows the
// currency's standard rounding.
func FormatCurrency(amount float64, code string) string {
	unit, _ := ParseCurrency(code)
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	scale, _ := currency.Standard.Rounding(unit)
	symbol := printer.Sprint(currency.NarrowSymbol(unit))

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + symbol + printer.Sprintf("%.*f", scale, amount)
}

// DaysLeft returns the whole days from now until date, floored and clamped
// at zero for dates already passed.
func DaysLeft(date, now time.Time) int {
	days := math.Floor(date.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return int(days)
}

// OrdinalSuffix returns the English ordinal suffix for n: "st", "nd", "rd"
// or "th". 11, 12 and 13 (and 111, 112, ...) take "th".
func OrdinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	if rem := n % 100; rem >= 11 && rem <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Ordinal formats n with its suffix, e.g. "21st".
func Ordinal(n int) string {
	return strconv.Itoa(n) + OrdinalSuffix(n)
}
