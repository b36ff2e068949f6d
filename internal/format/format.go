package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/etwmath/internal/domain"
)

// English grouping: 1,234,567.89
var printer = message.NewPrinter(language.English)

// Whole values at or above this are printed as floats to stay clear of int64 overflow
const maxExactWhole = 1e18

// Number renders a value with thousands separators. Without useDecimal the
// fraction is dropped, not rounded: 1234567.89 renders as "1,234,567".
func Number(value float64, useDecimal bool) string {
	if useDecimal {
		return printer.Sprintf("%.2f", value)
	}
	whole := math.Trunc(value)
	if math.Abs(whole) < maxExactWhole {
		return printer.Sprintf("%d", int64(whole))
	}
	return printer.Sprintf("%.0f", whole)
}

// Decimal renders a value with exactly two decimal places and no grouping
func Decimal(value float64) string {
	return fmt.Sprintf("%0.2f", value)
}

// Duration renders total seconds as DDd:HHh:MMm:SSs. Every field has at least
// two digits and days are grouped: 123456789 renders as "1,428d:21h:33m:09s".
func Duration(totalSeconds int64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	days := totalSeconds / domain.SecondsPerDay
	hours := totalSeconds % domain.SecondsPerDay / domain.SecondsPerHour
	minutes := totalSeconds % domain.SecondsPerHour / domain.SecondsPerMinute
	seconds := totalSeconds % domain.SecondsPerMinute

	return fmt.Sprintf("%sd:%02dh:%02dm:%02ds", dayField(days), hours, minutes, seconds)
}

func dayField(days int64) string {
	if days < 10 {
		return fmt.Sprintf("%02d", days)
	}
	return printer.Sprintf("%d", days)
}
