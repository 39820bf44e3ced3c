package calculator

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// below this an area is shown in exponential notation
const exponentialThreshold = 0.001

var (
	englishPrinter = message.NewPrinter(language.English)
	indianPrinter  = message.NewPrinter(language.MustParse("en-IN"))
)

// FormatArea renders a converted area: tiny values as 1.2346e-4, everything
// else grouped with at most four fraction digits.
func FormatArea(v float64) string {
	if v < exponentialThreshold {
		return formatExponential(v, 4)
	}
	return englishPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(4)))
}

// FormatRupees renders a whole-rupee amount with Indian digit grouping
func FormatRupees(v float64) string {
	return "₹" + indianPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatGrowth renders a signed percentage such as +4.9% or -0.5%
func FormatGrowth(pct float64) string {
	s := strconv.FormatFloat(pct, 'f', -1, 64)
	if pct > 0 {
		s = "+" + s
	}
	return s + "%"
}

// formatExponential writes mantissa digits like strconv but with the exponent
// unpadded and always signed (e-4, e+5).
func formatExponential(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'e', digits, 64)
	mantissa, exp, found := strings.Cut(s, "e")
	if !found {
		return s
	}
	sign := exp[:1]
	n, err := strconv.Atoi(exp[1:])
	if err != nil {
		return s
	}
	return fmt.Sprintf("%se%s%d", mantissa, sign, n)
}
