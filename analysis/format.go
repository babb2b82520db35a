package analysis

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCurrency renders a PLN amount the pl-PL way: thousands separated by
// spaces, no decimals, "zł" suffix.
func FormatCurrency(value float64) string {
	rounded := int64(math.Round(value))
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	digits := strconv.FormatInt(rounded, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ' ')
		}
		grouped = append(grouped, d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%s zł", sign, grouped)
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
