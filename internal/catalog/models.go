package catalog

import (
	"github.com/shopspring/decimal"
	"strings"
)

type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         string  `json:"price"` // currency formatted, e.g. "$129.99"
	OriginalPrice string  `json:"originalPrice,omitempty"`
	Image         string  `json:"image"`
	Discount      string  `json:"discount,omitempty"`
	Category      string  `json:"category,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	Reviews       int     `json:"reviews,omitempty"`
}

// ParsePrice strips everything but digits and the decimal point from a
// currency string. Anything that still fails to parse counts as zero.
func ParsePrice(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatPrice renders an amount the way the catalog stores prices.
func FormatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
