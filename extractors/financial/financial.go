// Package financial finds labeled monetary figures (price, profit, fee,
// total) in normalized email text.
package financial

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/currency"

	"github.com/skyhighcrm/email-extraction/content"
)

// Each kind has one label-anchored pattern: the label phrase, an optional
// currency symbol or code, the amount, and an optional trailing code.
// Submatches: 1 label, 2 leading symbol/code, 3 amount, 4 trailing code.
// The leading code stays case-sensitive uppercase so an ordinary word
// between the label and a number ("price for 2 adults") is never consumed
// as a currency.
var patterns = []struct {
	kind content.FinancialKind
	re   *regexp.Regexp
}{
	{content.FinancialPrice, regexp.MustCompile(`(?i)\b((?:net|gross|base|ticket|sell(?:ing)?)\s+price|price)\s*[:=]?\s*([$€£]|(?-i:[A-Z]{3})\b)?\s*([\d,]+(?:\.\d{1,2})?)(?:\s*([A-Za-z]{3})\b)?`)},
	{content.FinancialProfit, regexp.MustCompile(`(?i)\b((?:clean|net|gross)\s+profit|profit)\s*[:=]?\s*([$€£]|(?-i:[A-Z]{3})\b)?\s*([\d,]+(?:\.\d{1,2})?)(?:\s*([A-Za-z]{3})\b)?`)},
	{content.FinancialFee, regexp.MustCompile(`(?i)\b((?:service|booking|processing|agency|change)\s+fee|fee)\s*[:=]?\s*([$€£]|(?-i:[A-Z]{3})\b)?\s*([\d,]+(?:\.\d{1,2})?)(?:\s*([A-Za-z]{3})\b)?`)},
	{content.FinancialTotal, regexp.MustCompile(`(?i)\b((?:grand\s+)?total(?:\s+(?:price|amount|cost|charge))?)\s*[:=]?\s*([$€£]|(?-i:[A-Z]{3})\b)?\s*([\d,]+(?:\.\d{1,2})?)(?:\s*([A-Za-z]{3})\b)?`)},
}

var symbolCurrencies = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
}

// Extract returns every labeled monetary figure found in text. Matches whose
// amount does not parse as a number are dropped. Overlapping matches across
// kinds are accepted as-is.
func Extract(text string) []content.FinancialItem {
	var items []content.FinancialItem

	for _, p := range patterns {
		for _, match := range p.re.FindAllStringSubmatch(text, -1) {
			amount, err := strconv.ParseFloat(strings.ReplaceAll(match[3], ",", ""), 64)
			if err != nil {
				continue
			}

			items = append(items, content.FinancialItem{
				Kind:     p.kind,
				Amount:   amount,
				Currency: resolveCurrency(match[2], match[4]),
				Label:    strings.TrimSpace(match[1]),
			})
		}
	}

	return items
}

// resolveCurrency prefers a trailing ISO code over a leading symbol or code,
// and defaults to USD. Candidate codes are validated as ISO 4217; anything
// unrecognized (a stray word after the amount, say) is ignored.
func resolveCurrency(leading, trailing string) string {
	if code, ok := validCode(trailing); ok {
		return code
	}
	if symbol, ok := symbolCurrencies[leading]; ok {
		return symbol
	}
	if code, ok := validCode(leading); ok {
		return code
	}
	return "USD"
}

func validCode(candidate string) (string, bool) {
	candidate = strings.ToUpper(strings.TrimSpace(candidate))
	if len(candidate) != 3 {
		return "", false
	}
	unit, err := currency.ParseISO(candidate)
	if err != nil {
		return "", false
	}
	return unit.String(), true
}
