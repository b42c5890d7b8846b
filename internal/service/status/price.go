package status

import (
	"github.com/shopspring/decimal"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

var currencySymbols = map[string]string{
	"":    "€",
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// formatAmount renders a minor-unit amount with trailing zeros dropped,
// e.g. 1200 EUR -> "12€", 1250 EUR -> "12.5€".
func formatAmount(p *domain.Price) string {
	value := decimal.New(p.Amount, -2).String()
	if symbol, ok := currencySymbols[p.Currency]; ok {
		return value + symbol
	}
	return value + " " + p.Currency
}

// displayPrice prefers the feed's own formatted string.
func displayPrice(p *domain.Price) string {
	if p == nil {
		return ""
	}
	if p.Formatted != "" {
		return p.Formatted
	}
	return formatAmount(p)
}
