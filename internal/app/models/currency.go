package models

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a rupee amount with Indian digit grouping for display
// in API payloads.
func FormatINR(amount int) string {
	return inrPrinter.Sprintf("₹%d", amount)
}
