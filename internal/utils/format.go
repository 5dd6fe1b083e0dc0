package utils

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatRupiah renders a monetary amount as plain rupiah text, e.g. "Rp 15000".
func FormatRupiah(amount float64) string {
	return fmt.Sprintf("Rp %.0f", amount)
}

// TitleCaseName normalizes a customer name to title case ("budi santoso"
// becomes "Budi Santoso").
func TitleCaseName(name string) string {
	caser := cases.Title(language.Indonesian)
	return caser.String(strings.ToLower(strings.TrimSpace(name)))
}
