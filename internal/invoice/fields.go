package invoice

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"invoicer/internal/order/model"
)

const currency = "$"

// Identifier returns the display identifier of an order: number, then id,
// then "N/A".
func Identifier(o model.Order) string {
	if o.Number != "" {
		return o.Number
	}
	if o.ID != "" {
		return o.ID
	}
	return "N/A"
}

// FileIdentifier is the identifier used in the download filename; it falls
// back to "no_id" instead of "N/A".
func FileIdentifier(o model.Order) string {
	if o.Number != "" {
		return o.Number
	}
	if o.ID != "" {
		return o.ID
	}
	return "no_id"
}

// FormatDate reformats the date portion of an ISO date-time string from
// YYYY-MM-DD to MM/DD/YYYY. Best effort only: anything that does not split
// into three numeric parts comes back unchanged, an empty value as "N/A".
func FormatDate(s string) string {
	if s == "" {
		return "N/A"
	}
	datePart, _, _ := strings.Cut(s, "T")
	parts := strings.Split(datePart, "-")
	if len(parts) != 3 {
		return s
	}
	for _, p := range parts {
		if !numeric(p) {
			return s
		}
	}
	return parts[1] + "/" + parts[2] + "/" + parts[0]
}

func numeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatStatus uppercases the order status, "N/A" when absent.
func FormatStatus(s string) string {
	if s == "" {
		return "N/A"
	}
	return strings.ToUpper(s)
}

// CompanySuffix renders the parenthesized company suffix appended to the
// customer name, or "" when the trimmed company is empty.
func CompanySuffix(company string) string {
	c := strings.TrimSpace(company)
	if c == "" {
		return ""
	}
	return " (" + c + ")"
}

// FormatAmount renders a summary-block amount: the raw string verbatim with
// the currency prefix, no arithmetic.
func FormatAmount(raw string) string {
	if raw == "" {
		raw = "0.00"
	}
	return currency + " " + raw
}

// FormatItemPrice renders a line-item total with exactly two decimals.
// Non-numeric totals render as zero instead of failing the invoice.
func FormatItemPrice(raw string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		f = 0
	}
	return fmt.Sprintf("%s %.2f", currency, f)
}

func defaultNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// LogoURL resolves a logo path to an absolute file URL the rendering engine
// can load regardless of its own working directory.
func LogoURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file://" + filepath.ToSlash(abs)
}
