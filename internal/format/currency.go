// Package format renders amounts and timestamps the way the café's
// receipts and exports expect: fa-IR digit shaping for display, the
// Jalali calendar for dates, ASCII digits where spreadsheets need them.
package format

import "strconv"

var persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

// thousands separator used by fa-IR number formatting (U+066C)
const persianSeparator = '٬'

// PersianDigits replaces ASCII digits in s with their Persian forms.
func PersianDigits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, persianDigits[r-'0'])
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// Currency renders an integer amount with Persian digits and fa-IR
// thousands separators, e.g. 85000 becomes ۸۵٬۰۰۰.
func Currency(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.Itoa(amount)

	out := make([]rune, 0, len(digits)+len(digits)/3+1)
	if neg {
		out = append(out, '-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, persianSeparator)
		}
		out = append(out, persianDigits[r-'0'])
	}
	return string(out)
}
