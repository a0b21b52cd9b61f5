package inventory

import "fmt"

// FormatGold returns a human-readable purse string such as "1 gold piece" or
// "50 gold pieces".
//
// Precondition: total >= 0.
func FormatGold(total int) string {
	return fmt.Sprintf("%d %s", total, plural(total, "gold piece"))
}

// plural returns the singular form if n == 1, otherwise appends "s".
func plural(n int, singular string) string {
	if n == 1 {
		return singular
	}
	return singular + "s"
}
