package service

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/marina-studio/packtrack/internal/store"
)

// FindSimilarCustomers returns existing customers whose name or phone
// closely matches the add-form input. Display hint only: create always
// mints a new customer record regardless of matches.
func FindSimilarCustomers(name, phone string, customers []store.Customer) []store.Customer {
	name = strings.TrimSpace(name)
	phone = normalizePhone(phone)

	var out []store.Customer
	for _, c := range customers {
		if phone != "" && normalizePhone(c.Phone) == phone {
			out = append(out, c)
			continue
		}
		if name != "" && nameFuzzyMatch(name, c.Name) {
			out = append(out, c)
		}
	}
	return out
}

func nameFuzzyMatch(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	dist := levenshtein.ComputeDistance(a, b)
	maxlen := len([]rune(a))
	if l := len([]rune(b)); l > maxlen {
		maxlen = l
	}
	return float64(dist)/float64(maxlen) < 0.3
}

func normalizePhone(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
