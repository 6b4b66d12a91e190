package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reQ    = regexp.MustCompile(`^[A-Za-z0-9 ./_'\-]{1,50}$`)
	reID   = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	rePIN  = regexp.MustCompile(`^[0-9]{4,6}$`)
	reCond = regexp.MustCompile(`^(new|used)$`)
	rePay  = regexp.MustCompile(`^(cash|credit_card|transfer|e_wallet|qr|cod)$`)
	reSort = regexp.MustCompile(`^(name|price-low|price-high|stock)$`)
)

// Q validates a search query: trims, enforces allowed characters and max length
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// ID validates a simple resource identifier (product/category/transaction ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Condition validates the stored condition enums.
func Condition(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, s != "" && reCond.MatchString(s)
}

// PaymentMethod validates the checkout payment enums.
func PaymentMethod(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, s != "" && rePay.MatchString(s)
}

// SortKey passes known sort keys and maps anything else to "" (catalog order).
func SortKey(s string) string {
	s = strings.TrimSpace(s)
	if reSort.MatchString(s) {
		return s
	}
	return ""
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, true
}

// PIN validates a cashier PIN (4-6 digits).
func PIN(s string) bool {
	return rePIN.MatchString(strings.TrimSpace(s))
}

// Date validates a YYYY-MM-DD history filter bound.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) != 10 {
		return "", false
	}
	if _, err := strconv.Atoi(s[:4]); err != nil {
		return "", false
	}
	if s[4] != '-' || s[7] != '-' {
		return "", false
	}
	if _, err := strconv.Atoi(s[5:7]); err != nil {
		return "", false
	}
	if _, err := strconv.Atoi(s[8:]); err != nil {
		return "", false
	}
	return s, true
}
