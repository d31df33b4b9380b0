// Package money represents currency amounts as int64 minor units (paise)
// so balance arithmetic stays exact. Decimal strings exist only at the
// presentation boundary.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a count of minor currency units. 75050 is ₹750.50.
type Amount int64

// Parse converts a decimal string such as "750.50" or "750" into an Amount.
// At most two fraction digits are accepted.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount is required")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	// Only bare digits beyond the single leading sign handled above:
	// ParseInt would tolerate embedded signs ("1.-5", "--5").
	if !digitsOnly(whole) || (frac != "" && !digitsOnly(frac)) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	var minor int64
	if frac != "" {
		minor, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		if len(frac) == 1 {
			minor *= 10
		}
	}

	total := units*100 + minor
	if negative {
		total = -total
	}
	return Amount(total), nil
}

// String renders the amount as a plain decimal with two fraction digits.
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func digitsOnly(s string) bool {
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
