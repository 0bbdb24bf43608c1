// Package money represents rupee amounts as int64 paise so that order
// arithmetic never drifts through floating point. Display strings are a
// boundary concern: parse on the way in, format on the way out.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value in paise (1/100 rupee).
type Amount int64

const paisePerRupee = 100

// FromPaise wraps a raw paise value.
func FromPaise(v int64) Amount { return Amount(v) }

// FromRupees converts a decimal rupee value, rounding to the nearest paisa.
func FromRupees(v float64) Amount {
	return Amount(math.Round(v * paisePerRupee))
}

// Paise returns the raw minor-unit value.
func (a Amount) Paise() int64 { return int64(a) }

// Rupees returns the decimal rupee value. Display only; do not compute on it.
func (a Amount) Rupees() float64 { return float64(a) / paisePerRupee }

// WholeRupees returns the amount rounded to the nearest whole rupee.
func (a Amount) WholeRupees() int64 {
	return int64(math.Round(float64(a) / paisePerRupee))
}

// Parse extracts an amount from a displayed currency string. Currency
// symbols, thousands separators and surrounding text are tolerated in any
// position; anything that still fails to parse yields zero, never an error.
func Parse(display string) Amount {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return FromRupees(v)
}

// Format renders the amount with the rupee symbol, Indian digit grouping
// and two decimals, e.g. ₹12,34,567.89.
func Format(a Amount) string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s₹%s.%02d", sign, groupIndian(v/paisePerRupee), v%paisePerRupee)
}

// FormatWhole renders the amount rounded to whole rupees without decimals,
// the style used for invoice grand totals.
func FormatWhole(a Amount) string {
	v := a.WholeRupees()
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "₹" + groupIndian(v)
}

// groupIndian inserts commas in the Indian pattern: the last three digits
// form one group, everything before that groups in twos.
func groupIndian(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
