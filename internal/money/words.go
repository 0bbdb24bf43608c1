package money

import (
	"errors"
	"strings"
)

// ErrNegativeAmount is returned when a negative value is passed to InWords.
var ErrNegativeAmount = errors.New("negative_amount")

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// InWords converts a whole rupee amount into English words using the
// Indian numbering convention (crore, lakh, thousand, hundred). The
// caller appends a suffix such as "Only" where the document calls for it.
//
//	InWords(0)      == "Zero"
//	InWords(100000) == "One Lakh"
//	InWords(123456) == "One Lakh Twenty Three Thousand Four Hundred and Fifty Six"
func InWords(rupees int64) (string, error) {
	if rupees < 0 {
		return "", ErrNegativeAmount
	}
	if rupees == 0 {
		return "Zero", nil
	}

	var parts []string
	if rupees >= 1_00_00_000 {
		parts = append(parts, underHundred(rupees/1_00_00_000)+" Crore")
		rupees %= 1_00_00_000
	}
	if rupees >= 1_00_000 {
		parts = append(parts, underHundred(rupees/1_00_000)+" Lakh")
		rupees %= 1_00_000
	}
	if rupees >= 1_000 {
		parts = append(parts, underHundred(rupees/1_000)+" Thousand")
		rupees %= 1_000
	}
	if rupees >= 100 {
		hundreds := onesWords[rupees/100] + " Hundred"
		rupees %= 100
		if rupees > 0 {
			hundreds += " and " + underHundred(rupees)
			rupees = 0
		}
		parts = append(parts, hundreds)
	}
	if rupees > 0 {
		parts = append(parts, underHundred(rupees))
	}
	return strings.Join(parts, " "), nil
}

func underHundred(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	w := tensWords[n/10]
	if n%10 > 0 {
		w += " " + onesWords[n%10]
	}
	return w
}
