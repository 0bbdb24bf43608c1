package money

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		display string
		want    Amount
	}{
		{"plain", "1234.50", FromPaise(123450)},
		{"rupee symbol", "₹1,234.50", FromPaise(123450)},
		{"grouped indian", "₹12,34,567.89", FromPaise(123456789)},
		{"surrounding text", "Total: 500 INR", FromPaise(50000)},
		{"whole", "₹1,230", FromPaise(123000)},
		{"garbage", "n/a", 0},
		{"empty", "", 0},
		{"only symbol", "₹", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.display))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "₹0.00", Format(0))
	assert.Equal(t, "₹1,234.50", Format(FromPaise(123450)))
	assert.Equal(t, "₹12,34,567.89", Format(FromPaise(123456789)))
	assert.Equal(t, "₹100.00", Format(FromPaise(10000)))
	assert.Equal(t, "₹1,230", FormatWhole(FromPaise(123000)))
	assert.Equal(t, "₹1,00,000", FormatWhole(FromPaise(10000000)))
}

func TestParseFormatRoundTrip(t *testing.T) {
	values := []Amount{0, 1, 99, 100, 123450, 123456789, 100000000000}
	for _, v := range values {
		assert.Equal(t, v, Parse(Format(v)), "round trip of %d paise", v)
	}
}

func TestInWords(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Zero"},
		{5, "Five"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{45, "Forty Five"},
		{100, "One Hundred"},
		{105, "One Hundred and Five"},
		{999, "Nine Hundred and Ninety Nine"},
		{1000, "One Thousand"},
		{1056, "One Thousand Fifty Six"},
		{100000, "One Lakh"},
		{123456, "One Lakh Twenty Three Thousand Four Hundred and Fifty Six"},
		{1_00_00_000, "One Crore"},
		{9_13_183, "Nine Lakh Thirteen Thousand One Hundred and Eighty Three"},
	}
	for _, tc := range cases {
		got, err := InWords(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "InWords(%d)", tc.in)
		assert.Equal(t, strings.TrimSpace(got), got, "no surrounding whitespace")
	}
}

func TestInWordsNegative(t *testing.T) {
	_, err := InWords(-1)
	assert.ErrorIs(t, err, ErrNegativeAmount)
}
