package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"10.5", "$10.50"},
		{"999", "$999.00"},
		{"6000", "$6,000.00"},
		{"1140", "$1,140.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-25", "-$25.00"},
	}
	for _, tc := range cases {
		got := FormatUSD(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "input %s", tc.in)
	}
}
