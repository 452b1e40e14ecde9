package view

import "testing"

func TestNaira(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₦0"},
		{500, "₦500"},
		{1000, "₦1,000"},
		{12500, "₦12,500"},
		{1234567, "₦1,234,567"},
		{1999.5, "₦1,999.50"},
		{8000.25, "₦8,000.25"},
		{-12500, "-₦12,500"},
		// fractions that round up to the next whole naira must carry
		{1999.999, "₦2,000"},
		{4.995, "₦5"},
		{0.994, "₦0.99"},
		{-4.995, "-₦5"},
	}
	for _, c := range cases {
		if got := Naira(c.in); got != c.want {
			t.Errorf("Naira(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
