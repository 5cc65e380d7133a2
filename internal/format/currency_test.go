package format

import "testing"

func TestINR(t *testing.T) {
	cases := map[float64]string{
		12500:  "₹12,500",
		0:      "₹0",
		999:    "₹999",
		4500.5: "₹4,500.5",
		-250:   "-₹250",
	}
	for in, want := range cases {
		if got := INR(in); got != want {
			t.Fatalf("INR(%v) = %q, want %q", in, got, want)
		}
	}
}
