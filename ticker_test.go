package portfolio

import "testing"

func TestValidTicker(t *testing.T) {
	testCases := []struct {
		name   string
		ticker string
		want   bool
	}{
		{"Single letter", "F", true},
		{"Four letters", "AAPL", true},
		{"Lowercase short", "aapl", true},
		{"Dot class share", "BR.B", true},
		{"Dash class share", "BF-B", true},
		{"Five uppercase letters", "GOOGL", true},
		{"Five lowercase letters", "googl", false},
		{"Six letters", "ABCDEF", false},
		{"Five with dot", "BRK.B", false},
		{"Digit", "A1", false},
		{"Space", "A B", false},
		{"Empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidTicker(tc.ticker); got != tc.want {
				t.Errorf("ValidTicker(%q) = %v, want %v", tc.ticker, got, tc.want)
			}
		})
	}
}
