package service

import "testing"

func TestGrossAmountToMinor(t *testing.T) {
	cases := []struct {
		gross string
		want  int64
	}{
		{"10000.00", 1000000},
		{"10000.01", 1000001}, // exact decimal sits just below in binary
		{"0.29", 29},
		{"19.99", 1999},
		{"50", 5000},
		{"", 0},
		{"not-a-number", 0},
	}
	for _, tc := range cases {
		if got := grossAmountToMinor(tc.gross); got != tc.want {
			t.Errorf("grossAmountToMinor(%q) = %d, want %d", tc.gross, got, tc.want)
		}
	}
}
