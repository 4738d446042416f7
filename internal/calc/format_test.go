package calc

import "testing"

func TestDisplayFormat(t *testing.T) {
	f := formatter{places: 2}
	for _, tc := range []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{2, "2"},
		{2.5, "2.5"},
		{-2.5, "-2.5"},
		{1234.5, "1234.5"},    // no grouping
		{1.0 / 3, "0.333333"}, // six digits even with places=2
		{0.0000001, "0"},      // rounds away below the display precision
		{-0.0000001, "0"},     // no "-0"
	} {
		if got := f.display(tc.v); got != tc.want {
			t.Errorf("display(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}

	// Wider field precision widens the display too.
	wide := formatter{places: 8}
	if got := wide.display(0.00000025); got != "0.00000025" {
		t.Errorf("display(0.00000025) = %q, want %q", got, "0.00000025")
	}
}

func TestCommitFormat(t *testing.T) {
	f := formatter{places: 2}
	for _, tc := range []struct {
		v, want float64
	}{
		{3.333333, 3.33},
		{3.336, 3.34},
		{-7, 0}, // money and miles are never negative
		{0, 0},
		{12, 12},
	} {
		if got := f.commit(tc.v); got != tc.want {
			t.Errorf("commit(%v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}
