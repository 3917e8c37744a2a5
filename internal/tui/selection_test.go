package tui

import "testing"

func TestClampSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		n        int
		want     int
	}{
		{"empty view clears", 2, 0, noSelection},
		{"empty view stays empty", noSelection, 0, noSelection},
		{"in range keeps", 1, 3, 1},
		{"first item keeps", 0, 1, 0},
		{"past end resets", 5, 3, 0},
		{"exactly at length resets", 3, 3, 0},
		{"no selection on non-empty resets", noSelection, 3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := clampSelection(tc.selected, tc.n); got != tc.want {
				t.Errorf("clampSelection(%d, %d) = %d, want %d", tc.selected, tc.n, got, tc.want)
			}
		})
	}
}

func TestNextSelectionWraps(t *testing.T) {
	tests := []struct {
		selected, n, want int
	}{
		{0, 3, 1},
		{1, 3, 2},
		{2, 3, 0},
		{0, 1, 0},
		{noSelection, 3, 0},
		{noSelection, 0, noSelection},
		{4, 0, noSelection},
	}

	for _, tc := range tests {
		if got := nextSelection(tc.selected, tc.n); got != tc.want {
			t.Errorf("nextSelection(%d, %d) = %d, want %d", tc.selected, tc.n, got, tc.want)
		}
	}
}

func TestPrevSelectionWraps(t *testing.T) {
	tests := []struct {
		selected, n, want int
	}{
		{2, 3, 1},
		{1, 3, 0},
		{0, 3, 2},
		{0, 1, 0},
		{noSelection, 3, 2},
		{noSelection, 0, noSelection},
	}

	for _, tc := range tests {
		if got := prevSelection(tc.selected, tc.n); got != tc.want {
			t.Errorf("prevSelection(%d, %d) = %d, want %d", tc.selected, tc.n, got, tc.want)
		}
	}
}

func TestNextPrevRoundTrip(t *testing.T) {
	const n = 5
	for start := 0; start < n; start++ {
		if got := prevSelection(nextSelection(start, n), n); got != start {
			t.Errorf("prev(next(%d)) = %d, want %d", start, got, start)
		}
		if got := nextSelection(prevSelection(start, n), n); got != start {
			t.Errorf("next(prev(%d)) = %d, want %d", start, got, start)
		}
	}
}

func TestSelectionInvariant(t *testing.T) {
	// After clamping, the selection is noSelection exactly when the view
	// is empty, otherwise a valid index.
	for _, selected := range []int{-3, noSelection, 0, 1, 7} {
		for _, n := range []int{0, 1, 2, 5} {
			got := clampSelection(selected, n)
			if n == 0 && got != noSelection {
				t.Errorf("clampSelection(%d, 0) = %d, want noSelection", selected, got)
			}
			if n > 0 && (got < 0 || got >= n) {
				t.Errorf("clampSelection(%d, %d) = %d, out of range", selected, n, got)
			}
		}
	}
}
