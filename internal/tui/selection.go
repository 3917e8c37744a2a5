package tui

// noSelection marks an empty selection. The selection is noSelection
// exactly when the filtered view is empty; otherwise it is a valid index
// into the view.
const noSelection = -1

// clampSelection re-validates a selection index against a view of n
// items: an in-range index is kept, anything out of range becomes 0 when
// the view is non-empty, and an empty view clears the selection.
func clampSelection(selected, n int) int {
	if n == 0 {
		return noSelection
	}
	if selected < 0 || selected >= n {
		return 0
	}
	return selected
}

// nextSelection advances circularly, wrapping from the last item to the
// first. No-op on an empty view.
func nextSelection(selected, n int) int {
	if n == 0 {
		return noSelection
	}
	if selected < 0 || selected >= n-1 {
		return 0
	}
	return selected + 1
}

// prevSelection retreats circularly, wrapping from the first item to the
// last. No-op on an empty view.
func prevSelection(selected, n int) int {
	if n == 0 {
		return noSelection
	}
	if selected <= 0 {
		return n - 1
	}
	return selected - 1
}
