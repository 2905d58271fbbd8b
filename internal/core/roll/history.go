package roll

// History is the ordered, append-only log of committed outcomes. It is owned
// by the Controller and lives for the lifetime of the application; only the
// most recent entries are ever surfaced for display.
type History struct {
	entries []Face
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Append records a committed outcome. Entries are never reordered or removed.
func (h *History) Append(f Face) {
	h.entries = append(h.entries, f)
}

// Len returns the total number of committed outcomes.
func (h *History) Len() int {
	return len(h.entries)
}

// Recent returns a copy of the last n entries, most-recent-last. It returns
// fewer when the history is still shorter than n.
func (h *History) Recent(n int) []Face {
	if n <= 0 {
		return nil
	}
	start := len(h.entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]Face, len(h.entries)-start)
	copy(out, h.entries[start:])
	return out
}
