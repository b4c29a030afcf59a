package interpreter

// History is the input-recall buffer for a terminal session: prior
// submissions newest-last, with a cursor navigable backward and
// forward. It is bounded only by session memory.
type History struct {
	entries []string
	cursor  int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Push records a submission and resets the recall cursor.
func (h *History) Push(line string) {
	if line == "" {
		return
	}
	h.entries = append(h.entries, line)
	h.cursor = -1
}

// Prev steps backward through history. Returns ("", false) when empty;
// repeated calls pin at the oldest entry.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == -1 {
		h.cursor = len(h.entries) - 1
	} else if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps forward. Stepping past the newest entry returns ("",
// false) and resets the cursor, clearing the input line.
func (h *History) Next() (string, bool) {
	if len(h.entries) == 0 || h.cursor == -1 {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return h.entries[h.cursor], true
	}
	h.cursor = -1
	return "", false
}
