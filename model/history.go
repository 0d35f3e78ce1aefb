package model

const defaultHistorySize = 5

// History stores recent grid states for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps at most size recent states, non-positive sizes use the default
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds the current state of g and drops the oldest entries beyond size
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[len(h.hashes)-h.size:]
	}
}

// IsStagnant reports whether g repeats one of the last three recorded states,
// which covers still lifes and oscillators with period up to 3.
// Call it before recording the state being checked.
func (h *History) IsStagnant(g *Grid) bool {
	current := g.Hash()
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == current {
			return true
		}
	}
	return false
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}
