package editor

import "github.com/sheikhrachel/go-gol-editor/model"

// cycleWindow is how many past generations a repeat is looked for in
const cycleWindow = 3

// History remembers the hashes of recent grids to spot boards that stopped
// changing or cycle with a short period
type History struct {
	hashes []string
	size   int
}

// NewHistory keeps the last size hashes, at least cycleWindow
func NewHistory(size int) *History {
	return &History{size: max(size, cycleWindow)}
}

// Record adds g to the history and reports whether it repeats one of the last
// cycleWindow recorded grids
func (h *History) Record(g *model.Grid) bool {
	hash := g.Hash()
	stagnant := h.contains(hash)

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

func (h *History) contains(hash string) bool {
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-cycleWindow; i-- {
		if h.hashes[i] == hash {
			return true
		}
	}
	return false
}

// Reset forgets every recorded grid
func (h *History) Reset() {
	h.hashes = nil
}
