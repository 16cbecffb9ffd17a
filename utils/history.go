package utils

// historySize is how many recent grid hashes are kept for cycle detection.
const historySize = 5

// History remembers the hashes of recent generations.
type History struct {
	hashes []string
}

// Add records hash as the newest generation.
func (h *History) Add(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash repeats one of the last three recorded
// generations, which covers still lifes and period 2 and 3 oscillators.
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for _, prev := range h.hashes[len(h.hashes)-3:] {
		if prev == hash {
			return true
		}
	}
	return false
}

// Reset forgets all recorded generations.
func (h *History) Reset() {
	h.hashes = nil
}
