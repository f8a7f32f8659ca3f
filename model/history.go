package model

const historyDepth = 5

// History keeps the hashes of recent grids to detect still-lifes and short cycles
type History struct {
	hashes []string
}

func NewHistory() *History {
	return &History{}
}

/*
Observe records v and returns the period of the cycle it closes: 1 when v equals the previous
grid, k when it equals the grid k rounds back. Zero means no repeat within the last five grids.
*/
func (h *History) Observe(v View) int {
	hash := Hash(v)

	period := 0
	for k := 1; k <= len(h.hashes); k++ {
		if h.hashes[len(h.hashes)-k] == hash {
			period = k
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	// Keep only the last few states
	if len(h.hashes) > historyDepth {
		h.hashes = h.hashes[1:]
	}
	return period
}
