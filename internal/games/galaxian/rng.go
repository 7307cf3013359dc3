package galaxian

// NextRandom advances a mulberry32 stream stored in state and returns a float in
// [0, 1). Every call reads and overwrites state exactly once.
func NextRandom(state *uint32) float64 {
	*state += 0x6D2B79F5
	t := *state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296.0
}

// rand draws from the state's own stream.
func (s *State) rand() float64 {
	return NextRandom(&s.RNGState)
}

// pickIndex draws a uniform index in [0, n). n must be positive.
func (s *State) pickIndex(n int) int {
	idx := int(s.rand() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
