package lcs

// Sequence is an ordered sequence of 32-bit signed integers compared only for
// equality (spec.md §3.1). Callers intern non-integer alphabets to int32
// themselves; the package never assumes an ordering on the alphabet.
type Sequence = []int32

// BoundarySnapshot is a point-in-time copy of the boundary weight vectors,
// captured by WaveFrontLCS after a wave completes when debug tracing is
// requested. It exists purely for diagnostics: the live verWeights/horWeights
// slices are already the authoritative, in-place state.
type BoundarySnapshot struct {
	// Wave is the anti-diagonal wave index (0-based) this snapshot was taken
	// after.
	Wave int

	// VerWeights is a copy of the right-boundary vector as it stood after
	// Wave completed.
	VerWeights []int32

	// HorWeights is a copy of the bottom-boundary vector as it stood after
	// Wave completed.
	HorWeights []int32
}

// DeviceInfo describes the execution backend an Accelerator is bound to. It
// is informational only — nothing in the package branches on it beyond
// logging — since actual device enumeration is out of scope (spec.md §1).
type DeviceInfo struct {
	// Name is the SIMD dispatch level in use for the tile kernel's
	// vectorized path, e.g. "avx2", "neon", "scalar".
	Name string

	// Lanes is the number of int32 lanes available per vector at Name's
	// width.
	Lanes int

	// Workers is the number of persistent worker goroutines backing the
	// Accelerator's wavefront dispatch.
	Workers int
}
