package lcs

// CpuLCS is the host-side tile evaluator (spec.md §4.2): unlike BlockLCS it
// accepts any rectangle, not only S x S, and walks it single-threaded with a
// one-row rolling buffer rather than an anti-diagonal sweep. It is the
// fallback when no accelerator is present, the handler for fusion's remainder
// strips, and the golden reference BlockLCS is checked against in tests.
//
// base has one entry per row, latest one per column. verWeights (len(base))
// and horWeights (len(latest)) are the left and top boundary on entry, the
// right and bottom boundary on return, mutated in place exactly as in
// BlockLCS's contract.
func CpuLCS(base, latest, verWeights, horWeights []int32) error {
	if len(base) == 0 || len(latest) == 0 || len(verWeights) == 0 || len(horWeights) == 0 {
		return wrapf("CpuLCS", ErrEmptySequence)
	}
	if len(base) != len(verWeights) {
		return wrapf("CpuLCS", ErrLengthMismatch)
	}
	if len(latest) != len(horWeights) {
		return wrapf("CpuLCS", ErrLengthMismatch)
	}

	rows, cols := len(base), len(latest)
	for b := 0; b < rows; b++ {
		left := verWeights[b]
		for l := 0; l < cols; l++ {
			up := horWeights[l]
			var v int32
			if base[b] == latest[l] {
				v = min(left, up) + 1
			} else {
				v = max(left, up)
			}
			horWeights[l] = v
			left = v
		}
		verWeights[b] = left
	}

	return nil
}

// CpuLCSConstrained is the memory-frugal tile variant noted in spec.md §4.2
// and §9: it requires the boundary vectors to share their corner,
// verWeights[0] == horWeights[0], which lets an implementation store only one
// shared scalar there instead of two. It does not change external behavior
// versus CpuLCS beyond enforcing that precondition; it exists to exercise
// ErrCornerMismatch and document the space/coupling trade-off, not as the
// package's default path.
func CpuLCSConstrained(base, latest, verWeights, horWeights []int32) error {
	if len(verWeights) == 0 || len(horWeights) == 0 {
		return wrapf("CpuLCSConstrained", ErrEmptySequence)
	}
	if verWeights[0] != horWeights[0] {
		return wrapf("CpuLCSConstrained", ErrCornerMismatch)
	}
	return CpuLCS(base, latest, verWeights, horWeights)
}
