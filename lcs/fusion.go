package lcs

import (
	"log/slog"
	"sync"
)

// DefaultTileSize is the tile size MegaLCSLen uses when the caller does not
// pick one (spec.md §6.1).
const DefaultTileSize = 256

// Fusion computes LCS on an arbitrary (m, n) region, routing the regular
// interior to WaveFrontLCS and the edge remainders to CpuLCS, then stitching
// their boundaries together (spec.md §4.4).
//
// acc may be nil, meaning no accelerator is available; verWeights/horWeights
// may be nil, meaning a fresh computation with zero initial boundaries
// (§3.3) — pass non-nil vectors carried over from a previous region to
// stitch onto prior work instead.
//
// processedOnCPU is true iff the entire region was small enough, or no
// accelerator was supplied, such that the whole computation fell back to
// CpuLCS (spec.md §6.2). outVer and outHor are the same backing arrays as
// verWeights/horWeights (or freshly allocated ones, if those were nil),
// mutated in place and returned for convenience.
func Fusion(acc *Accelerator, base, latest, verWeights, horWeights []int32, tileSize int, debug bool) (processedOnCPU bool, outVer, outHor []int32, err error) {
	if tileSize < 1 || tileSize > 256 {
		return false, nil, nil, wrapf("Fusion", ErrTileSizeOutOfRange)
	}

	m, n := len(base), len(latest)
	if m == 0 || n == 0 {
		return false, nil, nil, wrapf("Fusion", ErrEmptySequence)
	}

	if verWeights == nil {
		verWeights = make([]int32, m)
	} else if len(verWeights) != m {
		return false, nil, nil, wrapf("Fusion", ErrLengthMismatch)
	}
	if horWeights == nil {
		horWeights = make([]int32, n)
	} else if len(horWeights) != n {
		return false, nil, nil, wrapf("Fusion", ErrLengthMismatch)
	}

	if m <= tileSize || n <= tileSize || acc == nil {
		if err := CpuLCS(base, latest, verWeights, horWeights); err != nil {
			return false, nil, nil, wrapf("Fusion", err)
		}
		return true, verWeights, horWeights, nil
	}

	bsN, br := m/tileSize, m%tileSize
	lsN, lr := n/tileSize, n%tileSize
	ltRows, ltCols := bsN*tileSize, lsN*tileSize

	if debug {
		slog.Debug("fusion region plan",
			"m", m, "n", n, "tileSize", tileSize,
			"ltRows", ltRows, "ltCols", ltCols, "remBottom", br, "remRight", lr)
	}

	ltVer := verWeights[:ltRows]
	ltHor := horWeights[:ltCols]
	if _, err := WaveFrontLCS(acc, base[:ltRows], latest[:ltCols], ltVer, ltHor, tileSize, debug); err != nil {
		return false, nil, nil, wrapf("Fusion: LT", err)
	}

	// RT and LB each depend only on LT's boundary, not on each other: RT
	// reads/writes verWeights[:ltRows] and horWeights[ltCols:], LB
	// reads/writes verWeights[ltRows:] and horWeights[:ltCols] — disjoint
	// slices of both arrays. With an accelerator present they run
	// concurrently; RB must still run last since it consumes both of their
	// outputs.
	if lr > 0 && br > 0 {
		var wg sync.WaitGroup
		var rtErr, lbErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			rtErr = CpuLCS(base[:ltRows], latest[ltCols:], verWeights[:ltRows], horWeights[ltCols:])
		}()
		go func() {
			defer wg.Done()
			lbErr = CpuLCS(base[ltRows:], latest[:ltCols], verWeights[ltRows:], horWeights[:ltCols])
		}()
		wg.Wait()
		if rtErr != nil {
			return false, nil, nil, wrapf("Fusion: RT", rtErr)
		}
		if lbErr != nil {
			return false, nil, nil, wrapf("Fusion: LB", lbErr)
		}
	} else if lr > 0 {
		if err := CpuLCS(base[:ltRows], latest[ltCols:], verWeights[:ltRows], horWeights[ltCols:]); err != nil {
			return false, nil, nil, wrapf("Fusion: RT", err)
		}
	} else if br > 0 {
		if err := CpuLCS(base[ltRows:], latest[:ltCols], verWeights[ltRows:], horWeights[:ltCols]); err != nil {
			return false, nil, nil, wrapf("Fusion: LB", err)
		}
	}

	if br > 0 && lr > 0 {
		if err := CpuLCS(base[ltRows:], latest[ltCols:], verWeights[ltRows:], horWeights[ltCols:]); err != nil {
			return false, nil, nil, wrapf("Fusion: RB", err)
		}
	}

	return false, verWeights, horWeights, nil
}
