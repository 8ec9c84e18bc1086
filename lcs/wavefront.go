package lcs

import (
	"fmt"
	"log/slog"
)

// WaveFrontLCS computes LCS on a region whose dimensions are exact multiples
// of tileSize, partitioning it into a grid of S x S tiles and executing them
// in anti-diagonal waves (spec.md §4.3).
//
// Tile (i, j) depends on tile (i-1, j) through its verWeights row band and on
// tile (i, j-1) through its horWeights column band; tiles on the same
// anti-diagonal i+j=k are independent and are dispatched onto acc's worker
// pool concurrently within a wave. A full barrier (waiting for the whole wave
// to drain) separates consecutive waves, matching the "device-queue finish"
// synchronization point of spec.md §5.
//
// verWeights and horWeights are mutated in place, exactly as in BlockLCS.
// When debug is true, a BoundarySnapshot is captured after every wave;
// otherwise the returned slice is nil.
//
// A panic recovered from a tile is wrapped in ErrDeviceFailure; an error
// returned by the tile kernel itself keeps its own sentinel. Either is
// returned as soon as its wave has drained, no later wave runs, and the
// scheduler does not retry (spec.md §7).
func WaveFrontLCS(acc *Accelerator, base, latest, verWeights, horWeights []int32, tileSize int, debug bool) ([]BoundarySnapshot, error) {
	if acc == nil {
		return nil, wrapf("WaveFrontLCS", ErrNoAccelerator)
	}
	if tileSize < 1 || tileSize > 256 {
		return nil, wrapf("WaveFrontLCS", ErrTileSizeOutOfRange)
	}

	m, n := len(base), len(latest)
	if m == 0 || n == 0 {
		return nil, wrapf("WaveFrontLCS", ErrEmptySequence)
	}
	if len(verWeights) != m || len(horWeights) != n {
		return nil, wrapf("WaveFrontLCS", ErrLengthMismatch)
	}
	if m%tileSize != 0 || n%tileSize != 0 {
		return nil, wrapf("WaveFrontLCS", ErrRegionNotMultiple)
	}

	bs := m / tileSize
	ls := n / tileSize

	var snapshots []BoundarySnapshot

	for k := 0; k <= bs+ls-2; k++ {
		jlo := max(0, k-(bs-1))
		jhi := min(k, ls-1)
		w := jhi - jlo + 1

		errs := make([]error, w)
		acc.pool.ParallelFor(w, func(start, end int) {
			for idx := start; idx < end; idx++ {
				errs[idx] = runTile(base, latest, verWeights, horWeights, tileSize, k-(jlo+idx), jlo+idx)
			}
		})
		for _, e := range errs {
			if e != nil {
				return snapshots, wrapf("WaveFrontLCS", e)
			}
		}

		if debug {
			slog.Debug("wavefront wave complete",
				"wave", k, "tiles", w, "accelerator", acc.Info().Name)
			snapshots = append(snapshots, BoundarySnapshot{
				Wave:       k,
				VerWeights: append([]int32(nil), verWeights...),
				HorWeights: append([]int32(nil), horWeights...),
			})
		}
	}

	return snapshots, nil
}

// runTile executes tile (i, j) of a tileSize-tiled grid, recovering from any
// panic so that one misbehaving tile surfaces as ErrDeviceFailure rather than
// taking the whole process down — the Go analogue of a fatal device-side
// status code on a real accelerator.
func runTile(base, latest, verWeights, horWeights []int32, tileSize, i, j int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tile(%d,%d): %v: %w", i, j, r, ErrDeviceFailure)
		}
	}()

	bSlice := base[i*tileSize : (i+1)*tileSize]
	lSlice := latest[j*tileSize : (j+1)*tileSize]
	vSlice := verWeights[i*tileSize : (i+1)*tileSize]
	hSlice := horWeights[j*tileSize : (j+1)*tileSize]

	if kerr := BlockLCS(bSlice, lSlice, vSlice, hSlice); kerr != nil {
		return fmt.Errorf("tile(%d,%d): %w", i, j, kerr)
	}
	return nil
}
