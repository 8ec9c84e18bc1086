package lcs

import "github.com/ajroetker/go-highway/hwy"

// BlockLCS computes one S x S tile's right and bottom boundary from its top
// and left boundary, in place (spec.md §4.1).
//
// base and latest are the tile's two length-S input slices. verWeights and
// horWeights are simultaneously input (the tile's left and top boundary) and
// output (its right and bottom boundary): on return, verWeights holds the new
// right edge and horWeights holds the new bottom edge, both expressed in the
// caller's coordinate frame.
//
// The recurrence for a cell (b, l), with L the left neighbor and U the upper
// neighbor:
//
//	if base[b] == latest[l]: min(L, U) + 1
//	else:                    max(L, U)
//
// Cell (b, l) depends only on (b-1, l), (b, l-1) and (b-1, l-1), so every cell
// on a common anti-diagonal b+l=d is independent of every other cell on that
// diagonal. BlockLCS processes one diagonal at a time and vectorizes the
// independent cells of each diagonal with hwy, the SIMD-lane realization of
// the "S concurrent workers in lockstep" model described in spec.md §4.1.
func BlockLCS(base, latest, verWeights, horWeights []int32) error {
	if len(base) == 0 || len(latest) == 0 || len(verWeights) == 0 || len(horWeights) == 0 {
		return wrapf("BlockLCS", ErrEmptySequence)
	}
	if len(base) != len(latest) {
		return wrapf("BlockLCS", ErrNotSquareTile)
	}
	if len(base) != len(verWeights) || len(latest) != len(horWeights) {
		return wrapf("BlockLCS", ErrLengthMismatch)
	}

	s := len(base)
	prev := make([]int32, s)
	cur := make([]int32, s)

	// Scratch buffers for the batched, lane-width portion of each diagonal.
	bBuf := make([]int32, s)
	lBuf := make([]int32, s)
	lhsBuf := make([]int32, s)
	rhsBuf := make([]int32, s)
	outBuf := make([]int32, s)

	lanes := hwy.MaxLanes[int32]()
	if lanes <= 0 {
		lanes = 1
	}

	for d := 0; d <= 2*(s-1); d++ {
		lo := max(0, d-s+1)
		hi := min(d, s-1)
		width := hi - lo + 1

		for idx := 0; idx < width; idx++ {
			b := lo + idx
			l := d - b
			bBuf[idx] = base[b]
			lBuf[idx] = latest[l]
			if l == 0 {
				lhsBuf[idx] = verWeights[b]
			} else {
				lhsBuf[idx] = prev[b]
			}
			if b == 0 {
				rhsBuf[idx] = horWeights[l]
			} else {
				rhsBuf[idx] = prev[b-1]
			}
		}

		one := hwy.Set(int32(1))
		i := 0
		for ; i+lanes <= width; i += lanes {
			vb := hwy.Load(bBuf[i:])
			vl := hwy.Load(lBuf[i:])
			vLhs := hwy.Load(lhsBuf[i:])
			vRhs := hwy.Load(rhsBuf[i:])

			mask := hwy.Equal(vb, vl)
			matched := hwy.Add(hwy.Min(vLhs, vRhs), one)
			unmatched := hwy.Max(vLhs, vRhs)
			res := hwy.IfThenElse(mask, matched, unmatched)

			hwy.Store(res, outBuf[i:])
		}
		for ; i < width; i++ {
			if bBuf[i] == lBuf[i] {
				outBuf[i] = min(lhsBuf[i], rhsBuf[i]) + 1
			} else {
				outBuf[i] = max(lhsBuf[i], rhsBuf[i])
			}
		}

		for idx := 0; idx < width; idx++ {
			b := lo + idx
			l := d - b
			v := outBuf[idx]
			cur[b] = v
			if l == s-1 {
				verWeights[b] = v
			}
			if b == s-1 {
				horWeights[l] = v
			}
		}

		prev, cur = cur, prev
	}

	return nil
}
