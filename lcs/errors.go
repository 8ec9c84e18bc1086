package lcs

// Package errors.go: sentinel error set (unified, consistent).
//
// This file defines ONLY package-level sentinel errors. Every exported
// operation that can fail returns one of these (possibly wrapped with %w for
// call-site context) and callers MUST branch on them with errors.Is, never on
// the message string.
//
// Error taxonomy (see spec.md §7):
//   - Precondition violation: empty inputs, length mismatches, tile size out
//     of range, region size not a multiple of the tile size, shared-corner
//     mismatch on the constrained CPU evaluator. Reported immediately, never
//     recovered from locally.
//   - Device failure: anything that goes wrong on the Accelerator side of a
//     wavefront wave. Fatal for the call; never retried.
//   - No accelerator is explicitly NOT an error: Fusion falls back to CpuLCS
//     silently when acc is nil.

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence is returned when base, latest, verWeights or horWeights
	// is empty where the tile contract requires all four to be non-empty.
	ErrEmptySequence = errors.New("megalcs: sequence or boundary vector is empty")

	// ErrLengthMismatch is returned when len(base) != len(verWeights) or
	// len(latest) != len(horWeights).
	ErrLengthMismatch = errors.New("megalcs: sequence and boundary vector length mismatch")

	// ErrNotSquareTile is returned by BlockLCS when base and latest do not
	// have the same length (BlockLCS operates on S x S tiles only; arbitrary
	// rectangles are CpuLCS's job).
	ErrNotSquareTile = errors.New("megalcs: tile kernel requires a square S x S tile")

	// ErrTileSizeOutOfRange is returned when the requested tile size S is
	// outside [1, 256].
	ErrTileSizeOutOfRange = errors.New("megalcs: tile size out of range [1, 256]")

	// ErrRegionNotMultiple is returned when the wavefront scheduler is asked
	// to process a region whose dimensions are not exact multiples of the
	// tile size.
	ErrRegionNotMultiple = errors.New("megalcs: region dimensions are not a multiple of the tile size")

	// ErrCornerMismatch is returned by CpuLCSConstrained when
	// verWeights[0] != horWeights[0].
	ErrCornerMismatch = errors.New("megalcs: constrained tile requires verWeights[0] == horWeights[0]")

	// ErrNoAccelerator is returned by WaveFrontLCS when called with a nil
	// Accelerator. Fusion never triggers this: it routes to CpuLCS itself
	// whenever no accelerator is available.
	ErrNoAccelerator = errors.New("megalcs: wavefront scheduler requires a non-nil accelerator")

	// ErrDeviceFailure wraps any failure surfaced by the Accelerator while
	// executing a wave. It is always wrapped with %w, so errors.Is(err,
	// ErrDeviceFailure) matches even though the message carries more context.
	ErrDeviceFailure = errors.New("megalcs: accelerator failure")
)

// wrapf attaches call-site context to a sentinel without losing errors.Is
// matchability, matching the builder/matrix sentinel-wrapping convention:
// sentinels are never formatted at definition site, only at the boundary
// where context is available.
func wrapf(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
