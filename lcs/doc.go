// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lcs computes the length of the longest common subsequence (LCS) of
// two integer sequences using a tiled wavefront scheme.
//
// The classical LCS recurrence is reformulated as a boundary-only computation
// on fixed-size tiles: a tile's output is fully determined by its top and left
// boundary weight vectors plus its two input slices, and its right/bottom
// boundary can be written back in place over the same vectors. That contract
// (BlockLCS) lets tiles be composed horizontally and vertically without ever
// materializing the full (m x n) DP matrix.
//
// Four pieces build on top of the tile contract:
//
//   - BlockLCS is the tile kernel itself, vectorized across each anti-diagonal
//     of the tile using github.com/ajroetker/go-highway/hwy.
//   - CpuLCS is a scalar, arbitrary-rectangle evaluator used for small inputs,
//     remainder strips, and as the tile-level golden reference.
//   - WaveFrontLCS partitions a region whose dimensions are exact multiples of
//     the tile size into a grid of tiles and executes them in anti-diagonal
//     waves, dispatching each wave's independent tiles onto an Accelerator.
//   - Fusion decomposes an arbitrary (m, n) problem into a regular interior
//     plus up to three edge strips, routes each to WaveFrontLCS or CpuLCS, and
//     stitches their boundaries together.
//
// MegaLCSLen is the public entry point: it picks a default Accelerator, calls
// Fusion with the default tile size, and returns the LCS length — the last
// entry of the final horizontal boundary vector.
//
// The package computes LCS length only; it does not reconstruct a subsequence,
// and it does not handle non-integer alphabets (callers intern symbols to
// int32 themselves).
package lcs
