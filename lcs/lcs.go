package lcs

// MegaLCSLen computes the length of the longest common subsequence of base
// and latest (spec.md §6.1). It picks a default accelerator if one is
// visible, otherwise uses CpuLCS, and uses DefaultTileSize.
//
// An empty base or latest trivially has an empty LCS; MegaLCSLen special-cases
// that rather than invoking Fusion, since the tile contract requires
// non-empty inputs (spec.md §3.2 invariant 4).
func MegaLCSLen(base, latest []int32) (int, error) {
	if len(base) == 0 || len(latest) == 0 {
		return 0, nil
	}

	acc := DefaultAccelerator()
	if acc != nil {
		defer acc.Close()
	}

	_, _, horWeights, err := Fusion(acc, base, latest, nil, nil, DefaultTileSize, false)
	if err != nil {
		return 0, wrapf("MegaLCSLen", err)
	}

	return int(horWeights[len(horWeights)-1]), nil
}
