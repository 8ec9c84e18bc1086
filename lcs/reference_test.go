package lcs_test

// referenceDP computes the classical O(m*n) LCS DP matrix with a zero
// boundary and returns its last column (per-row) and last row (per-column),
// i.e. what spec.md calls verWeights and horWeights. It exists solely as a
// test oracle (spec.md §1 explicitly keeps the reference DP routine out of
// the core) and is never imported by package lcs itself.
func referenceDP(base, latest []int32) (verWeights, horWeights []int32) {
	m, n := len(base), len(latest)
	dp := make([][]int32, m+1)
	for i := range dp {
		dp[i] = make([]int32, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if base[i-1] == latest[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max32(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	verWeights = make([]int32, m)
	for i := 1; i <= m; i++ {
		verWeights[i-1] = dp[i][n]
	}
	horWeights = make([]int32, n)
	for j := 1; j <= n; j++ {
		horWeights[j-1] = dp[m][j]
	}
	return verWeights, horWeights
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
