package lcs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orunco/MegaLCS/lcs"
)

func newTestAccelerator(t *testing.T) *lcs.Accelerator {
	t.Helper()
	acc := lcs.NewAccelerator(4)
	t.Cleanup(acc.Close)
	return acc
}

func TestWaveFrontLCSMatchesCpuLCS(t *testing.T) {
	acc := newTestAccelerator(t)

	base := toSeq("XMJYAUZXMJYAUZXMJYAUZXMJYAUZ")
	latest := toSeq("MZJAWXUMZJAWXUMZJAWXUMZJAWXU")
	const tileSize = 4
	require.Zero(t, len(base)%tileSize)
	require.Zero(t, len(latest)%tileSize)

	wfVer := make([]int32, len(base))
	wfHor := make([]int32, len(latest))
	_, err := lcs.WaveFrontLCS(acc, base, latest, wfVer, wfHor, tileSize, false)
	require.NoError(t, err)

	cpuVer := make([]int32, len(base))
	cpuHor := make([]int32, len(latest))
	require.NoError(t, lcs.CpuLCS(base, latest, cpuVer, cpuHor))

	require.Equal(t, cpuVer, wfVer)
	require.Equal(t, cpuHor, wfHor)
}

func TestWaveFrontLCSScenario6FullMatchingRun(t *testing.T) {
	acc := newTestAccelerator(t)

	const n = 65536
	const s = 256
	base := make([]int32, n)
	latest := make([]int32, n)

	ver := make([]int32, n)
	hor := make([]int32, n)

	snapshots, err := lcs.WaveFrontLCS(acc, base, latest, ver, hor, s, true)
	require.NoError(t, err)
	require.NotEmpty(t, snapshots)
	require.Equal(t, n/s+n/s-1, len(snapshots))

	for i := 0; i < n; i++ {
		require.Equal(t, int32(i+1), hor[i], "horWeights[%d]", i)
		require.Equal(t, int32(i+1), ver[i], "verWeights[%d]", i)
	}
}

func TestWaveFrontLCSDebugSnapshots(t *testing.T) {
	acc := newTestAccelerator(t)

	base := toSeq("XMJYAUZXMJYAUZ")
	latest := toSeq("MZJAWXUMZJAWXU")
	const tileSize = 2

	ver := make([]int32, len(base))
	hor := make([]int32, len(latest))
	snapshots, err := lcs.WaveFrontLCS(acc, base, latest, ver, hor, tileSize, true)
	require.NoError(t, err)

	bs, ls := len(base)/tileSize, len(latest)/tileSize
	require.Equal(t, bs+ls-1, len(snapshots))
	for i, snap := range snapshots {
		require.Equal(t, i, snap.Wave)
		require.Len(t, snap.VerWeights, len(base))
		require.Len(t, snap.HorWeights, len(latest))
	}
	// The final snapshot reflects the fully-converged boundary.
	require.Equal(t, ver, snapshots[len(snapshots)-1].VerWeights)
	require.Equal(t, hor, snapshots[len(snapshots)-1].HorWeights)
}

func TestWaveFrontLCSPreconditionViolations(t *testing.T) {
	acc := newTestAccelerator(t)
	ok := make([]int32, 4)

	_, err := lcs.WaveFrontLCS(nil, ok, ok, ok, ok, 4, false)
	require.ErrorIs(t, err, lcs.ErrNoAccelerator)

	_, err = lcs.WaveFrontLCS(acc, ok, ok, ok, ok, 0, false)
	require.ErrorIs(t, err, lcs.ErrTileSizeOutOfRange)

	_, err = lcs.WaveFrontLCS(acc, ok, ok, ok, ok, 257, false)
	require.ErrorIs(t, err, lcs.ErrTileSizeOutOfRange)

	_, err = lcs.WaveFrontLCS(acc, []int32{1, 2, 3}, ok, []int32{0, 0, 0}, ok, 4, false)
	require.ErrorIs(t, err, lcs.ErrRegionNotMultiple)
}

func TestAcceleratorInfo(t *testing.T) {
	acc := newTestAccelerator(t)
	info := acc.Info()
	require.Equal(t, 4, info.Workers)
	require.Greater(t, info.Lanes, 0)

	var nilAcc *lcs.Accelerator
	require.Equal(t, lcs.DeviceInfo{}, nilAcc.Info())
	nilAcc.Close() // must not panic
}
