package lcs

import (
	"runtime"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// Accelerator is the Go-native stand-in for the "data-parallel accelerator"
// the spec describes (spec.md §1): device enumeration, command-queue
// lifecycle and kernel source templating on a real GPU/OpenCL platform are
// explicitly out of scope, treated as external collaborators. What remains in
// scope is the contract an accelerator handle must satisfy: given W
// independent tiles in a wave, run them concurrently in blocks of S
// cooperating lanes (spec.md §4.3 "Dispatch").
//
// A *workerpool.Pool of persistent goroutines is the direct analogue of a
// persistent device command queue, and BlockLCS's hwy-vectorized inner loop
// is the analogue of the S cooperating lanes within one block. A nil
// *Accelerator means "no device supplied"; Fusion treats that as the
// not-an-error no-device condition of spec.md §7 and falls back to CpuLCS.
type Accelerator struct {
	pool *workerpool.Pool
	info DeviceInfo
}

// NewAccelerator creates an Accelerator backed by workers persistent worker
// goroutines. If workers <= 0, runtime.GOMAXPROCS(0) is used.
func NewAccelerator(workers int) *Accelerator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := workerpool.New(workers)
	return &Accelerator{
		pool: pool,
		info: DeviceInfo{
			Name:    hwy.CurrentName(),
			Lanes:   hwy.MaxLanes[int32](),
			Workers: pool.NumWorkers(),
		},
	}
}

// DefaultAccelerator picks a default accelerator if one is visible, or
// returns nil otherwise (spec.md §6.1, "Picks a default accelerator if one is
// visible, otherwise uses the CPU evaluator"). There being no OpenCL platform
// layer to enumerate in this port (spec.md §1), visibility is judged by
// whether this runtime can usefully parallelize at all: more than one OS
// thread available to Go, per runtime.GOMAXPROCS.
func DefaultAccelerator() *Accelerator {
	if runtime.GOMAXPROCS(0) < 2 {
		return nil
	}
	return NewAccelerator(0)
}

// Info reports the Accelerator's dispatch level, lane width and worker count.
// Info on a nil *Accelerator returns the zero DeviceInfo.
func (a *Accelerator) Info() DeviceInfo {
	if a == nil {
		return DeviceInfo{}
	}
	return a.info
}

// Close releases the Accelerator's worker pool. Close on a nil *Accelerator
// is a no-op. The pool is reusable across many Fusion/WaveFrontLCS calls;
// Close should only be called once the caller is done with the Accelerator
// entirely.
func (a *Accelerator) Close() {
	if a == nil || a.pool == nil {
		return
	}
	a.pool.Close()
}
