// Package generator builds synthetic process sets for the simulator. All
// randomness comes from the *rand.Rand passed in, so a seed reproduces a set.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"cpu-scheduling-simulator/internal/core"
)

// ErrArrivalRange is returned when the arrival range cannot hold one unique
// arrival time per process.
var ErrArrivalRange = errors.New("arrival range too small")

// Options controls the generated values. Ranges are inclusive.
type Options struct {
	ArrivalMin int
	ArrivalMax int
	BurstMin   int
	BurstMax   int

	// IncludePeriod assigns period = burst + [1,10].
	IncludePeriod bool
	// IncludeDeadline assigns a deadline relative to each release: a value in
	// [burst, period] when a period is generated, burst + [0,5] otherwise.
	IncludeDeadline bool
}

func DefaultOptions() Options {
	return Options{
		ArrivalMin: 0,
		ArrivalMax: 10,
		BurstMin:   1,
		BurstMax:   10,
	}
}

// NewRand returns a generator seeded deterministically.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (o Options) validate() error {
	if o.BurstMin <= 0 || o.BurstMax < o.BurstMin {
		return fmt.Errorf("invalid burst range [%d,%d]", o.BurstMin, o.BurstMax)
	}
	if o.ArrivalMin < 0 || o.ArrivalMax < o.ArrivalMin {
		return fmt.Errorf("invalid arrival range [%d,%d]", o.ArrivalMin, o.ArrivalMax)
	}
	return nil
}

// Random generates n processes with unique arrival times drawn from the
// arrival range. Pids run from 1 to n.
func Random(rng *rand.Rand, n int, opts Options) ([]*core.Process, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	span := opts.ArrivalMax - opts.ArrivalMin + 1
	if n > span {
		return nil, fmt.Errorf("%w: cannot generate %d unique arrival times in [%d,%d]",
			ErrArrivalRange, n, opts.ArrivalMin, opts.ArrivalMax)
	}

	offsets := rng.Perm(span)[:max(n, 0)]
	processes := make([]*core.Process, 0, len(offsets))
	for i, offset := range offsets {
		processes = append(processes, build(rng, i+1, opts.ArrivalMin+offset, opts))
	}
	return processes, nil
}

// Sequential generates n processes arriving at ArrivalMin, ArrivalMin+step,
// ArrivalMin+2*step and so on. Only bursts, periods and deadlines are random.
func Sequential(rng *rand.Rand, n, step int, opts Options) ([]*core.Process, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if step < 0 {
		return nil, fmt.Errorf("step must not be negative, got %d", step)
	}
	processes := make([]*core.Process, 0, max(n, 0))
	for i := 0; i < n; i++ {
		processes = append(processes, build(rng, i+1, opts.ArrivalMin+i*step, opts))
	}
	return processes, nil
}

func build(rng *rand.Rand, pid, arrival int, opts Options) *core.Process {
	burst := opts.BurstMin + rng.IntN(opts.BurstMax-opts.BurstMin+1)
	p := core.NewProcess(pid, arrival, burst)
	if opts.IncludePeriod {
		p.Period = burst + 1 + rng.IntN(10)
	}
	if opts.IncludeDeadline {
		if p.HasPeriod() {
			p.Deadline = burst + rng.IntN(p.Period-burst+1)
		} else {
			p.Deadline = burst + rng.IntN(6)
		}
	}
	return p
}
