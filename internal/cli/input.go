package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/generator"
	"cpu-scheduling-simulator/internal/loader"
)

// processSource resolves the process set a command works on: a YAML file or
// a seeded random set.
type processSource struct {
	file       string
	random     int
	seed       uint64
	sequential bool
	step       int
}

func (s *processSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "file", "f", "", "YAML process file")
	cmd.Flags().IntVar(&s.random, "random", 0, "Generate this many random processes instead of reading a file")
	cmd.Flags().Uint64Var(&s.seed, "seed", 1, "Seed for --random")
	cmd.Flags().BoolVar(&s.sequential, "sequential", false, "Generate evenly spaced arrivals instead of random ones")
	cmd.Flags().IntVar(&s.step, "step", 1, "Arrival spacing for --sequential")
}

// load reads the file or generates processes. Generated processes always
// carry a period and a deadline so the same set works for every algorithm.
func (s *processSource) load() ([]*core.Process, error) {
	if s.file != "" {
		return loader.Load(s.file)
	}
	if s.random <= 0 {
		return nil, errors.New("provide --file or --random")
	}

	opts := generator.DefaultOptions()
	opts.IncludePeriod = true
	opts.IncludeDeadline = true
	rng := generator.NewRand(s.seed)
	if s.sequential {
		return generator.Sequential(rng, s.random, s.step, opts)
	}
	return generator.Random(rng, s.random, opts)
}
