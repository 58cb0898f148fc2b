package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/logging"
	"cpu-scheduling-simulator/internal/render"
	"cpu-scheduling-simulator/internal/schedulers"
)

func newRunCmd() *cobra.Command {
	var (
		src       processSource
		algorithm string
		quantum   int
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule a process set with one algorithm",
		Example: `  schedsim run --algorithm rr --quantum 2 --file procs.yaml
  schedsim run --algorithm edf --random 5 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := src.load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("quantum") {
				quantum = cfg.RoundRobinTimeQuantum
			}

			s, err := schedulers.New(algorithm, engineOptions(quantum)...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if schedulers.IsPeriodic(algorithm) {
				warnLargeHyperperiod(out, processes)
			}

			for _, p := range processes {
				s.AddProcess(p)
			}
			if err := s.Schedule(); err != nil {
				logger.Error("schedule failed", "algorithm", algorithm, logging.ErrAttr(err))
				return fmt.Errorf("schedule %s: %w", algorithm, err)
			}
			logger.Info("schedule complete", "algorithm", s.Name(), "processes", len(processes), "segments", len(s.Timeline()))

			if jsonOut {
				return writeJSON(out, schedulers.GenerateResponse(uuid.NewString(), s))
			}
			printResult(out, s)
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", schedulers.FCFS, "Algorithm: fcfs, sjn, rr, rm, edf")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", schedulers.DefaultTimeQuantum, "Round-robin time quantum (default from config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")
	return cmd
}

func engineOptions(quantum int) []schedulers.Option {
	return []schedulers.Option{
		schedulers.WithLogger(logger),
		schedulers.WithTimeQuantum(quantum),
		schedulers.WithMaxHyperperiod(cfg.MaxHyperperiod),
	}
}

// warnLargeHyperperiod flags sets whose chart would be too wide to read. It
// never blocks scheduling; the engine ceiling does that.
func warnLargeHyperperiod(out io.Writer, processes []*core.Process) {
	threshold := cfg.DisplayMaxHyperperiod
	if threshold <= 0 {
		return
	}
	if _, err := schedulers.Hyperperiod(processes, threshold); errors.Is(err, schedulers.ErrLimitExceeded) {
		logger.Warn("hyperperiod above display threshold", "threshold", threshold)
		fmt.Fprintln(out, render.HyperperiodWarning(threshold))
	}
}

func printResult(out io.Writer, s schedulers.Scheduler) {
	fmt.Fprintln(out, schedulers.Describe(s.Name()))
	fmt.Fprintln(out, render.Gantt(s.Timeline()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Table(s.Processes()))

	waiting, err := s.AverageWaitingTime()
	if err == nil {
		turnaround, _ := s.AverageTurnaroundTime()
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.Averages(waiting, turnaround))
	}
	if reporter, ok := s.(schedulers.DeadlineReporter); ok {
		if misses := render.DeadlineMisses(reporter.DeadlineMisses()); misses != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, misses)
		}
		if dropped := render.DroppedInstances(reporter.DroppedInstances()); dropped != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, dropped)
		}
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
