package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduling-simulator/internal/render"
	"cpu-scheduling-simulator/internal/responses"
	"cpu-scheduling-simulator/internal/schedulers"
)

func newCompareCmd() *cobra.Command {
	var (
		src     processSource
		quantum int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare average waiting and turnaround time across all algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := src.load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("quantum") {
				quantum = cfg.RoundRobinTimeQuantum
			}

			results := schedulers.Compare(processes, engineOptions(quantum)...)
			for _, r := range results {
				if r.Err != nil {
					logger.Warn("algorithm skipped", "algorithm", r.Algorithm, "error", r.Err)
				}
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				rows := make([]responses.ComparisonResponse, 0, len(results))
				for _, r := range results {
					row := responses.ComparisonResponse{
						Algorithm:             r.Algorithm,
						AverageWaitingTime:    r.AverageWaitingTime,
						AverageTurnAroundTime: r.AverageTurnaroundTime,
					}
					if r.Err != nil {
						row.Error = r.Err.Error()
					}
					rows = append(rows, row)
				}
				return writeJSON(out, rows)
			}

			fmt.Fprintln(out, render.Table(processes))
			fmt.Fprintln(out)
			fmt.Fprintln(out, render.Comparison(results))
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().IntVarP(&quantum, "quantum", "q", schedulers.DefaultTimeQuantum, "Round-robin time quantum (default from config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")
	return cmd
}
