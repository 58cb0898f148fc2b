package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/render"
	"cpu-scheduling-simulator/internal/requests"
	"cpu-scheduling-simulator/internal/schedulers"
)

// defaultServer returns the default server URL, checking SCHEDSIM_SERVER first.
func defaultServer() string {
	if s := os.Getenv("SCHEDSIM_SERVER"); s != "" {
		return s
	}
	return "http://localhost:9095"
}

func newSubmitCmd() *cobra.Command {
	var (
		src       processSource
		server    string
		algorithm string
		quantum   int
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Schedule a process set on a running schedsim server",
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := src.load()
			if err != nil {
				return err
			}
			request := requests.ScheduleRequests{TimeQuantum: quantum}
			for _, p := range processes {
				request.Jobs = append(request.Jobs, requests.JobFromProcess(p))
			}

			resp, err := NewClient(server, logger).Schedule(schedulers.Canonical(algorithm), request)
			if err != nil {
				return fmt.Errorf("submit: %w", err)
			}

			timeline := make(core.Timeline, 0, len(resp.Timeline))
			for _, s := range resp.Timeline {
				timeline = append(timeline, core.Segment{PID: s.ProcessId, Start: s.Start, End: s.End, Idle: s.Idle})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:       %s\n", resp.RunID)
			fmt.Fprintf(out, "Algorithm: %s\n", resp.Algorithm)
			fmt.Fprintln(out, render.Gantt(timeline))
			fmt.Fprintln(out)
			fmt.Fprintln(out, render.Averages(resp.AverageWaitingTime, resp.AverageTurnAroundTime))
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&server, "server", defaultServer(), "schedsim server URL (or SCHEDSIM_SERVER env)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", schedulers.FCFS, "Algorithm: fcfs, sjn, rr, rm, edf")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round-robin time quantum (0 uses the server default)")
	return cmd
}
