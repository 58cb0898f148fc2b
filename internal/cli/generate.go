package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cpu-scheduling-simulator/internal/loader"
)

func newGenerateCmd() *cobra.Command {
	var (
		src    processSource
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a seeded random process set as YAML",
		Example: `  schedsim generate --random 5 --seed 7 -o procs.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if src.random <= 0 {
				return errors.New("--random must be positive")
			}
			processes, err := src.load()
			if err != nil {
				return err
			}

			if output == "" {
				return loader.Write(cmd.OutOrStdout(), processes)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := loader.Write(f, processes); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", output, err)
			}
			logger.Info("process set written", "path", output, "processes", len(processes))
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
