package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduling-simulator/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			addr := fmt.Sprintf(":%d", cfg.Port)
			logger.Info("starting server", "addr", addr)
			return api.NewApp(cfg, logger).Listen(addr)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 9095, "Listen port (default from config)")
	return cmd
}
