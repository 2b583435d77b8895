// Command courtplanner serves the HTTP adapter around the scheduling core.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"smuggr.xyz/courtplanner/internal/httpapi"
	"smuggr.xyz/courtplanner/internal/planstore"
	"smuggr.xyz/courtplanner/internal/telemetry"
	"smuggr.xyz/courtplanner/internal/uploadstore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "courtplanner",
		Short: "Court scheduling service",
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var addr string
	var logLevel slog.Level
	var logJSON bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := telemetry.NewLogger(os.Stdout, logLevel, logJSON)
			slog.SetDefault(logger)

			srv := &httpapi.Server{
				Uploads: uploadstore.New(),
				Plans:   planstore.New(),
				Log:     logger,
			}
			router := httpapi.NewRouter(srv)

			logger.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, router)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	cmd.Flags().VarP(newLogLevelValue(&logLevel, slog.LevelInfo), "log-level", "L", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "emit JSON logs instead of colorized text")
	return cmd
}
