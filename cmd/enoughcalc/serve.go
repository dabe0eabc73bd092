package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rpgo/enoughcalc/internal/calculation"
	"github.com/rpgo/enoughcalc/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve calculations over HTTP",
		Long: `Serve POST /v1/calculate and GET /healthz. The listen address comes from
--addr, then ENOUGHCALC_ADDR, then ENOUGHCALC_PORT; a .env file in the working
directory is loaded first when present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			if err := godotenv.Load(); err != nil {
				logger.Debug(".env file not loaded", zap.Error(err))
			}
			if !cmd.Flags().Changed("addr") {
				addr = listenAddr(addr)
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(logger.Sugar())
			srv := server.New(engine, logger)
			srv.Timeout = timeout

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&timeout, "timeout", server.DefaultTimeout, "per-request calculation time limit")
	return cmd
}

// listenAddr resolves the address from the environment, falling back to def.
func listenAddr(def string) string {
	if a := os.Getenv("ENOUGHCALC_ADDR"); a != "" {
		return a
	}
	if p := os.Getenv("ENOUGHCALC_PORT"); p != "" {
		return ":" + p
	}
	return def
}
