package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antcolony/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr   string
		limits server.Options
		cache  cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /solve over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			logger := loggerFromContext(ctx)

			store, err := cache.open(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			limits.Logger = logger
			limits.Store = store
			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(limits),
				ReadHeaderTimeout: 10 * time.Second,
				// In-flight solves stop with the process.
				BaseContext: func(net.Listener) context.Context { return ctx },
			}
			errc := make(chan error, 1)
			go func() { errc <- srv.ListenAndServe() }()
			logger.Info("listening", "addr", addr, "cache", cache.backend)

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&limits.MaxNodes, "max-nodes", server.DefaultMaxNodes, "largest problem accepted per request")
	cmd.Flags().IntVar(&limits.MaxAnts, "max-ants", server.DefaultMaxAnts, "largest colony accepted per request")
	cmd.Flags().IntVar(&limits.MaxIterations, "max-iterations", server.DefaultMaxIterations, "most iterations accepted per request")
	cache.register(cmd.Flags())

	return cmd
}
