package root

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studytime/internal/api"
	"studytime/internal/engine"
	"studytime/internal/notify"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			insights, err := newInsightService(ctx)
			if err != nil {
				return err
			}
			loop := engine.NewLoop(0)
			notifier := notify.NewTerminal(cmd.ErrOrStderr(), cfg.NotificationsEnabled)
			svc, cleanup, err := openService(ctx,
				engine.WithScheduler(engine.NewTickerScheduler(loop)),
				engine.WithNotifier(notifier),
			)
			if err != nil {
				return err
			}
			defer cleanup()
			svc.RequestNotificationPermission(notifier, loop)

			loopDone := make(chan struct{})
			go func() {
				defer close(loopDone)
				_ = loop.Run(ctx)
			}()

			if addr == "" {
				addr = cfg.APIAddr
			}
			gin.SetMode(gin.ReleaseMode)
			h := api.NewHandler(svc, loop, insights, Version)
			srv := &http.Server{
				Addr:              addr,
				Handler:           api.NewRouter(h, zap.L()),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				zap.L().Info("starting server", zap.String("addr", addr))
				errc <- srv.ListenAndServe()
			}()
			cmd.Printf("Serving the Studytime API on http://%s/api (Ctrl+C to stop)\n", addr)

			select {
			case err := <-errc:
				stop()
				<-loopDone
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				zap.L().Warn("server shutdown", zap.Error(err))
			}
			<-loopDone
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from api.addr)")
	return cmd
}
