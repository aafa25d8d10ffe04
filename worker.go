package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muhammadolammi/aithera/internal/config"
	"github.com/muhammadolammi/aithera/internal/resume"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWorkerCmd() *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Consume queued resume analysis jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWorker(ctx, cfg, log, metricsAddr)
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address to expose /metrics on, e.g. :9090")
	return cmd
}

func runWorker(ctx context.Context, cfg *config.Config, log *zap.Logger, metricsAddr string) error {
	if cfg.GoogleAPIKey == "" {
		return errors.New("empty GOOGLE_API_KEY in env")
	}
	p, err := openPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	analyzer, err := newResumeAnalyzer(ctx, cfg.GoogleAPIKey, cfg.AgentModel)
	if err != nil {
		return err
	}

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("Metrics server failed", zap.Error(err))
			}
		}()
		defer srv.Close()
	}

	c := &consumer{
		store:     p.queries,
		updates:   p.publisher,
		processor: resume.NewProcessor(p.queries, p.objects, analyzer, log),
		log:       log.Named("worker"),
	}
	log.Info("Starting consumer worker pool", zap.Int("workers", cfg.Workers), zap.String("queue", cfg.AnalysisQueue))
	c.startConsumerWorkerPool(ctx, cfg.Workers, p.conn, cfg.AnalysisQueue)
	return nil
}
