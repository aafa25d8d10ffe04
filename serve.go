package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/muhammadolammi/aithera/internal/app"
	"github.com/muhammadolammi/aithera/internal/config"
	"github.com/muhammadolammi/aithera/internal/httpapi"
	"github.com/muhammadolammi/aithera/internal/interview"
	"github.com/muhammadolammi/aithera/internal/oracle"
	"github.com/muhammadolammi/aithera/internal/recruiter"
	"github.com/muhammadolammi/aithera/internal/resume"
	"github.com/muhammadolammi/aithera/internal/scenario"
	"github.com/muhammadolammi/aithera/internal/softskills"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var origins []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg, log, origins)
		},
	}
	cmd.Flags().StringSliceVar(&origins, "allow-origin", nil, "CORS origins allowed to call the API (default: any)")
	return cmd
}

// newOracle returns the Gemini client, or the canned mock when USE_MOCK_LLM is set.
func newOracle(ctx context.Context, cfg *config.Config, log *zap.Logger) (oracle.Oracle, error) {
	if cfg.UseMockLLM {
		log.Warn("Using the mock oracle; generated content is canned")
		return oracle.NewMock(), nil
	}
	return oracle.NewClient(ctx, cfg.GoogleAPIKey, cfg.ModelName, log)
}

func runServer(ctx context.Context, cfg *config.Config, log *zap.Logger, origins []string) error {
	orc, err := newOracle(ctx, cfg, log)
	if err != nil {
		return err
	}

	dir := app.NewDirectory()
	labs := softskills.NewManager(orc, log, softskills.WithTimeout(cfg.OracleTimeout))
	defer labs.Close()

	lib := scenario.NewLibrary(afero.NewOsFs(), cfg.ScenarioDir, log)
	if err := lib.Load(); err != nil {
		return err
	}

	deps := httpapi.Deps{
		Directory:    dir,
		Sessions:     app.NewSessions(dir),
		Oracle:       orc,
		Labs:         labs,
		Library:      lib,
		Interviews:   interview.NewStore(),
		Log:          log,
		AllowOrigins: origins,
	}

	if cfg.UseMockLLM {
		log.Info("Recruiter chat disabled with the mock oracle")
	} else {
		agent, err := recruiter.NewAgent(ctx, cfg.GoogleAPIKey, cfg.AgentModel)
		if err != nil {
			return err
		}
		deps.Chat = recruiter.NewChat(agent, log)
	}

	if cfg.PipelineEnabled() {
		p, err := openPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer p.Close()
		deps.Uploads = resume.NewUploader(p.queries, p.objects, p.publisher, log)
	} else {
		log.Info("Resume uploads disabled; DB_URL, RABBITMQ_URL and R2 settings are required")
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpapi.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("port", cfg.Port), zap.Int("scenarios", len(lib.List())))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return err
	}
	return nil
}
