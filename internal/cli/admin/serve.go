package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloo-solutions/loanfaq/internal/api/handlers"
	"github.com/cloo-solutions/loanfaq/internal/config"
	"github.com/cloo-solutions/loanfaq/internal/kb"
	"github.com/cloo-solutions/loanfaq/internal/server"
	"github.com/cloo-solutions/loanfaq/internal/service"
	"github.com/cloo-solutions/loanfaq/internal/telemetry"
	"github.com/spf13/cobra"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the fulfillment webhook server",
		Long:  "Start the loanfaq webhook server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.HasSentry() {
		// Default to 10% sampling in production, 100% in development.
		sampleRate := cfg.TracesSampleRate
		if sampleRate == 0 {
			sampleRate = 0.1
			if cfg.Environment == "development" {
				sampleRate = 1.0
			}
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			TracesSampleRate: sampleRate,
			Debug:            cfg.Debug,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	portFlag, _ := cmd.Flags().GetString("port")
	if portFlag != "" && portFlag != "8080" {
		cfg.Port = portFlag
	}

	knowledgeBase, err := buildKnowledgeBase(cfg)
	if err != nil {
		return err
	}
	log.Printf("knowledge base ready (%d entries)", len(knowledgeBase.Entries()))

	fulfillmentSvc := service.NewFulfillmentService(knowledgeBase, cfg.FallbackText)

	routerCfg := server.RouterConfig{
		WebhookHandler: handlers.NewWebhookHandler(fulfillmentSvc),
		KBHandler:      handlers.NewKBHandler(knowledgeBase),
	}

	router := server.NewRouter(routerCfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}

// buildKnowledgeBase assembles the answer table and refuses to start with an
// incomplete one: a missing entry is a configuration defect better caught at
// boot than discovered by an end user.
func buildKnowledgeBase(cfg *config.Config) (*kb.KnowledgeBase, error) {
	knowledgeBase := kb.New()

	if cfg.HasKnowledgeFile() {
		if err := knowledgeBase.LoadFile(cfg.KnowledgeFile); err != nil {
			return nil, fmt.Errorf("failed to load knowledge file: %w", err)
		}
		log.Printf("merged knowledge overrides from %s", cfg.KnowledgeFile)
	}

	if err := knowledgeBase.Validate(); err != nil {
		return nil, fmt.Errorf("knowledge base validation failed: %w", err)
	}

	return knowledgeBase, nil
}
