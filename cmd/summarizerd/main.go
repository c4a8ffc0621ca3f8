package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	summarizerpb "github.com/jsuh-911/pdf-summarizer/gen/proto/summarizer/v1"
	"github.com/jsuh-911/pdf-summarizer/internal/async"
	"github.com/jsuh-911/pdf-summarizer/internal/categorize"
	"github.com/jsuh-911/pdf-summarizer/internal/common"
	"github.com/jsuh-911/pdf-summarizer/internal/export"
	"github.com/jsuh-911/pdf-summarizer/internal/extract"
	"github.com/jsuh-911/pdf-summarizer/internal/ingest"
	"github.com/jsuh-911/pdf-summarizer/internal/llm/ollama"
	"github.com/jsuh-911/pdf-summarizer/internal/pipeline"
	"github.com/jsuh-911/pdf-summarizer/internal/repository"
	"github.com/jsuh-911/pdf-summarizer/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL is required for the daemon")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database connect failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(client, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	var tax *categorize.Taxonomy
	if cfg.Pipeline.TaxonomyPath != "" {
		tax, err = categorize.LoadTaxonomy(cfg.Pipeline.TaxonomyPath)
		if err != nil {
			logger.Error("taxonomy load failed", "error", err)
			os.Exit(1)
		}
	} else {
		tax = categorize.DefaultTaxonomy()
	}

	docs := repository.NewDocumentRepository(client, logger)
	summarizer := ollama.NewClient(ollama.Config{
		Host:        cfg.LLM.Host,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		MaxChars:    cfg.LLM.MaxChars,
	}, logger)
	if ok, err := summarizer.IsModelAvailable(ctx); err != nil {
		logger.Warn("ollama host unreachable, model signals will degrade", "error", err)
	} else if !ok {
		logger.Warn("configured model not installed", "model", cfg.LLM.Model)
	}

	proc := pipeline.NewProcessor(
		extract.NewRouter(logger),
		summarizer,
		tax,
		docs,
		pipeline.Options{
			OutputDir:      cfg.Pipeline.OutputDir,
			KeywordCount:   cfg.Pipeline.KeywordCount,
			LLMKeywords:    true,
			PersistEnabled: true,
		},
		logger,
	)
	queue := async.NewProcessorQueue(proc, logger, async.WithWorkers(cfg.Pipeline.Workers))

	// Watch roots come from WATCH_DIRS (comma separated); watching is
	// optional for a pure query daemon.
	if roots := os.Getenv("WATCH_DIRS"); roots != "" {
		events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       strings.Split(roots, ","),
			InitialScan: true,
			Debounce:    2 * time.Second,
		}, logger)
		if err != nil {
			logger.Error("watcher start failed", "error", err)
			os.Exit(1)
		}
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-events:
					if !ok {
						return
					}
					_ = queue.Enqueue(ctx, async.Job{Path: path})
				case err, ok := <-errs:
					if ok && err != nil {
						logger.Error("watch error", "error", err)
					}
				}
			}
		}()
		logger.Info("watching for documents", "roots", roots)
	}

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewDocumentService(docs, export.NewService(docs, logger), logger)
	summarizerpb.RegisterSummarizerServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
