package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jsuh-911/pdf-summarizer/internal/async"
	"github.com/jsuh-911/pdf-summarizer/internal/categorize"
	"github.com/jsuh-911/pdf-summarizer/internal/common"
	"github.com/jsuh-911/pdf-summarizer/internal/export"
	"github.com/jsuh-911/pdf-summarizer/internal/extract"
	"github.com/jsuh-911/pdf-summarizer/internal/ingest"
	"github.com/jsuh-911/pdf-summarizer/internal/llm"
	"github.com/jsuh-911/pdf-summarizer/internal/llm/ollama"
	"github.com/jsuh-911/pdf-summarizer/internal/pipeline"
	"github.com/jsuh-911/pdf-summarizer/internal/repository"
)

var (
	flagOutputDir    string
	flagTaxonomy     string
	flagNoLLM        bool
	flagNoLLMKeyword bool
	flagWorkers      int
	flagReport       bool
	flagSQLite       string
	flagPersist      bool
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:   "pdf-summarizer",
		Short: "Summarize and categorize research documents",
	}
	root.PersistentFlags().StringVar(&flagOutputDir, "output", "", "output directory for JSON artifacts (default $OUTPUT_DIR or ./summaries)")
	root.PersistentFlags().StringVar(&flagTaxonomy, "taxonomy", "", "path to a taxonomy YAML (default built-in)")
	root.PersistentFlags().BoolVar(&flagNoLLM, "no-llm", false, "disable all model-backed signals")
	root.PersistentFlags().StringVar(&flagSQLite, "sqlite", "", "use a SQLite database at this path instead of $DB_URL")
	root.PersistentFlags().BoolVar(&flagPersist, "persist", false, "store results in the database")

	root.AddCommand(
		newProcessCmd(logger),
		newBatchCmd(logger),
		newSearchCmd(logger),
		newStatsCmd(logger),
		newExportCmd(logger),
		newModelsCmd(logger),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func loadTaxonomy(cfg *common.Config) (*categorize.Taxonomy, error) {
	path := flagTaxonomy
	if path == "" {
		path = cfg.Pipeline.TaxonomyPath
	}
	if path == "" {
		return categorize.DefaultTaxonomy(), nil
	}
	return categorize.LoadTaxonomy(path)
}

func newSummarizer(cfg *common.Config, logger *slog.Logger) llm.Summarizer {
	if flagNoLLM {
		return nil
	}
	return ollama.NewClient(ollama.Config{
		Host:        cfg.LLM.Host,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		MaxChars:    cfg.LLM.MaxChars,
	}, logger)
}

// openRepo connects per flags: --sqlite wins, then $DB_URL, else no
// persistence at all.
func openRepo(ctx context.Context, cfg *common.Config, logger *slog.Logger) (repository.DocumentRepository, func(), error) {
	noop := func() {}
	switch {
	case flagSQLite != "":
		client, err := repository.OpenSQLite(ctx, flagSQLite, logger)
		if err != nil {
			return nil, noop, err
		}
		return repository.NewDocumentRepository(client, logger), func() { _ = client.Close() }, nil
	case cfg.Database.DSN != "":
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
			return nil, noop, err
		}
		return repository.NewDocumentRepository(client, logger),
			func() { repository.Close(client, pool, logger) }, nil
	default:
		return nil, noop, nil
	}
}

func newProcessor(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*pipeline.Processor, func(), error) {
	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return nil, func() {}, err
	}

	var docs repository.DocumentRepository
	closeRepo := func() {}
	if flagPersist {
		docs, closeRepo, err = openRepo(ctx, cfg, logger)
		if err != nil {
			return nil, closeRepo, err
		}
		if docs == nil {
			return nil, closeRepo, fmt.Errorf("--persist requires --sqlite or DB_URL")
		}
	}

	outputDir := flagOutputDir
	if outputDir == "" {
		outputDir = cfg.Pipeline.OutputDir
	}
	proc := pipeline.NewProcessor(
		extract.NewRouter(logger),
		newSummarizer(cfg, logger),
		tax,
		docs,
		pipeline.Options{
			OutputDir:      outputDir,
			KeywordCount:   cfg.Pipeline.KeywordCount,
			LLMKeywords:    !flagNoLLM && !flagNoLLMKeyword,
			PersistEnabled: flagPersist,
		},
		logger,
	)
	return proc, closeRepo, nil
}

func newProcessCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Process a single PDF or text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			cfg := common.LoadConfig()
			proc, cleanup, err := newProcessor(ctx, cfg, logger)
			defer cleanup()
			if err != nil {
				return err
			}

			res, err := proc.ProcessFile(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("processed %s\n", args[0])
			fmt.Printf("  artifact: %s\n", res.ArtifactPath)
			fmt.Printf("  category: %s\n", res.Record.Categorization.PrimaryCategory)
			return nil
		},
	}
	cmd.Flags().BoolVar(&flagNoLLMKeyword, "no-llm-keywords", false, "skip model keywords, use only the statistical extractor")
	return cmd
}

func newBatchCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Process every supported file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			cfg := common.LoadConfig()
			if flagWorkers > 0 {
				cfg.Pipeline.Workers = flagWorkers
			}
			proc, cleanup, err := newProcessor(ctx, cfg, logger)
			defer cleanup()
			if err != nil {
				return err
			}

			files, stats, err := ingest.ScanDirectory(args[0], true)
			if err != nil {
				return err
			}
			logger.Info("batch scan complete", "scanned", stats.Scanned, "matched", stats.Matched)
			if len(files) == 0 {
				fmt.Println("no supported files found")
				return nil
			}

			queue := async.NewProcessorQueue(proc, logger, async.WithWorkers(cfg.Pipeline.Workers))
			for _, f := range files {
				if err := queue.Enqueue(ctx, async.Job{Path: f}); err != nil {
					return err
				}
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			defer cancel()
			queue.Shutdown(shutdownCtx)

			if flagReport {
				tax, err := loadTaxonomy(cfg)
				if err != nil {
					return err
				}
				outputDir := flagOutputDir
				if outputDir == "" {
					outputDir = cfg.Pipeline.OutputDir
				}
				records, err := readRecords(outputDir)
				if err != nil {
					return err
				}
				path, err := pipeline.WriteCategoryReport(outputDir, records, tax)
				if err != nil {
					return err
				}
				fmt.Printf("report: %s\n", path)
			}
			fmt.Printf("batch done: %d files\n", len(files))
			return nil
		},
	}
	cmd.Flags().IntVar(&flagWorkers, "workers", 0, "worker pool size (default $WORKERS or 3)")
	cmd.Flags().BoolVar(&flagReport, "report", false, "write a markdown category report after the run")
	cmd.Flags().BoolVar(&flagNoLLMKeyword, "no-llm-keywords", false, "skip model keywords, use only the statistical extractor")
	return cmd
}

func readRecords(dir string) ([]*pipeline.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var records []*pipeline.Record
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		rec, err := pipeline.ReadRecord(filepath.Join(dir, e.Name()))
		if err != nil {
			slog.Warn("skipping unreadable artifact", "file", e.Name(), "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func requireRepo(ctx context.Context, cfg *common.Config, logger *slog.Logger) (repository.DocumentRepository, func(), error) {
	docs, cleanup, err := openRepo(ctx, cfg, logger)
	if err != nil {
		return nil, cleanup, err
	}
	if docs == nil {
		return nil, cleanup, fmt.Errorf("this command requires --sqlite or DB_URL")
	}
	return docs, cleanup, nil
}

func newSearchCmd(logger *slog.Logger) *cobra.Command {
	var category, year, author, journal string
	var limit int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search stored documents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			cfg := common.LoadConfig()
			docs, cleanup, err := requireRepo(ctx, cfg, logger)
			defer cleanup()
			if err != nil {
				return err
			}

			filter := repository.SearchFilter{
				Category: category,
				Year:     year,
				Author:   author,
				Journal:  journal,
				Limit:    limit,
			}
			if len(args) == 1 {
				filter.Query = args[0]
			}
			results, err := docs.Search(ctx, filter)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Title", "Authors", "Year", "Category", "Words"})
			for _, d := range results {
				table.Append([]string{
					strVal(d.Title), strVal(d.Authors), strVal(d.YearPublished),
					d.PrimaryCategory, fmt.Sprintf("%d", d.WordCount),
				})
			}
			table.Render()
			fmt.Printf("%d document(s)\n", len(results))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "filter by primary category")
	cmd.Flags().StringVar(&year, "year", "", "filter by publication year")
	cmd.Flags().StringVar(&author, "author", "", "filter by author substring")
	cmd.Flags().StringVar(&journal, "journal", "", "filter by journal substring")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum results")
	return cmd
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func newStatsCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show corpus statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			cfg := common.LoadConfig()
			docs, cleanup, err := requireRepo(ctx, cfg, logger)
			defer cleanup()
			if err != nil {
				return err
			}

			stats, err := docs.Statistics(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("documents: %d\n", stats.TotalDocuments)
			fmt.Printf("avg words: %.0f\n", stats.AvgWordCount)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Category", "Count"})
			for _, c := range stats.ByCategory {
				table.Append([]string{c.Category, fmt.Sprintf("%d", c.Count)})
			}
			table.Render()

			if len(stats.ByYear) > 0 {
				years := tablewriter.NewWriter(os.Stdout)
				years.SetHeader([]string{"Year", "Count"})
				for _, y := range stats.ByYear {
					years.Append([]string{y.Year, fmt.Sprintf("%d", y.Count)})
				}
				years.Render()
			}
			if len(stats.TopJournals) > 0 {
				journals := tablewriter.NewWriter(os.Stdout)
				journals.SetHeader([]string{"Journal", "Count"})
				for _, j := range stats.TopJournals {
					journals.Append([]string{j.Journal, fmt.Sprintf("%d", j.Count)})
				}
				journals.Render()
			}
			return nil
		},
	}
}

func newExportCmd(logger *slog.Logger) *cobra.Command {
	var out, category string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored documents to XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			cfg := common.LoadConfig()
			docs, cleanup, err := requireRepo(ctx, cfg, logger)
			defer cleanup()
			if err != nil {
				return err
			}

			svc := export.NewService(docs, logger)
			data, err := svc.ExportDocumentsXLSX(ctx, repository.SearchFilter{Category: category})
			if err != nil {
				return err
			}
			if out == "" {
				out = "documents.xlsx"
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d bytes)\n", out, len(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output XLSX path (default documents.xlsx)")
	cmd.Flags().StringVar(&category, "category", "", "filter by primary category")
	return cmd
}

func newModelsCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List models available on the Ollama host",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			cfg := common.LoadConfig()
			client := ollama.NewClient(ollama.Config{
				Host:    cfg.LLM.Host,
				Model:   cfg.LLM.Model,
				Timeout: cfg.LLM.Timeout,
			}, logger)

			models, err := client.ListModels(ctx)
			if err != nil {
				return err
			}
			for _, m := range models {
				marker := " "
				if m == cfg.LLM.Model {
					marker = "*"
				}
				fmt.Printf("%s %s\n", marker, m)
			}
			ok, err := client.IsModelAvailable(ctx)
			if err == nil && !ok {
				fmt.Printf("configured model %q is not installed\n", cfg.LLM.Model)
			}
			return nil
		},
	}
}
