package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	app "github.com/okian/fieldmap/internal/app"
	"github.com/okian/fieldmap/internal/config"
	"github.com/okian/fieldmap/internal/domain/model"
	"github.com/okian/fieldmap/internal/domain/selection"
	"github.com/okian/fieldmap/pkg/logger"
	"github.com/okian/fieldmap/pkg/metrics"
)

// Metrics server timeout constants.
const (
	readHeaderTimeout = 5 * time.Second
)

func main() {
	var (
		resumePath = flag.String("resume", "", "path to resume JSON document (required)")
		fieldsPath = flag.String("fields", "", "path to newline-separated field names; omit to pass names as args")
		explain    = flag.Bool("explain", false, "print an explanation trace per field instead of mapping results")
		listFields = flag.Bool("list-fields", false, "print the canonical field catalog and exit")
	)
	flag.Parse()

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithQueueSize(cfg.QueueSize),
		app.WithMemoSize(cfg.MemoSize),
		app.WithThreshold(cfg.FuzzyThreshold),
		app.WithStrategy(selection.Strategy(cfg.SelectionStrategy)),
		app.WithSensitivityWeights(cfg.SensitivityWeights),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// Optional Prometheus listener for long-running invocations.
	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, log, cfg.MetricsAddr)
	}

	if *listFields {
		printJSON(svc.Fields())
		return
	}

	if *resumePath == "" {
		os.Stderr.WriteString("missing -resume\n")
		flag.Usage()
		os.Exit(2)
	}
	resume, err := loadResume(*resumePath)
	if err != nil {
		log.Error(ctx, "failed to load resume", logger.String("path", *resumePath), logger.Error(err))
		os.Exit(1)
	}

	names, err := fieldNames(*fieldsPath, flag.Args())
	if err != nil {
		log.Error(ctx, "failed to read field names", logger.Error(err))
		os.Exit(1)
	}
	if len(names) == 0 {
		os.Stderr.WriteString("no field names given\n")
		flag.Usage()
		os.Exit(2)
	}

	if *explain {
		traces := make([]*model.Trace, 0, len(names))
		for _, name := range names {
			trace, err := svc.Explain(ctx, name, resume, nil)
			if err != nil {
				log.Error(ctx, "explain failed", logger.String("field", name), logger.Error(err))
				os.Exit(1)
			}
			traces = append(traces, trace)
		}
		printJSON(traces)
		return
	}

	results, err := svc.MapBatch(ctx, names, resume)
	if err != nil {
		log.Error(ctx, "batch mapping failed", logger.Error(err))
		os.Exit(1)
	}
	printJSON(results)
}

// loadResume reads and validates a resume JSON document.
func loadResume(path string) (*model.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return model.ResumeFromMap(raw)
}

// fieldNames collects names from a file (one per line) or from args.
func fieldNames(path string, args []string) ([]string, error) {
	if path == "" {
		return args, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// serveMetrics exposes the Prometheus registry until the context ends.
func serveMetrics(ctx context.Context, log logger.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	log.Info(ctx, "serving metrics", logger.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error(ctx, "metrics server failed", logger.Error(err))
	}
}
