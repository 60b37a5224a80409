package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	core "github.com/GriffinCanCode/elliptic/internal/elliptic"
	"github.com/GriffinCanCode/elliptic/internal/config"
	"github.com/GriffinCanCode/elliptic/internal/logging"
	"github.com/GriffinCanCode/elliptic/internal/monitoring"
	"github.com/GriffinCanCode/elliptic/internal/output"
	provider "github.com/GriffinCanCode/elliptic/internal/providers/elliptic"
	"github.com/GriffinCanCode/elliptic/internal/shared/id"
	"github.com/GriffinCanCode/elliptic/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// paramFlag collects repeated -p name=value arguments.
type paramFlag map[string]interface{}

func (p paramFlag) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, ",")
}

func (p paramFlag) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("parameter %q: want name=value", s)
	}
	p[name] = value
	return nil
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v, using defaults\n", err)
		cfg = config.Default()
	}

	fs := flag.NewFlagSet("elliptic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	params := paramFlag{}
	toolID := fs.String("tool", "", "Tool ID to evaluate (see -list)")
	format := fs.String("format", cfg.Output.Format, "Output format: json, yaml or toml")
	list := fs.Bool("list", false, "List available tools and exit")
	logLevel := fs.String("log-level", cfg.Logging.Level, "Log level")
	dev := fs.Bool("dev", cfg.Logging.Development, "Development logging")
	fs.Var(params, "p", "Tool parameter as name=value (repeatable)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg.Logging.Level = *logLevel
	cfg.Logging.Development = *dev
	cfg.Output.Format = *format
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logCfg := logging.DefaultConfig()
	if cfg.Logging.Development {
		logCfg = logging.DevelopmentConfig()
	}
	logCfg.Level = cfg.Logging.Level
	logger, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	ev, metrics := newEvaluator(cfg, logger)
	svc := provider.NewProvider(ev)

	if *list {
		return encode(stdout, stderr, cfg.Output.Format, output.Catalog{Services: []types.Service{svc.Definition()}})
	}
	if *toolID == "" {
		fmt.Fprintln(stderr, "missing -tool (use -list to see available tools)")
		fs.Usage()
		return 2
	}

	rid := id.NewRequestID()
	ridStr := rid.String()
	log := logger.Component("cli").With(zap.String("request_id", ridStr), zap.String("tool", *toolID))

	result, err := svc.Execute(ctx, *toolID, params, &types.Context{RequestID: &ridStr})
	if err != nil {
		log.Error("Execution aborted", zap.Error(err))
		return 1
	}
	log.Debug("Execution finished", zap.Bool("success", result.Success))
	if metrics != nil {
		snap := metrics.Snapshot()
		log.Debug("Evaluation summary",
			zap.Int64("evaluations", snap.Evaluations),
			zap.Int64("warnings", snap.Warnings),
			zap.Int64("failures", snap.Failures),
		)
	}

	if code := encode(stdout, stderr, cfg.Output.Format, output.NewReport(ridStr, *toolID, result)); code != 0 {
		return code
	}
	if !result.Success {
		return 1
	}
	return 0
}

// newEvaluator wires diagnostics to the logger and, when enabled, to a
// private Prometheus registry.
func newEvaluator(cfg *config.Config, logger *logging.Logger) (*core.Evaluator, *monitoring.Metrics) {
	reporter := core.NewLogReporter(logger.Component("elliptic"))
	if !cfg.Metrics.Enabled {
		return core.NewEvaluator(core.WithReporter(reporter)), nil
	}

	metrics := monitoring.NewMetrics(prometheus.NewRegistry(), cfg.Metrics.Namespace)
	return core.NewEvaluator(
		core.WithReporter(core.MultiReporter(reporter, metrics)),
		core.WithObserver(metrics),
	), metrics
}

func encode(stdout, stderr io.Writer, format string, v interface{}) int {
	if err := output.Encode(stdout, format, v); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
