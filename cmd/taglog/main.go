package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/taglog-labs/taglog/internal/config"
	"github.com/taglog-labs/taglog/internal/logger"
	"github.com/taglog-labs/taglog/internal/metrics"
	"github.com/taglog-labs/taglog/internal/sink"
	"github.com/taglog-labs/taglog/internal/tracing"
	v1 "github.com/taglog-labs/taglog/pkg/taglog/v1"
	taglogerrors "github.com/taglog-labs/taglog/pkg/taglog/v1/errors"
	"github.com/taglog-labs/taglog/pkg/taglog/v1/severity"
	taglogsink "github.com/taglog-labs/taglog/pkg/taglog/v1/sink"
)

const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitUsageError = 2
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(ExitUsageError)
	}
	switch os.Args[1] {
	case "validate":
		os.Exit(runValidateCommand(os.Args[2:]))
	case "threshold":
		os.Exit(runThresholdCommand(os.Args[2:]))
	case "emit":
		os.Exit(runEmitCommand(os.Args[2:]))
	case "--version", "-version", "version":
		printVersion()
		os.Exit(ExitSuccess)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command '%s'\n\n", os.Args[1])
		printUsage()
		os.Exit(ExitUsageError)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags...]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  validate   Validate a taglog settings file")
	fmt.Fprintln(os.Stderr, "  threshold  Read or write a persisted severity threshold")
	fmt.Fprintln(os.Stderr, "  emit       Emit a log message through a configured logger")
	fmt.Fprintln(os.Stderr, "  version    Print version information")
}

func printVersion() {
	fmt.Printf("taglog version %s\n", version)
	fmt.Printf("commit: %s\n", commit)
	fmt.Printf("built: %s\n", buildDate)
	fmt.Printf("go version: %s\n", runtime.Version())
	fmt.Printf("os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func runValidateCommand(args []string) int {
	validateFlags := flag.NewFlagSet("validate", flag.ExitOnError)
	settingsPath := validateFlags.String("settings", "", "Path to the settings YAML file to validate (required)")

	validateFlags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s validate -settings <path>\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Validates the structure and schema compatibility of a taglog settings file.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		validateFlags.PrintDefaults()
	}

	if err := validateFlags.Parse(args); err != nil {
		return ExitUsageError
	}
	if *settingsPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -settings flag is required")
		validateFlags.Usage()
		return ExitUsageError
	}

	_, err := config.LoadSettingsFromFile(*settingsPath)
	if err != nil {
		var validationErr *taglogerrors.ValidationError
		var configErr *taglogerrors.ConfigError
		if errors.As(err, &validationErr) {
			fmt.Fprintf(os.Stderr, "Settings validation failed:\n%s\n", validationErr.Error())
		} else if errors.As(err, &configErr) {
			fmt.Fprintf(os.Stderr, "Settings configuration error:\n%s\n", configErr.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		}
		return ExitFailure
	}

	fmt.Printf("Settings validation successful: %s\n", *settingsPath)
	return ExitSuccess
}

func runThresholdCommand(args []string) int {
	thresholdFlags := flag.NewFlagSet("threshold", flag.ExitOnError)
	settingsPath := thresholdFlags.String("settings", "", "Path to the settings YAML file (required)")
	tag := thresholdFlags.String("tag", "", "Identity tag of the logger (required)")
	setLevel := thresholdFlags.String("set", "", "Severity to persist as the new threshold (omit to read)")

	thresholdFlags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s threshold -settings <path> -tag <tag> [-set <level>]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Reads or writes the persisted severity threshold for a logger through the configured store backend.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		thresholdFlags.PrintDefaults()
	}

	if err := thresholdFlags.Parse(args); err != nil {
		return ExitUsageError
	}
	if *settingsPath == "" || *tag == "" {
		fmt.Fprintln(os.Stderr, "Error: -settings and -tag flags are required")
		thresholdFlags.Usage()
		return ExitUsageError
	}

	settings, err := config.LoadSettingsFromFile(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		return ExitFailure
	}

	st, err := settings.Store.OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open threshold store: %v\n", err)
		return ExitFailure
	}
	defer st.Close()

	entry := entryFor(settings, *tag)
	log, err := logger.New(*tag,
		v1.WithStore(st),
		v1.WithDefaultThreshold(entry.DefaultThreshold()),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return ExitFailure
	}

	if *setLevel != "" {
		sev, ok := severity.Parse(*setLevel)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: '%s' is not a known severity\n", *setLevel)
			return ExitUsageError
		}
		log.SetThreshold(sev)
		fmt.Printf("Threshold for '%s' set to %s\n", *tag, sev)
		return ExitSuccess
	}

	fmt.Printf("Threshold for '%s' is %s\n", *tag, log.Threshold())
	return ExitSuccess
}

func runEmitCommand(args []string) int {
	emitFlags := flag.NewFlagSet("emit", flag.ExitOnError)
	settingsPath := emitFlags.String("settings", "", "Path to the settings YAML file (required)")
	tag := emitFlags.String("tag", "", "Identity tag of the logger (required)")
	level := emitFlags.String("level", "log", "Severity of the message")
	message := emitFlags.String("message", "", "Message text to emit")
	scopes := emitFlags.String("scopes", "", "Comma-separated scope tags to open around the message")
	withMetrics := emitFlags.Bool("metrics", false, "Wrap the sink with Prometheus counters and print them on exit")

	emitFlags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s emit -settings <path> -tag <tag> [flags...]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Constructs the configured logger and emits one message through it.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		emitFlags.PrintDefaults()
	}

	if err := emitFlags.Parse(args); err != nil {
		return ExitUsageError
	}
	if *settingsPath == "" || *tag == "" {
		fmt.Fprintln(os.Stderr, "Error: -settings and -tag flags are required")
		emitFlags.Usage()
		return ExitUsageError
	}

	sev, ok := severity.Parse(*level)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: '%s' is not a known severity\n", *level)
		return ExitUsageError
	}

	settings, err := config.LoadSettingsFromFile(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		return ExitFailure
	}

	st, err := settings.Store.OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open threshold store: %v\n", err)
		return ExitFailure
	}
	defer st.Close()

	var logSink taglogsink.Sink = newConfiguredSink(settings)
	var metricsProvider *metrics.PrometheusRegistryProvider
	if *withMetrics {
		metricsProvider = metrics.NewPrometheusRegistryProvider()
		instrumented, err := sink.NewMetricsSink(logSink, metricsProvider)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to instrument sink: %v\n", err)
			return ExitFailure
		}
		logSink = instrumented
	}

	entry := entryFor(settings, *tag)
	log, err := logger.New(*tag,
		v1.WithSink(logSink),
		v1.WithStore(st),
		v1.WithDefaultThreshold(entry.DefaultThreshold()),
		v1.WithEnabled(entry.IsEnabled()),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return ExitFailure
	}

	ctx := context.Background()
	tracerProvider, err := tracing.NewProviderFromEnv(ctx)
	if err != nil {
		tracerProvider, _ = tracing.NewNoOpProvider()
	}
	tracer := tracerProvider.GetTracer("taglog-cli")
	spanCtx, span := tracer.Start(ctx, "taglog.emit")

	for _, scopeTag := range splitScopes(*scopes) {
		defer log.OpenScope(scopeTag).Release()
	}
	log.LogSeverity(sev, "", *message, spanCtx)

	span.End()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error shutting down tracer provider: %v\n", err)
	}

	if metricsProvider != nil {
		printMetrics(metricsProvider)
	}
	return ExitSuccess
}

// newConfiguredSink builds the slog sink described by the settings file.
func newConfiguredSink(settings *config.Settings) *sink.SlogSink {
	return sink.NewSlogSink(settings.Sink.SinkLevel(), settings.Sink.Format, os.Stderr)
}

// entryFor returns the settings entry for tag, or a zero-value entry
// carrying the library defaults when the tag is not declared.
func entryFor(settings *config.Settings, tag string) config.LoggerEntry {
	for _, entry := range settings.Loggers {
		if entry.Tag == tag {
			return entry
		}
	}
	return config.LoggerEntry{Tag: tag}
}

func splitScopes(scopes string) []string {
	if scopes == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(scopes, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func printMetrics(provider *metrics.PrometheusRegistryProvider) {
	families, err := provider.Registry().Gather()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to gather metrics: %v\n", err)
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			fmt.Printf("%s{%s} %v\n", family.GetName(), strings.Join(labels, ","), metric.GetCounter().GetValue())
		}
	}
}
