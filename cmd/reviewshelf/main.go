package main

import (
	"context"
	"os"

	"reviewshelf/cmd/reviewshelf/ui"
	"reviewshelf/configs"
	"reviewshelf/internal/controller/review"
	cataloghttp "reviewshelf/internal/gateway/catalog/http"
	"reviewshelf/internal/repository/memory"
	"reviewshelf/pkg/logging"
	"reviewshelf/pkg/metrics"
	"reviewshelf/pkg/tracing"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const serviceName = "reviewshelf"

func main() {
	f, err := os.Open("defaults.yaml")
	if err != nil {
		panic(err)
	}
	var cfg configs.AppConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic(err)
	}
	if err := f.Close(); err != nil {
		panic(err)
	}

	logConfig := zap.NewProductionConfig()
	// The TUI owns the terminal, so logs go to a file.
	if cfg.Logging.File != "" {
		logConfig.OutputPaths = []string{cfg.Logging.File}
		logConfig.ErrorOutputPaths = []string{cfg.Logging.File}
	}
	log, err := logConfig.Build()
	if err != nil {
		panic(err)
	}
	log = log.With(zap.String(logging.FieldService, serviceName))

	log.Info("Starting the review form", zap.Int(logging.FieldPort, cfg.Prometheus.MetricsPort))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Tracing.Enabled {
		tp, err := tracing.NewOTLPProvider(ctx, cfg.Tracing.URL, serviceName)
		if err != nil {
			log.Fatal("Failed to initialize trace provider", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(ctx); err != nil {
				log.Warn("Failed to shutdown trace provider", zap.Error(err))
			}
		}()
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.TraceContext{})
	}

	scope, closer := metrics.NewMetricsReporter(log, serviceName, cfg.Prometheus.MetricsPort)
	defer func() {
		if err := closer.Close(); err != nil {
			log.Warn("Failed to close Prometheus reporter scope", zap.Error(err))
		}
	}()

	catalogGateway := cataloghttp.New(cfg.Catalog, log)
	session := memory.New(log)
	ctrl := review.New(catalogGateway, session, log, scope)

	p := tea.NewProgram(ui.New(ctrl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("Program error", zap.Error(err))
	}
	log.Info("Shutting down")
}
