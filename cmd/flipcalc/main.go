package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dxbflip/flipcalc/internal/cache"
	"github.com/dxbflip/flipcalc/internal/config"
	"github.com/dxbflip/flipcalc/internal/engine"
	"github.com/dxbflip/flipcalc/internal/server"
	"github.com/dxbflip/flipcalc/internal/store"
	"github.com/dxbflip/flipcalc/pkg/constants"
	"github.com/dxbflip/flipcalc/pkg/output"
	"github.com/dxbflip/flipcalc/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via -ldflags.
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to deal configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "start the HTTP API server instead of analyzing a deal config")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flag.Parse()

	if *serve {
		runServer(*serverConfigLocation, *logLevel)
		return
	}

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate the deal and display any warnings; nothing blocks the
	// analysis, a deal mid-edit is allowed to look wrong.
	warnings := validation.ValidateDeal(conf.Deal)
	warnings = append(warnings, validation.ValidateOverrides(conf.Overrides)...)
	for _, warning := range warnings {
		logger.Warn("Deal warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Run the full analysis.
	now := time.Now()
	calc := engine.Calculate(conf.Deal, now)
	report := output.Report{
		Deal:         conf.Deal,
		Calculations: calc,
		Sensitivity:  engine.Sensitivity(conf.Deal, calc),
		Schedule:     engine.EarlySchedule(conf.Deal, calc, engine.OverridesFromConfig(conf.Overrides)),
		Waterfall:    engine.Waterfall(conf.Deal, calc),
		Warnings:     warnings,
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(report)
	case constants.OutputFormatCSV:
		output.CsvFormat(report)
	}
}

func runServer(configLocation, logLevelOverride string) {
	cfg, err := server.LoadConfig(configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration\", \"error\": \"%v\"}\n", err)
		return
	}

	logger, err := initializeLogger(cfg.Logging, logLevelOverride)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	storage, err := store.NewSQLiteStore(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to open deal database",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defer func() {
		_ = storage.Close()
	}()

	var reports cache.Cache = cache.NewMemoryCache()
	if cfg.RedisAddress != "" {
		reports = cache.NewRedisCache(cfg.RedisAddress)
		logger.Info("using redis report cache",
			zap.String("op", "main"),
			zap.String("address", cfg.RedisAddress),
		)
	}

	handler := server.NewHandler(logger, server.Options{
		Storage:        storage,
		Reports:        reports,
		MaxRequestSize: cfg.RequestSizeBytes(),
		Version:        version,
	})

	logger.Info("starting flipcalc server",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
		zap.String("version", version),
	)
	if err := http.ListenAndServe(cfg.Address, handler); err != nil {
		logger.Fatal("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
