package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/pizzeria/pkg/config"
	"github.com/dmitrymomot/pizzeria/pkg/logger"
	"github.com/dmitrymomot/pizzeria/pkg/pizzeria"
)

const serviceName = "pizzeria"

func main() {
	os.Exit(run())
}

func run() int {
	var cfg pizzeria.Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s: configuration: %v\n", serviceName, err)
		return 1
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	k, err := pizzeria.New(cfg, pizzeria.WithLogger(log))
	if err != nil {
		log.Error("startup failed", logger.Error(err))
		return 1
	}

	summary, err := k.Run(context.Background())
	if err != nil {
		return 1
	}

	if err := summary.WriteYAML(os.Stdout); err != nil {
		log.Error("failed to write summary", logger.Error(err))
	}
	return 0
}

func newLogger(cfg pizzeria.Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithContextExtractors(pizzeria.RunIDExtractor()),
	}
	// Validated by config.Load already.
	if level, ok, _ := cfg.Level(); ok {
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...)
}
