package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"todoboard/internal/cli"
	"todoboard/internal/config"
	"todoboard/internal/model"
	"todoboard/internal/notify"
	"todoboard/internal/repo"
	"todoboard/internal/service"
)

func main() {
	root := &cobra.Command{
		Use:           "todoboard",
		Short:         "Interactive in-memory todo list",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	logger := buildLogger(cfg.LogLevel)
	defer logger.Sync()

	store, err := repo.New[model.Task](nil)
	if err != nil {
		return err
	}

	svc := service.NewTaskService(store, logger)
	if err := svc.SetFilter(cfg.DefaultFilter); err != nil {
		return err
	}

	notifier := notify.New(cmd.OutOrStdout(), logger, time.Duration(cfg.NoticeHoldSec)*time.Second)
	notifier.Start()
	defer notifier.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("session started", zap.String("filter", string(cfg.DefaultFilter)))
	app := cli.New(svc, notifier, cmd.OutOrStdout(), logger)
	return app.Run(ctx, cmd.InOrStdin())
}

func buildLogger(level string) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
