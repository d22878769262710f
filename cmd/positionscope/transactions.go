package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"positionScope/internal/config"
	"positionScope/internal/storage"
)

func runTransactions(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, txs, _, err := fetchHistory(ctx, cfg, logger)
	if err != nil {
		return err
	}

	sink := storage.NewJsonlStorage(cfg.Out)
	if err := sink.PutTransactions(txs); err != nil {
		return err
	}

	logger.Info("transactions written",
		zap.Int("count", len(txs)),
		zap.String("out", cfg.Out),
	)
	return nil
}
