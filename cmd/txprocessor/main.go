package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/paystream/txprocessor/internal/config"
	"github.com/paystream/txprocessor/internal/csvio"
	"github.com/paystream/txprocessor/internal/services"
)

// txprocessor reads a transactions CSV, evaluates it in one pass, and writes
// the account summary CSV to stdout. Diagnostics go to stderr.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: txprocessor <transactions.csv>")
		os.Exit(2)
	}

	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	if err := run(os.Args[1], cfg, logger, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	source, err := csvio.NewReader(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	ledger := services.NewLedgerService(cfg.RejectLockedAccounts)
	journal := services.NewJournalService()
	services.NewProcessorService(ledger, journal, logger).Drain(source)

	return csvio.WriteSummary(out, ledger.Snapshot())
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
