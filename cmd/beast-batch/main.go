// Command beast-batch scores many wallets and prints one JSON line per
// address to stdout. Logs go to stderr.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	service "github.com/okian/beastscore/internal/app"
	"github.com/okian/beastscore/internal/batch"
	"github.com/okian/beastscore/internal/config"
	"github.com/okian/beastscore/pkg/logger"
)

func main() {
	var (
		file    = flag.String("file", "", "File with one address per line (\"-\" reads stdin)")
		workers = flag.Int("workers", 0, "Number of concurrent scorers (default from batch_workers)")
		verbose = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.InitWithWriter(os.Stderr, cfg.LogFormat); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	_ = logger.SetLevelString(cfg.LogLevel)
	log := logger.Get()

	addresses, err := collectAddresses(*file, flag.Args())
	if err != nil {
		log.Error(ctx, "failed to read addresses", logger.Error(err))
		os.Exit(1)
	}
	if len(addresses) == 0 {
		os.Stderr.WriteString("usage: beast-batch [-file path] [-workers n] [address ...]\n")
		os.Exit(2)
	}

	n := cfg.BatchWorkers
	if *workers > 0 {
		n = *workers
	}
	runner := batch.New(service.FromConfig(cfg, log), batch.WithWorkers(n), batch.WithLogger(log.Named("batch")))

	if err := batch.WriteJSONLines(os.Stdout, runner.Run(ctx, addresses)); err != nil {
		log.Error(ctx, "failed to write results", logger.Error(err))
		os.Exit(1)
	}
}

// collectAddresses merges addresses from path (if any) with args.
func collectAddresses(path string, args []string) ([]string, error) {
	var out []string
	if path != "" {
		in := os.Stdin
		if path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			in = f
		}
		fromFile, err := batch.ReadAddresses(in)
		if err != nil {
			return nil, err
		}
		out = append(out, fromFile...)
	}
	return append(out, args...), nil
}
