// Command fxarb detects currency-arbitrage loops.
//
// Usage:
//
//	fxarb [detect] [-config file] [-snapshot rates.json] [-format text|json] [-dedup]
//	fxarb serve    [-config file] [-port 8080]
//
// Without -snapshot, detect runs on the built-in six-currency sample market.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/fxarb/arbitrage"
	"github.com/katalvlaran/fxarb/internal/api"
	"github.com/katalvlaran/fxarb/internal/config"
	"github.com/katalvlaran/fxarb/internal/logging"
	"github.com/katalvlaran/fxarb/internal/snapshotfile"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "fxarb:", err)
		os.Exit(1)
	}
}

// errUnknownCommand is returned for a first argument that is neither a
// subcommand nor a flag.
var errUnknownCommand = errors.New("unknown command")

// run dispatches the subcommand. detect is the default when the first
// argument is a flag or absent.
func run(args []string, stdout io.Writer) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return runDetect(args, stdout)
	}

	switch args[0] {
	case "detect":
		return runDetect(args[1:], stdout)
	case "serve":
		return runServe(args[1:])
	default:
		return fmt.Errorf("%w %q (want detect or serve)", errUnknownCommand, args[0])
	}
}

// parseFlags parses args and rejects leftover positional arguments.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: unexpected argument %q", fs.Name(), fs.Arg(0))
	}

	return nil
}

func runDetect(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to a config file")
	snapPath := fs.String("snapshot", "", "path to a snapshot JSON file (default: built-in sample)")
	format := fs.String("format", "", "output format: text or json")
	dedup := fs.Bool("dedup", false, "report each distinct loop once")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := config.LoadFile(*cfgPath)
	if err != nil {
		return err
	}
	if *snapPath != "" {
		cfg.Snapshot.Path = *snapPath
	}
	if *format != "" {
		cfg.Snapshot.Format = *format
	}
	if *dedup {
		cfg.Detector.Deduplicate = true
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)

	snap := arbitrage.SampleSnapshot()
	if cfg.Snapshot.Path != "" {
		if snap, err = snapshotfile.Load(cfg.Snapshot.Path); err != nil {
			return err
		}
	}

	reporter, err := arbitrage.NewReporter(cfg.Snapshot.Format, stdout)
	if err != nil {
		return err
	}

	cycles, err := newDetector(cfg, logger).Detect(snap)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"currencies": snap.Size(),
		"cycles":     len(cycles),
	}).Info("detection complete")

	return reporter.Report(cycles)
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to a config file")
	port := fs.Int("port", 0, "listen port (overrides config)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := config.LoadFile(*cfgPath)
	if err != nil {
		return err
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := api.NewHandler(newDetector(cfg, logger), logger, cfg.Server.MaxBodyBytes)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: api.NewRouter(handler, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("port", cfg.Server.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

func newDetector(cfg *config.Config, logger *logrus.Logger) *arbitrage.Detector {
	return arbitrage.NewDetector(
		arbitrage.WithLogger(logger),
		arbitrage.WithMaxCurrencies(cfg.Detector.MaxCurrencies),
		arbitrage.WithDeduplicate(cfg.Detector.Deduplicate),
		arbitrage.WithSource(cfg.Detector.Source),
	)
}
