// Command routeplan resolves multi-criteria route requests from a route file
// and writes the per-criterion and compromise routes, or serves the network
// over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/multiroute/config"
	"github.com/katalvlaran/multiroute/dijkstra"
	"github.com/katalvlaran/multiroute/logging"
	"github.com/katalvlaran/multiroute/network"
	"github.com/katalvlaran/multiroute/routefile"
	"github.com/katalvlaran/multiroute/server"
	"github.com/katalvlaran/multiroute/store"
)

const shutdownTimeout = 5 * time.Second

type flags struct {
	config  string
	input   string
	output  string
	db      string
	workers int
	saveDB  bool
	serve   bool
	set     map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("routeplan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "path to TOML config file")
	fs.StringVar(&f.input, "input", "", "route file to read (empty loads the network from -db)")
	fs.StringVar(&f.output, "output", "", "file to write results to, - for stdout")
	fs.StringVar(&f.db, "db", "", "SQLite snapshot path")
	fs.IntVar(&f.workers, "workers", 0, "batch worker count, 0 means GOMAXPROCS")
	fs.BoolVar(&f.saveDB, "save-db", false, "store the parsed network in -db")
	fs.BoolVar(&f.serve, "serve", false, "serve the network over HTTP instead of writing results")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}

	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, nil
}

// apply lets explicitly set flags override file and env values.
func (f flags) apply(cfg *config.Config) {
	if f.set["input"] {
		cfg.Input.Path = f.input
	}
	if f.set["output"] {
		cfg.Output.Path = f.output
	}
	if f.set["db"] {
		cfg.Store.Path = f.db
	}
	if f.set["workers"] {
		cfg.Batch.Workers = f.workers
	}
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "routeplan: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.Logging, stderr)

	net, reqs, err := loadNetwork(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if f.saveDB {
		if err := saveSnapshot(ctx, cfg.Store.Path, net, logger); err != nil {
			return err
		}
	}

	if f.serve {
		return serve(ctx, cfg.HTTP.Addr, net, logger)
	}

	return resolveBatch(ctx, cfg, net, reqs, stdout, logger)
}

// loadNetwork parses the route file, or restores the snapshot when no input
// file is configured. Only the route file carries requests.
func loadNetwork(ctx context.Context, cfg config.Config, logger *slog.Logger) (*network.Network, []network.Request, error) {
	if cfg.Input.Path == "" {
		if cfg.Store.Path == "" {
			return nil, nil, errors.New("no input file and no snapshot configured")
		}
		st, err := store.Open(ctx, cfg.Store.Path, store.WithLogger(logger))
		if err != nil {
			return nil, nil, err
		}
		defer st.Close()

		net, err := st.Load(ctx, networkOptions(cfg, logger)...)
		if err != nil {
			return nil, nil, err
		}

		return net, nil, nil
	}

	file, err := os.Open(cfg.Input.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	doc, err := routefile.Parse(file)
	if err != nil {
		return nil, nil, err
	}
	net := doc.Network(networkOptions(cfg, logger)...)
	if doc.Skipped > 0 {
		logger.Warn("skipped malformed lines", "file", cfg.Input.Path, "count", doc.Skipped)
	}

	return net, doc.Requests, nil
}

// networkOptions maps the search limits onto solver options.
func networkOptions(cfg config.Config, logger *slog.Logger) []network.Option {
	var search []dijkstra.Option
	if cfg.Search.MaxDistance > 0 {
		search = append(search, dijkstra.WithMaxDistance(cfg.Search.MaxDistance))
	}
	if cfg.Search.ClosedRoadWeight > 0 {
		search = append(search, dijkstra.WithInfEdgeThreshold(cfg.Search.ClosedRoadWeight))
	}

	return []network.Option{network.WithLogger(logger), network.WithSearchOptions(search...)}
}

func saveSnapshot(ctx context.Context, path string, net *network.Network, logger *slog.Logger) error {
	if path == "" {
		return errors.New("-save-db requires a snapshot path")
	}
	st, err := store.Open(ctx, path, store.WithLogger(logger))
	if err != nil {
		return err
	}
	defer st.Close()

	return st.Save(ctx, net)
}

func resolveBatch(ctx context.Context, cfg config.Config, net *network.Network, reqs []network.Request, stdout io.Writer, logger *slog.Logger) error {
	results, err := net.ResolveAll(ctx, reqs, cfg.Batch.Workers)
	if err != nil {
		return err
	}

	w := stdout
	if cfg.Output.Path != "-" {
		out, err := os.Create(cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer out.Close()
		w = out
	}
	if err := routefile.Format(w, results); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	logger.Info("results written", "requests", len(results), "output", cfg.Output.Path)

	return nil
}

func serve(ctx context.Context, addr string, net *network.Network, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(net, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
