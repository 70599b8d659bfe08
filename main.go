package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"DataSci/internal/coordinator"
	"DataSci/internal/grep"
	httpserver "DataSci/internal/http"
	"DataSci/internal/logger"
	"DataSci/internal/mapreduce"
	"DataSci/internal/store"
)

func main() {
	mode := flag.String("mode", "demo", "Mode: 'demo' to print the walkthroughs, 'serve' to start the HTTP API, 'grep' to search files")
	addr := flag.String("addr", ":8080", "HTTP listen address for serve mode")
	id := flag.String("id", "datasci-1", "Server id reported by /health")
	dbPath := flag.String("db", "", "sqlite file for run history (empty keeps runs in memory)")
	logLevel := flag.String("log-level", "INFO", "DEBUG, INFO, WARN or ERROR")
	parallelism := flag.Int("parallelism", 4, "Concurrent mapper and reducer calls")
	retries := flag.Int("retries", 2, "Attempts per mapper or reducer call")
	seed := flag.Int64("seed", 0, "Random seed for the demo")
	pattern := flag.String("pattern", "", "Regular expression for grep mode")
	flag.Parse()

	if _, err := logger.ParseLevel(*logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	lg := logger.New(*logLevel)

	engine := mapreduce.NewEngine(mapreduce.Options{
		Parallelism: *parallelism,
		MaxRetries:  *retries,
		Logger:      lg,
	})

	var st *store.Store
	if *dbPath != "" {
		var err error
		st, err = store.Open(store.Options{Path: *dbPath})
		if err != nil {
			lg.Error("Failed to open store: %v", err)
			os.Exit(1)
		}
		defer st.Close()
		lg.Info("Run history stored in %s", st.Path())
	}
	coord := coordinator.NewCoordinator(engine, st, lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch *mode {
	case "demo":
		err = runDemo(ctx, os.Stdout, coord, *seed)
	case "serve":
		err = serve(ctx, httpserver.ServerOpts{ID: *id, Addr: *addr, Logger: lg}, coord)
	case "grep":
		err = runGrep(ctx, coord, *pattern, flag.Args())
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(2)
	}
	if err != nil {
		lg.Error("%s failed: %v", *mode, err)
		stop()
		os.Exit(1)
	}
}

func serve(ctx context.Context, opts httpserver.ServerOpts, coord *coordinator.Coordinator) error {
	gin.SetMode(gin.ReleaseMode)
	server, err := httpserver.NewServer(opts, coord)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func runGrep(ctx context.Context, coord *coordinator.Coordinator, pattern string, paths []string) error {
	if pattern == "" || len(paths) == 0 {
		return errors.New("usage: -mode grep -pattern REGEX FILE_OR_DIR...")
	}
	docs, err := grep.LoadDocuments(paths)
	if err != nil {
		return err
	}
	_, matches, err := coord.SubmitGrep(ctx, pattern, docs)
	if err != nil {
		return err
	}
	grep.PrintResults(os.Stdout, matches)
	return nil
}
