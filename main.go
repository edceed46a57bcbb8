package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/cbet/sentinelles/auth"
	"github.com/cbet/sentinelles/cliparse"
	"github.com/cbet/sentinelles/db"
	"github.com/cbet/sentinelles/router"
)

func main() {
	slog.SetDefault(newLogger())

	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.HashPassword != "" {
		hash, err := auth.HashPassword(cfg.HashPassword)
		if err != nil {
			slog.Error("hashing failed", "error", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg cliparse.Config) error {
	verifier, err := auth.NewVerifier(cfg.LabUsername, cfg.LabPassword, cfg.LabPasswordHash)
	if err != nil {
		return fmt.Errorf("lab credentials: %w", err)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Connect and verify
	store, err := db.Open(startCtx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	// Create schema (tables)
	if err := store.CreateSchema(startCtx); err != nil {
		return err
	}
	slog.Info("Database schema ready", "driver", store.Driver())

	server := http.Server{
		Handler:           router.NewRouter(store, verifier, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "static_dir", cfg.StaticDir)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	slog.Info("Server closed")
	return nil
}

// newLogger writes text to a terminal and JSON everywhere else.
func newLogger() *slog.Logger {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
