package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"textsum/internal/account"
	"textsum/internal/history/memory"
	"textsum/internal/logger"
	"textsum/internal/metrics"
	"textsum/internal/service"
	"textsum/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var metricsAddr string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Sign in and summarize text interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := a.cfg.Metrics.Addr
			if cmd.Flags().Changed("metrics-addr") {
				addr = metricsAddr
			}
			return runTUI(cmd, a, addr)
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	return cmd
}

func runTUI(cmd *cobra.Command, a *app, metricsAddr string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// The terminal belongs to the TUI, so logs go to a file or nowhere.
	log, closeLog, err := tuiLogger(a)
	if err != nil {
		return err
	}
	defer closeLog()

	var recorder metrics.Recorder = metrics.Noop{}
	if metricsAddr != "" {
		prom := metrics.NewPrometheus()
		recorder = prom
		srv := &http.Server{Addr: metricsAddr, Handler: prom.Handler(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server stopped", "err", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		log.Info("serving metrics", "addr", metricsAddr)
	}

	store, err := memory.NewStorage(a.cfg.History.Capacity)
	if err != nil {
		return err
	}
	svc := service.NewSummaryService(a.summarizer(), store, service.Options{
		Delay:   time.Duration(a.cfg.UI.ProcessingDelayMs) * time.Millisecond,
		Metrics: recorder,
		Logger:  log,
	})
	dir := account.NewDirectory(a.cfg.Accounts.SeedDemoUsers)

	for {
		user, err := tui.Authenticate(dir)
		if errors.Is(err, tui.ErrQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("sign in failed: %w", err)
		}
		log.Info("signed in", "user", user.Email)

		m := tui.New(ctx, svc, user, tui.Options{NoticeTTL: time.Duration(a.cfg.UI.NoticeSecs) * time.Second})
		final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		if err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		fm, ok := final.(tui.Model)
		if !ok || !fm.LoggedOut() {
			return nil
		}
		svc.Reset()
		log.Info("signed out", "user", user.Email)
	}
}

func tuiLogger(a *app) (logger.Logger, func(), error) {
	if a.cfg.Log.File == "" {
		return logger.NewDiscard(), func() {}, nil
	}
	f, err := os.OpenFile(a.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(a.cfg.Log.Level),
		Output:     f,
		JSON:       a.cfg.Log.JSON,
		TimeFormat: time.RFC3339,
	})
	return log, func() { _ = f.Close() }, nil
}
