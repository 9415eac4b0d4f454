// main.go - Entry point for the Sentient assistant application
// Handles configuration loading, logging setup, and launches the terminal UI
// wired to the conversation store.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mehuljariwala/sentient-ai-assistant/src/app"
	"github.com/mehuljariwala/sentient-ai-assistant/src/components/common"
	"github.com/mehuljariwala/sentient-ai-assistant/src/config"
	"github.com/mehuljariwala/sentient-ai-assistant/src/services/assistant"
)

// =====================================================================================
// 🚀 Application Entry Point
// =====================================================================================

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "sentient",
		Short:         "Sentient - an AI companion for meaningful conversations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Initialize logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.Info("Starting Sentient", "version", "1.0.0")

	generator := assistant.NewMockGenerator(
		assistant.WithDelayRange(cfg.Response.MinDelay, cfg.Response.MaxDelay),
	)
	store := assistant.NewStore(generator, assistant.WithLogger(logger))

	layoutCfg := common.DefaultLayoutConfig()
	layoutCfg.WideBreakpoint = cfg.UI.WideBreakpoint
	layoutCfg.SidebarWidth = cfg.UI.SidebarWidth

	program := tea.NewProgram(app.New(store, layoutCfg), tea.WithAltScreen())

	// Every store transition is pushed into the UI event loop. The channel
	// pump keeps delivery in transition order; the subscriber itself runs
	// under the store lock and must not call Send directly.
	updates := make(chan assistant.State, 256)
	store.Subscribe(func(state assistant.State) {
		updates <- state
	})
	go func() {
		for state := range updates {
			program.Send(app.StateMsg{State: state})
		}
	}()

	// Set up graceful shutdown
	setupGracefulShutdown(program, logger)

	if _, err := program.Run(); err != nil {
		logger.Error("Application failed", "error", err)
		return err
	}

	logger.Info("Application completed successfully")
	return nil
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// =====================================================================================
// 🛡️ Graceful Shutdown
// =====================================================================================

// setupGracefulShutdown sets up signal handling for graceful shutdown
func setupGracefulShutdown(program *tea.Program, logger *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Received shutdown signal, cleaning up...")
		program.Quit()
	}()
}
