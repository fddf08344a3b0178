package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirechat-client/internal/app"
	"github.com/vovakirdan/wirechat-client/internal/config"
	logpkg "github.com/vovakirdan/wirechat-client/internal/log"
)

var (
	configPath string
	logLevel   string
	serverURL  string
	token      string
)

var rootCmd = &cobra.Command{
	Use:           "wirechat",
	Short:         "Terminal chat client for wirechat servers",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "wirechat server URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Session token for Login as User")
}

func run(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The UI owns the terminal once started; until then, report to stderr.
	bootLogger := logpkg.New("warn", os.Stderr)
	cfg, resolvedPath, err := config.Load(bootLogger, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.UpdateFrom(config.Config{ServerURL: serverURL, LogLevel: logLevel, Token: token})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := logpkg.NewFile(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info().Str("config", resolvedPath).Msg("configuration loaded")

	application, err := app.New(&cfg, logger, tea.WithAltScreen())
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize client")
		return err
	}

	if err := application.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("client exited with error")
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wirechat:", err)
		os.Exit(1)
	}
}
