package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/blossom/internal/app"
	"github.com/abhisek/blossom/internal/audio"
)

// runApp resolves the config, sets up logging and audio, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()
	logger = logger.With("run", uuid.NewString())
	slog.SetDefault(logger)

	var player audio.Player = audio.Nop{}
	if !cfg.Audio.Mute {
		sp := audio.NewSpeakerPlayer()
		defer func() {
			if err := sp.Close(); err != nil {
				logger.Warn("closing audio", "err", err)
			}
		}()
		player = sp
	}

	return app.Run(app.Options{
		Config: cfg,
		Player: player,
		Logger: logger,
	})
}

// logPath returns the --log flag, then BLOSSOM_LOG. Empty means no logging;
// the terminal belongs to the UI.
func logPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("log"); p != "" {
		return p
	}
	return os.Getenv("BLOSSOM_LOG")
}

func newLogger(cmd *cobra.Command) (*slog.Logger, func(), error) {
	path := logPath(cmd)
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(path, "blossom")
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
