package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/kosakata/internal/config"
	"github.com/faizmokh/kosakata/internal/files"
	"github.com/faizmokh/kosakata/internal/logging"
	"github.com/faizmokh/kosakata/internal/ui"
	"github.com/faizmokh/kosakata/internal/version"
	"github.com/faizmokh/kosakata/internal/vocab"
)

// workspace carries what every subcommand needs once flags are parsed.
type workspace struct {
	manager *files.Manager
	config  config.Config
}

// load resolves the workspace root and reads the config found there. An
// explicit configPath must exist; the default kosakata.yaml is optional.
func (w *workspace) load(dir, configPath string) error {
	manager, err := files.NewManager(dir)
	if err != nil {
		return err
	}

	var cfg config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOptional(manager.Resolve(config.DefaultFileName))
	}
	if err != nil {
		return err
	}
	manager.SetNormalize(cfg.Text.Normalize)

	w.manager = manager
	w.config = cfg
	slog.Debug("workspace ready", "base", manager.BasePath(), "normalize", cfg.Text.Normalize)
	return nil
}

func (w *workspace) classifier() vocab.Classifier {
	words := w.config.Words
	return vocab.Classifier{
		DoubleMarker: words.Markers.Double,
		SingleMarker: words.Markers.Single,
		DoubleLabel:  words.Labels.Double,
		SingleLabel:  words.Labels.Single,
		PlainLabel:   words.Labels.Plain,
	}
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context) *cobra.Command {
	ws := &workspace{}

	var (
		dirFlag       string
		configFlag    string
		logFormatFlag string
		verboseFlag   bool
	)

	cmd := &cobra.Command{
		Use:     version.Name,
		Short:   "Reorganize vocabulary lists and textbook sheets into grouped reports.",
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := logging.ParseFormat(logFormatFlag)
			if err != nil {
				return err
			}
			logging.Init(cmd.ErrOrStderr(), verboseFlag, format)
			return ws.load(dirFlag, configFlag)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := vocab.NewReader(ws.manager, ws.classifier())
			m := ui.NewModel(ctx, reader, ws.config.Words.Input)
			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&dirFlag, "dir", "", "Workspace directory (default: $"+files.HomeEnv+" or the current directory)")
	flags.StringVar(&configFlag, "config", "", "Config file (default: "+config.DefaultFileName+" in the workspace)")
	flags.StringVar(&logFormatFlag, "log-format", "text", "Log format on stderr (text|json)")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newStarsCommand(ctx, ws),
		newEntriesCommand(ctx, ws),
		newGradesCommand(ctx, ws),
		newOverlapCommand(ctx, ws),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).ExecuteContext(ctx)
}

// Main is a helper used by cmd/kosakata/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
