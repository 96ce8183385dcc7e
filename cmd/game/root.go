package main

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"pixel-survivor/internal/config"
	"pixel-survivor/internal/defs"
	"pixel-survivor/internal/event"
	"pixel-survivor/internal/input"
	"pixel-survivor/internal/logging"
	"pixel-survivor/internal/progress"
	"pixel-survivor/internal/state"
	"pixel-survivor/internal/utils"
	"pixel-survivor/pkg/render"
)

// flags override values loaded from the environment
type flags struct {
	saveDir   string
	seed      int64
	logFormat string
	classDefs string
}

func newRootCmd() *cobra.Command {
	var f flags
	rootCmd := &cobra.Command{
		Use:   "pixel-survivor",
		Short: "Top-down arena survival game",
		Long: `Pixel Survivor: move with the mouse, touch or WASD while your hero attacks
automatically. Survive endless waves or clear 60-second challenge stages.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, f)
			if err != nil {
				return err
			}
			return run(settings)
		},
	}

	rootCmd.PersistentFlags().StringVar(&f.saveDir, "save-dir", "", "directory for the progress file (env SAVE_DIR)")
	rootCmd.PersistentFlags().StringVar(&f.logFormat, "log-format", "", "log format: text or json (env LOG_FORMAT)")
	rootCmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed, 0 for time-based (env RNG_SEED)")
	rootCmd.Flags().StringVar(&f.classDefs, "class-defs", "", "JSON file overriding class starting stats (env CLASS_DEFS)")

	rootCmd.AddCommand(newResetCmd(&f))
	return rootCmd
}

func newResetCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete saved progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, *f)
			if err != nil {
				return err
			}
			store := progress.NewStore(afero.NewOsFs(), settings.SaveDir)
			if err := store.Reset(); err != nil {
				return err
			}
			slog.Info("Progress reset", "path", store.Path())
			return nil
		},
	}
}

func loadSettings(cmd *cobra.Command, f flags) (config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return settings, fmt.Errorf("failed to load settings: %w", err)
	}
	if f.saveDir != "" {
		settings.SaveDir = f.saveDir
	}
	if f.logFormat != "" {
		settings.LogFormat = f.logFormat
	}
	if cmd.Flags().Changed("seed") {
		settings.Seed = f.seed
	}
	if f.classDefs != "" {
		settings.ClassDefs = f.classDefs
	}
	logging.New(settings.LogFormat)
	return settings, nil
}

func run(settings config.Settings) error {
	fs := afero.NewOsFs()
	if settings.ClassDefs != "" {
		if err := defs.LoadClassDefinitions(fs, settings.ClassDefs); err != nil {
			return err
		}
	}

	store := progress.NewStore(fs, settings.SaveDir)
	saver, err := progress.NewSaver(store)
	if err != nil {
		return err
	}
	defer func() {
		if err := saver.Close(); err != nil {
			slog.Error("Failed to close saver", "error", err)
		}
	}()

	holder := progress.NewHolder(store.Load(), saver)
	dispatcher := event.NewDispatcher()
	holder.Subscribe(dispatcher)

	bounds := utils.Bounds{W: float64(settings.WindowWidth), H: float64(settings.WindowHeight)}
	sm := state.NewStateMachine(&state.Services{
		Progress:   holder,
		Dispatcher: dispatcher,
		Rng:        utils.NewPRNGService(settings.Seed),
		Renderer:   render.NewArenaRenderer(),
		Sampler:    &input.Sampler{},
	}, bounds)
	sm.SetState(state.NewMenuState(sm))

	slog.Info("Starting game",
		"save", store.Path(),
		"class", holder.Progress().SelectedClass,
		"cleared_stage", holder.Progress().ClearedChallengeStage,
	)

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("Pixel Survivor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(newAppGame(sm)); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}
