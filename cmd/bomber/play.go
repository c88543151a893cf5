package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bomb-arcade/internal/config"
	"github.com/vovakirdan/bomb-arcade/internal/core"
	"github.com/vovakirdan/bomb-arcade/internal/platform/tui"
	"github.com/vovakirdan/bomb-arcade/internal/registry"
	"github.com/vovakirdan/bomb-arcade/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing. Without --level a picker asks for the start level
and difficulty first.

Controls:
  Arrows/WASD  - Move
  Space/X      - Drop bomb (also starts the game)
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Back (when paused or after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, slower enemy growth
  normal - Standard rules
  hard   - Fewer lives, enemies start faster
  fixed  - No progression between levels

Examples:
  bomber play
  bomber play bomber_classic
  bomber play --level 5 --difficulty hard
  bomber play --seed 42 --config ./my-bomber.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (skips the level picker)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "bomber"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bomber list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		appLogger.Warn("scores disabled", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	if _, err := playVariant(gameID, store, cfg, flagLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runtimeConfig reads the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playVariant picks a start level (unless level > 0) and runs one game.
// quit reports that the user asked to leave the program from the picker.
func playVariant(gameID string, store *storage.Store, cfg core.RuntimeConfig, level int) (quit bool, err error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return false, fmt.Errorf("creating game: %w", err)
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return false, fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	sel := tui.LevelSelection{Level: level, Difficulty: preset}

	if level <= 0 {
		best := 0
		if store != nil {
			if best, err = store.BestLevel(gameID); err != nil {
				appLogger.Warn("could not load best level", "game", gameID, "error", err)
			}
		}
		picked, quit, pickErr := tui.RunLevelPicker(game.Title(), best, preset, cfg)
		if pickErr != nil {
			return false, pickErr
		}
		if picked == nil {
			return quit, nil
		}
		sel = *picked
	}

	if ls, ok := game.(registry.LevelSelectable); ok {
		ls.SelectStartLevel(sel.Level)
		ls.SelectDifficulty(string(sel.Difficulty))
	}

	appLogger.Info("starting game", "game", gameID, "level", sel.Level, "difficulty", sel.Difficulty, "seed", cfg.Seed)
	if err := tui.Run(game, store, cfg, playerName()); err != nil {
		return false, fmt.Errorf("running game: %w", err)
	}
	return false, nil
}

// playerName labels local scores with the OS user.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
