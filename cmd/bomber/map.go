package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomb-arcade/internal/games/bomber"
)

var (
	flagMapLevel   int
	flagMapClassic bool
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print a generated level",
	Long: `Generate the arena a game with the given seed starts on when it begins
at --level, and print it as ASCII. Reaching that level from an earlier one
draws a different layout.

Legend:
  #  solid wall
  +  breakable wall
  P  player start
  E  enemy spawn
  .  floor

Examples:
  bomber map --seed 42
  bomber map --seed 42 --level 7 --difficulty hard
  bomber map --classic`,
	Args: cobra.NoArgs,
	Run:  runMap,
}

func init() {
	mapCmd.Flags().IntVar(&flagMapLevel, "level", 1, "Level number")
	mapCmd.Flags().BoolVar(&flagMapClassic, "classic", false, "Use the classic variant's rules")
}

func runMap(_ *cobra.Command, _ []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	variant := bomber.VariantStandard
	if flagMapClassic {
		variant = bomber.VariantClassic
	}

	layout := bomber.GenerateLevel(variant, seed, max(flagMapLevel, 1))

	fmt.Printf("seed %d  level %d  enemies %d\n\n", seed, max(flagMapLevel, 1), len(layout.Spawns))
	fmt.Print(bomber.RenderASCII(layout))
}
