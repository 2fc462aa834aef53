package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"svw.info/sudokugame/internal/domain"
)

var (
	genDifficulty string
	genSeed       int64
	genSave       bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a Sudoku puzzle",
		Long: `Generate a puzzle at a target difficulty and print it.

Examples:
  sudokugame gen --difficulty easy
  sudokugame gen --difficulty hard --seed 42 --save`,
		RunE: runGen,
	}
	genCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "easy", "easy|medium|hard")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().BoolVar(&genSave, "save", false, "Save the puzzle to the data directory")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	diff, ok := domain.ParseDifficulty(genDifficulty)
	if !ok || diff == domain.Current {
		return fmt.Errorf("unknown difficulty %q (use easy, medium, or hard)", genDifficulty)
	}
	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	svc := newService()
	p, st, err := svc.Generate(cmd.Context(), seed, diff)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	log.Debug().Int("nodes", st.Nodes).Dur("dur", st.Duration).Msg("generated")

	fmt.Printf("Puzzle (%s, seed %d):\n%s\n", diff, seed, &p.Board)
	fmt.Printf("Solution:\n%s", &p.Solved)

	if genSave {
		if err := svc.SaveBoard(cmd.Context(), &p.Board, diff); err != nil {
			return fmt.Errorf("save puzzle: %w", err)
		}
		fmt.Printf("Saved %s puzzle to %s\n", diff, dataDir)
	}
	return nil
}
