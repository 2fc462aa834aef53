package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"svw.info/sudokugame/internal/domain"
)

var solveDifficulty string

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the saved board for a difficulty slot",
		Long: `Load the saved board for a difficulty slot and search for values
filling its five empty cells. The solver is defined only for boards with
exactly five unknowns.`,
		RunE: runSolve,
	}
	solveCmd.Flags().StringVarP(&solveDifficulty, "difficulty", "d", "current", "easy|medium|hard|current")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	diff, ok := domain.ParseDifficulty(solveDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q", solveDifficulty)
	}

	svc := newService()
	b, err := svc.LoadBoard(cmd.Context(), diff)
	if err != nil {
		return fmt.Errorf("load %s board: %w", diff, err)
	}

	sol, st, err := svc.Solve(cmd.Context(), b)
	if err != nil {
		return fmt.Errorf("solve %s board: %w", diff, err)
	}
	log.Debug().Int("nodes", st.Nodes).Dur("dur", st.Duration).Msg("solved")

	for _, p := range sol {
		fmt.Printf("(%d, %d) = %d\n", p.Row, p.Col, p.Value)
	}
	return nil
}
