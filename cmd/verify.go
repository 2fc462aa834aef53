package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudokugame/internal/domain"
)

var verifyDifficulty string

func init() {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the saved board for a difficulty slot",
		RunE:  runVerify,
	}
	verifyCmd.Flags().StringVarP(&verifyDifficulty, "difficulty", "d", "current", "easy|medium|hard|current")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	diff, ok := domain.ParseDifficulty(verifyDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q", verifyDifficulty)
	}

	svc := newService()
	b, err := svc.LoadBoard(cmd.Context(), diff)
	if err != nil {
		return fmt.Errorf("load %s board: %w", diff, err)
	}

	res, err := svc.Verify(cmd.Context(), b)
	if err != nil {
		return err
	}
	fmt.Println(res.Status)
	for _, d := range res.Duplicates {
		fmt.Printf("%s %d, #%d, %v\n", d.Kind, d.Unit, d.Value, d.Locations)
	}
	return nil
}
