package coverage

import (
	"errors"
	"fmt"

	"github.com/pgavlin/gauntlet/gauntlet"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "coverage",
		Short: "Check the catalogue against the instruction set",
		Long: "Report memory access, numeric and saturating truncation instructions that have no catalogue entry, " +
			"and catalogue entries that duplicate an instruction",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return errors.New("expected no arguments")
			}

			c := gauntlet.ComputeCoverage(gauntlet.Catalogue())

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d of %d instructions covered\n", c.Covered, len(gauntlet.Testable()))
			for _, instr := range c.Missing {
				fmt.Fprintf(w, "missing: %v (%v)\n", instr.OpString(), instr.Encoding())
			}
			for _, e := range c.Duplicates {
				fmt.Fprintf(w, "duplicate: %v (%v)\n", e.Mnemonic, e.Op.Encoding())
			}
			for _, e := range c.Untestable {
				fmt.Fprintf(w, "untestable: %v (%v)\n", e.Mnemonic, e.Op.Encoding())
			}

			if !c.Complete() {
				return errors.New("catalogue coverage is incomplete")
			}
			return nil
		},
	}
}
