package list

import (
	"fmt"

	"github.com/pgavlin/gauntlet/gauntlet"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	var families gauntlet.FamilySet
	var csv bool

	command := &cobra.Command{
		Use:   "list [family...]",
		Short: "List the test catalogue",
		Long:  "List each catalogue entry with its resolved test name and signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if err := families.Set(arg); err != nil {
					return err
				}
			}

			tests, err := gauntlet.Tests(families.Families()...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if csv {
				return gauntlet.WriteManifest(w, tests)
			}
			for _, t := range tests {
				if _, err := fmt.Fprintf(w, "%-12v %-26v %v\n", t.Kind.Family(), t.Name, t.Signature); err != nil {
					return err
				}
			}
			return nil
		},
	}

	command.PersistentFlags().VarP(&families, "family", "f", "a family to list. May be repeated.")
	command.PersistentFlags().BoolVar(&csv, "csv", false, "list the catalogue in CSV format")

	return command
}
