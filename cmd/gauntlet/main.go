package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pgavlin/gauntlet/cmd/gauntlet/coverage"
	"github.com/pgavlin/gauntlet/cmd/gauntlet/generate"
	"github.com/pgavlin/gauntlet/cmd/gauntlet/list"
)

var version = "<unknown>"

func configureCLI() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "gauntlet",
		Short:         "WebAssembly instruction test generator",
		Long:          "gauntlet - generates minimal single-instruction WebAssembly test modules",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCommand.AddCommand(generate.Command())
	rootCommand.AddCommand(list.Command())
	rootCommand.AddCommand(coverage.Command())

	return rootCommand
}

func main() {
	rootCommand := configureCLI()

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
