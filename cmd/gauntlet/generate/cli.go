package generate

import (
	"os"
	"strings"

	"github.com/pgavlin/gauntlet/gauntlet"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
	"gopkg.in/guregu/null.v3"
)

func environ() map[string]string {
	env := map[string]string{}
	for _, v := range os.Environ() {
		kvp := strings.SplitN(v, "=", 2)
		if len(kvp) == 2 {
			env[kvp[0]] = kvp[1]
		}
	}
	return env
}

func Command() *cobra.Command {
	return newCommand(afero.NewOsFs(), environ())
}

func newCommand(fs afero.Fs, env map[string]string) *cobra.Command {
	var families gauntlet.FamilySet
	var out string
	var ext string
	var split bool
	var quiet bool
	var verbose bool

	command := &cobra.Command{
		Use:   "generate [family...]",
		Short: "Generate minimal instruction tests",
		Long: "Generate one WebAssembly text module per catalogue entry of each named family, or of every family if " +
			"none are named. Existing files are overwritten.",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if err := families.Set(arg); err != nil {
					return err
				}
			}

			var cli gauntlet.Config
			flags := cmd.Flags()
			if flags.Changed("out") {
				cli.Out = null.StringFrom(out)
			}
			if flags.Changed("ext") {
				cli.Ext = null.NewString(ext, true)
			}
			if flags.Changed("split") {
				cli.Split = null.BoolFrom(split)
			}
			config, err := gauntlet.GetConsolidatedConfig(env, cli)
			if err != nil {
				return err
			}

			level := zapcore.InfoLevel
			switch {
			case quiet:
				level = zapcore.WarnLevel
			case verbose:
				level = zapcore.DebugLevel
			}
			log := gauntlet.NewProgressLogger(cmd.OutOrStdout(), level)
			defer log.Sync()

			return gauntlet.NewGenerator(fs, config, log).Generate(families.Families()...)
		},
	}

	command.PersistentFlags().VarP(&families, "family", "f", "a family to generate. May be repeated.")
	command.PersistentFlags().StringVarP(&out, "out", "o", ".", "the directory that receives the generated files")
	command.PersistentFlags().StringVar(&ext, "ext", "WAT", "the extension of the generated files")
	command.PersistentFlags().BoolVar(&split, "split", false, "write each family into a subdirectory named after its theme")
	command.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "do not report progress")
	command.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report each test's resolved signature")

	return command
}
