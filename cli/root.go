package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

func New(cfg *Config) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "tagger <command> [flags]",
		Short:         "Asset Tag Service",
		Long:          "Sequential asset tag generation & inventory tagging service.",
		SilenceErrors: true,
		SilenceUsage:  false,
		Example: heredoc.Doc(`
			$ tagger serve
			$ tagger generate --country EGY --manufacturer ZE --name "Zebra Printer"
			$ tagger list
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'tagger <command> --help' for info about a command.
			`),
		},
	}

	rootCmd.AddCommand(
		cmdServe(cfg),
		configCommand(cfg),
		cmdGenerate(cfg),
		cmdImport(cfg),
		cmdList(cfg),
		versionCmd(),
	)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd("tagger"))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")

	return rootCmd
}
