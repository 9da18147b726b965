package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)
	opts := &organizeOptions{}

	rootCmd := &cobra.Command{
		Use:   "organizer [root]",
		Short: "Plan and apply extension-based file organization",
		Long: `organizer scans a directory tree, classifies every regular file by its
extension, and plans moves into category folders directly under the root.
By default it only previews the plan; --apply executes it.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return runOrganize(cmd, ctx, root, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	flags := rootCmd.Flags()
	flags.StringArrayVarP(&opts.excludes, "exclude", "e", nil, "Directory or file name to exclude (repeatable)")
	flags.BoolVar(&opts.apply, "apply", false, "Execute the planned moves instead of previewing them")
	flags.BoolVar(&opts.showPrompt, "show-prompt", false, "Print the assembled model request payload")
	flags.StringVar(&opts.output, "output", outputText, "Output format: text, table, or json")

	rootCmd.AddCommand(newCategoriesCommand())
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
