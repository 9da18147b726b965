package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YellowKidokc/File-Organization/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [root]",
		Short: "Run preflight checks without moving anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			results := preflight.RunAll(cfg, preflight.Options{
				ConfigPath:   ctx.configPath,
				ConfigExists: ctx.configExists,
				Root:         root,
			})

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Preflight", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, result := range results {
				kind := statusError
				if result.Passed {
					kind = statusOK
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			if !preflight.AllPassed(results) {
				return fmt.Errorf("preflight found problems; fix the failing checks above")
			}
			return nil
		},
	}
}
