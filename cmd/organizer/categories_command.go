package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YellowKidokc/File-Organization/internal/classify"
)

func newCategoriesCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "categories",
		Short:       "Show the category table used for classification",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOut {
				return writeJSON(cmd, classify.Table())
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderCategoriesTable(classify.Table()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the table as JSON")
	return cmd
}
