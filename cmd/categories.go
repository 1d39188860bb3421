package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the available categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, api, err := openStore(cmd.Context(), false)
		if err != nil {
			return err
		}

		categories, err := api.Categories(cmd.Context())
		if err != nil {
			return err
		}

		tw := newTable(cmd.OutOrStdout())
		fmt.Fprintln(tw, "ID\tICON\tNAME\tCOLOR")
		for _, c := range categories {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.Icon, c.Name, c.Color)
		}
		return tw.Flush()
	},
}
