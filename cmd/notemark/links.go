package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/notemark/dictionary"
)

func newLinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links <word...>",
		Short: "Print dictionary links for vocabulary words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, word := range dictionary.Dedupe(args) {
				fmt.Fprintln(w, titleStyle.Render(word))
				for _, l := range dictionary.Links(word) {
					fmt.Fprintf(w, "  %-10s %s\n", l.Name, l.URL)
				}
			}
			return nil
		},
	}
}
