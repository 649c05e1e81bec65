package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

func newLanguagesCmd(a *app) *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the languages that have a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			langs, err := a.plugin.Languages(cmd.Context())
			if err != nil {
				return err
			}
			if sorted {
				slices.Sort(langs)
			}
			for _, lang := range langs {
				fmt.Fprintln(cmd.OutOrStdout(), lang)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sorted, "sort", false, "sort languages alphabetically")
	return cmd
}
