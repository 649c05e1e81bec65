package main

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		languages []string
		compact   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print resources as JSON",
		Long: `Reads the documents of the given languages (all discovered languages by
default) and prints them as a JSON array of resources on stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			langs := languages
			if len(langs) == 0 {
				var err error
				if langs, err = a.plugin.Languages(ctx); err != nil {
					return err
				}
			}

			resources, err := a.plugin.ReadResources(ctx, langs)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(resources); err != nil {
				return err
			}

			a.log.InfoContext(ctx, "resources exported", slog.Int("languages", len(resources)))
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&languages, "language", "l", nil, "languages to export (default: all discovered)")
	cmd.Flags().BoolVar(&compact, "compact", false, "print compact JSON")
	return cmd
}
