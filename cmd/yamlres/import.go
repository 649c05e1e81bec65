package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/yamlres/pkg/ast"
)

func newImportCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Write resources from JSON",
		Long: `Reads a JSON array of resources, as printed by export, and replaces the
document of every language it contains. Languages without a document are
created. Writing stops at the first failure; earlier languages stay written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			resources, err := decodeResources(in)
			if err != nil {
				return err
			}
			if err := a.plugin.WriteResources(ctx, resources); err != nil {
				return err
			}

			a.log.InfoContext(ctx, "resources imported", slog.Int("languages", len(resources)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON file to read, - for stdin")
	return cmd
}

func decodeResources(r io.Reader) ([]ast.Resource, error) {
	var resources []ast.Resource
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&resources); err != nil {
		return nil, fmt.Errorf("decoding resources: %w", err)
	}
	for i, res := range resources {
		if res.LanguageTag == "" {
			return nil, fmt.Errorf("decoding resources: entry %d has no languageTag", i)
		}
	}
	return resources, nil
}
