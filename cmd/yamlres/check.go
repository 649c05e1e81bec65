package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/yamlres/pkg/ast"
	"github.com/dmitrymomot/yamlres/pkg/health"
)

// checkConcurrency bounds parallel document reads.
const checkConcurrency = 4

// coverage lists the reference ids a language lacks.
type coverage struct {
	Language string
	Missing  []string
}

func newCheckCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate every document against the reference language",
		Long: `Parses the document of every discovered language and reports the message
ids of the reference language each one is missing. The reference language
must itself have a document. With --strict, missing ids fail the check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			resp := health.Run(ctx, a.backend.checks, health.WithLogger(a.log))
			if err := resp.Err(); err != nil {
				return err
			}

			langs, err := a.plugin.Languages(ctx)
			if err != nil {
				return err
			}
			ref := a.cfg.ReferenceLanguage
			if !slices.Contains(langs, ref) {
				return fmt.Errorf("%w: %q is not among %v", errReferenceMissing, ref, langs)
			}
			for _, lang := range langs {
				if _, err := language.Parse(lang); err != nil {
					a.log.WarnContext(ctx, "language is not a valid BCP 47 tag",
						slog.String("language", lang),
						slog.String("error", err.Error()),
					)
				}
			}

			resources := make([]ast.Resource, len(langs))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(checkConcurrency)
			for i, lang := range langs {
				g.Go(func() error {
					res, err := a.plugin.ReadResources(gctx, []string{lang})
					if err != nil {
						return err
					}
					resources[i] = res[0]
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			report := compareCoverage(resources, ast.LanguageTag(ref))
			writeReport(cmd.OutOrStdout(), ref, report)

			incomplete := 0
			for _, c := range report {
				if len(c.Missing) > 0 {
					incomplete++
					a.log.WarnContext(ctx, "language is missing messages",
						slog.String("language", c.Language),
						slog.Int("missing", len(c.Missing)),
					)
				}
			}
			if strict && incomplete > 0 {
				return fmt.Errorf("%w: %d of %d languages are missing messages", errCheckFailed, incomplete, len(report))
			}
			return nil
		},
	}
	cmd.Flags().String("reference", "", "reference language (YAMLRES_REFERENCE_LANGUAGE, default en)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a language is missing messages")
	return cmd
}

// compareCoverage reports, for every non-reference resource in order, the
// reference ids it lacks.
func compareCoverage(resources []ast.Resource, ref ast.LanguageTag) []coverage {
	var refIDs []string
	for _, res := range resources {
		if res.LanguageTag == ref {
			refIDs = res.IDs()
			break
		}
	}

	report := make([]coverage, 0, len(resources))
	for _, res := range resources {
		if res.LanguageTag == ref {
			continue
		}
		c := coverage{Language: res.LanguageTag.String()}
		for _, id := range refIDs {
			if _, ok := res.Lookup(id); !ok {
				c.Missing = append(c.Missing, id)
			}
		}
		report = append(report, c)
	}
	return report
}

func writeReport(w io.Writer, ref string, report []coverage) {
	fmt.Fprintf(w, "reference: %s\n", ref)
	for _, c := range report {
		if len(c.Missing) == 0 {
			fmt.Fprintf(w, "%s: complete\n", c.Language)
			continue
		}
		fmt.Fprintf(w, "%s: %d missing\n", c.Language, len(c.Missing))
		for _, id := range c.Missing {
			fmt.Fprintf(w, "  - %s\n", id)
		}
	}
}
