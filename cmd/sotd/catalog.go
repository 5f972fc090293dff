package main

import (
	"github.com/spf13/cobra"

	"github.com/nmrs/sotd-pipeline-sub011/internal/cli"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog maintenance commands",
	}
	cmd.AddCommand(catalogLintCmd())
	return cmd
}

func catalogLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Load and compile all catalogs and the correct-matches file",
		Long: `Performs the same fail-fast load as a match run: every pattern is
compiled and the correct-matches file is checked for dangling component
references. Errors name the offending file, brand, model, and pattern.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalogs, err := loadCatalogs()
			if err != nil {
				return err
			}
			overrides, _, err := loadOverrides()
			if err != nil {
				return err
			}

			cmd.Printf("%s %d brush, %d handle, %d knot entries; %d confirmed matches\n",
				cli.SuccessStyle.Render("OK:"),
				catalogs.Brushes.Len(), catalogs.Handles.Len(), catalogs.Knots.Len(),
				overrides.Len())
			return nil
		},
	}
}
