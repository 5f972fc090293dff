package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmrs/sotd-pipeline-sub011/internal/cli"
	"github.com/nmrs/sotd-pipeline-sub011/internal/model"
)

func correctCmd() *cobra.Command {
	var (
		handleBrand  string
		handleModel  string
		handleSource string
		knotBrand    string
		knotModel    string
		knotSource   string
	)

	cmd := &cobra.Command{
		Use:   "correct <input>",
		Short: "Confirm the correct split for a composite brush string",
		Long: `Records a curator-confirmed handle/knot classification for the exact
input string. Confirmed strings bypass all heuristic matching on future
runs. Components are de-duplicated: a handle or knot reused across many
composites is stored once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleBrand == "" || knotBrand == "" {
				return fmt.Errorf("--handle-brand and --knot-brand are required")
			}

			store, path, err := loadOverrides()
			if err != nil {
				return err
			}

			handle := model.ComponentRef{Brand: handleBrand, Model: handleModel, Source: handleSource}
			knot := model.ComponentRef{Brand: knotBrand, Model: knotModel, Source: knotSource}
			store.Confirm(args[0], handle, knot)

			if err := store.Save(path); err != nil {
				return err
			}

			cmd.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("Confirmed %q as %s w/ %s", args[0], handle, knot)))
			return nil
		},
	}

	cmd.Flags().StringVar(&handleBrand, "handle-brand", "", "handle maker")
	cmd.Flags().StringVar(&handleModel, "handle-model", "", "handle model (optional)")
	cmd.Flags().StringVar(&handleSource, "handle-source", "", "raw handle text from the report (optional)")
	cmd.Flags().StringVar(&knotBrand, "knot-brand", "", "knot maker")
	cmd.Flags().StringVar(&knotModel, "knot-model", "", "knot model (optional)")
	cmd.Flags().StringVar(&knotSource, "knot-source", "", "raw knot text from the report (optional)")
	return cmd
}
