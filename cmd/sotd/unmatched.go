package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmrs/sotd-pipeline-sub011/internal/cli"
	"github.com/nmrs/sotd-pipeline-sub011/internal/common"
	"github.com/nmrs/sotd-pipeline-sub011/internal/storage"
)

func unmatchedCmd() *cobra.Command {
	var run string

	cmd := &cobra.Command{
		Use:   "unmatched",
		Short: "List inputs of a run that no rule consumed",
		Long: `Lists the unmatched input set for a run so curators can extend the
catalogs or confirm splits with 'sotd correct'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if run == "" {
				return fmt.Errorf("--run is required (e.g. --run 2025-04)")
			}

			store, err := storage.NewSQLiteStorage(common.ExpandPath(viper.GetString("database.path")))
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			inputs, err := store.Unmatched(cmd.Context(), run)
			if err != nil {
				return err
			}

			if len(inputs) == 0 {
				cmd.Println(cli.SuccessStyle.Render("No unmatched inputs for " + run))
				return nil
			}

			cmd.Println(cli.TitleStyle.Render(fmt.Sprintf("Unmatched inputs for %s (%d)", run, len(inputs))))
			for _, input := range inputs {
				cmd.Println("  " + input)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&run, "run", "", "run label, typically a month (YYYY-MM)")
	return cmd
}
