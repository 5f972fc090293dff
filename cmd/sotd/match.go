package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmrs/sotd-pipeline-sub011/internal/cli"
	"github.com/nmrs/sotd-pipeline-sub011/internal/common"
	"github.com/nmrs/sotd-pipeline-sub011/internal/storage"
)

func matchCmd() *cobra.Command {
	var run string

	cmd := &cobra.Command{
		Use:   "match <file>",
		Short: "Classify a batch of product descriptions",
		Long: `Reads product descriptions (one per line, # comments ignored) and
classifies each against the catalogs, storing outcomes for the run so
unmatched inputs can be reviewed with 'sotd unmatched'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if run == "" {
				return fmt.Errorf("--run is required (e.g. --run 2025-04)")
			}
			return runMatch(cmd, args[0], run)
		},
	}

	cmd.Flags().StringVar(&run, "run", "", "run label, typically a month (YYYY-MM)")
	return cmd
}

func runMatch(cmd *cobra.Command, path, run string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}

	store, err := storage.NewSQLiteStorage(common.ExpandPath(viper.GetString("database.path")))
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	bar := progressbar.NewOptions(len(inputs),
		progressbar.OptionSetDescription("Matching"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	ctx := cmd.Context()
	for _, input := range inputs {
		res := eng.Classify(input)
		if err := store.SaveOutcome(ctx, run, common.Normalize(input), res); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	printSummary(cmd, eng.Stats().Calls, eng.Stats().Matched, eng.Stats().CacheHits, eng.Stats().ByStrategy)
	return nil
}

func printSummary(cmd *cobra.Command, calls, matched, cacheHits int, byStrategy map[string]int) {
	cmd.Println(cli.TitleStyle.Render("Match summary"))

	rate := 0.0
	if calls > 0 {
		rate = float64(matched) / float64(calls) * 100
	}
	cmd.Printf("%s %d inputs, %d matched (%.1f%%), %d cache hits\n",
		cli.BoldStyle.Render("Total:"), calls, matched, rate, cacheHits)

	names := make([]string, 0, len(byStrategy))
	for name := range byStrategy {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd.Printf("  %s %d\n", cli.SubtleStyle.Render(name+":"), byStrategy[name])
	}

	if matched < calls {
		cmd.Println(cli.WarningStyle.Render(
			fmt.Sprintf("%d inputs unmatched — review with 'sotd unmatched --run <run>'", calls-matched)))
	} else {
		cmd.Println(cli.SuccessStyle.Render("All inputs matched"))
	}
}
