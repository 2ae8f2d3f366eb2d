package main

import (
	"fmt"
	"time"

	"github.com/automoto/cave-island/storage"
	"github.com/spf13/cobra"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent play sessions",
	Long: `Display the most recent play sessions from the run history.

Examples:
  cave-island runs
  cave-island runs --limit 25`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-20s  %-12s  %-7s  %-5s  %s\n", "Date", "Seed", "Map", "Fruits", "Cave", "Time")
	fmt.Fprintf(out, "  %-16s  %-20s  %-12s  %-7s  %-5s  %s\n", "----", "----", "---", "------", "----", "----")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-16s  %-20d  %-12s  %-7s  %-5d  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Seed,
			r.Map,
			fmt.Sprintf("%d/%d", r.FruitsCollected, r.FruitsTotal),
			r.CaveVisits,
			r.Duration.Round(100*time.Millisecond),
		)
	}
	return nil
}
