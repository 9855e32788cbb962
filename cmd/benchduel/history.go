package main

import (
	"fmt"
	"text/tabwriter"

	"benchduel/internal/db"
	"benchduel/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	histLimit     int
	histThreshold float64
)

var historyCmd = &cobra.Command{
	Use:   "history <suite>",
	Short: "Show saved runs and check for regressions",
	Long: `Lists the saved runs of a suite, newest first, and compares the
latest run against the previous one. A mean pass time that grew past the
threshold is flagged as a regression.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&histLimit, "limit", 10, "number of runs to show")
	historyCmd.Flags().Float64Var(&histThreshold, "threshold", 0, "regression threshold in percent (default from config)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, err := db.NewSQLiteStore(viper.GetString("db"))
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	runs, err := store.History(name, histLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No saved runs for %q. Run 'benchduel run %s --save' first.\n", name, name)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "WHEN\tTRIALS\t%s MEAN\t%s MEAN\tOPS/S A\tOPS/S B\n", runs[0].CandidateA, runs[0].CandidateB)
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%d\t%.3fms\t%.3fms\t%.0f\t%.0f\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.Trials, r.MeanA, r.MeanB, r.OpsA, r.OpsB)
	}
	w.Flush()

	if len(runs) < 2 {
		return nil
	}

	threshold := histThreshold
	if threshold <= 0 {
		threshold = viper.GetFloat64("threshold")
	}

	latest, prev := runs[0], runs[1]
	fmt.Fprintf(cmd.OutOrStdout(), "\nLatest vs previous (threshold %.1f%%):\n", threshold)
	printTrend(cmd, latest.CandidateA, prev.MeanA, latest.MeanA, threshold)
	printTrend(cmd, latest.CandidateB, prev.MeanB, latest.MeanB, threshold)
	return nil
}

// printTrend reports how one candidate's mean pass time moved between the
// two most recent runs. Positive diff means the new run is slower.
func printTrend(cmd *cobra.Command, name string, prev, curr, threshold float64) {
	if prev == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: no baseline\n", name)
		return
	}
	diff := (curr - prev) / prev * 100
	fmt.Fprintf(cmd.OutOrStdout(), "  %s: %+.2f%% %s\n", name, diff, ui.RegressionStatus(diff, threshold))
}
