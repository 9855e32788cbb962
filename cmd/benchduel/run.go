package main

import (
	"fmt"

	"benchduel/internal/db"
	"benchduel/internal/ui"
	"benchduel/pkg/harness"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	runTrials     int
	runWarmup     int
	runSkipVerify bool
	runSave       bool
	runList       bool
)

var runCmd = &cobra.Command{
	Use:   "run [suite...]",
	Short: "Run built-in comparison suites",
	Long: `Runs one or more of the built-in demo suites (all of them when no
names are given). Each suite verifies the two candidates agree over the input
set, warms up, then measures alternating trials and prints the comparison
report. With --save the run summary is appended to the history database.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runTrials, "trials", 0, "benchmark trials per suite (default from config)")
	runCmd.Flags().IntVar(&runWarmup, "warmup", 0, "warmup iterations per suite (default from config)")
	runCmd.Flags().BoolVar(&runSkipVerify, "skip-verify", false, "skip the equivalence check")
	runCmd.Flags().BoolVar(&runSave, "save", false, "save run summaries to history")
	runCmd.Flags().BoolVar(&runList, "list", false, "list available suites")
}

func runRun(cmd *cobra.Command, args []string) error {
	suites := builtinSuites()

	if runList {
		for _, name := range suiteNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	names := args
	if len(names) == 0 {
		names = suiteNames()
	}
	for _, name := range names {
		if _, ok := suites[name]; !ok {
			return fmt.Errorf("unknown suite %q (try 'benchduel run --list')", name)
		}
	}

	var store db.Store
	if runSave {
		var err error
		store, err = db.NewSQLiteStore(viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer store.Close()
	}

	opts := harness.Options{
		Trials:     intOr(runTrials, viper.GetInt("trials")),
		Warmup:     intOr(runWarmup, viper.GetInt("warmup")),
		Seed:       viper.GetInt64("seed"),
		SkipVerify: runSkipVerify,
		Out:        cmd.OutOrStdout(),
	}

	for _, name := range names {
		bench := suites[name]()
		fmt.Fprintln(cmd.OutOrStdout(), ui.Header(" "+bench.Name+" "))

		res := bench.Run(opts)

		if store != nil {
			if err := saveRun(store, res); err != nil {
				return fmt.Errorf("failed to save run for %q: %w", name, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Dim("Saved to history."))
		}
	}

	return nil
}

func saveRun(store db.Store, res *harness.Result) error {
	sa := harness.Summarize(res.SamplesA, res.Ops())
	sb := harness.Summarize(res.SamplesB, res.Ops())
	return store.SaveRun(db.Run{
		Name:       res.Benchmark.Name,
		CandidateA: res.Benchmark.A.Name,
		CandidateB: res.Benchmark.B.Name,
		Trials:     res.Trials,
		MeanA:      sa.Mean,
		MeanB:      sb.Mean,
		MedianA:    sa.Median,
		MedianB:    sb.Median,
		OpsA:       sa.Ops,
		OpsB:       sb.Ops,
	})
}

func intOr(flag, fallback int) int {
	if flag > 0 {
		return flag
	}
	return fallback
}
