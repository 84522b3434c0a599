package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"nptest/adapters/excel"
	"nptest/app"
	"nptest/domain/hypothesis"
	"nptest/internal/report"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "np-cli",
		Short: "Neyman-Pearson rejection region analysis for two discrete hypotheses",
	}

	rootCmd.AddCommand(
		newTableCmd(),
		newSelectCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// pairFlags are shared by every subcommand: either explicit pmfs or
// binomial parameters.
type pairFlags struct {
	null   string
	alt    string
	trials int
	p0     float64
	p1     float64
}

func (f *pairFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.null, "null", "", "Comma-separated null pmf, e.g. .001,.015,.088,.264,.396,.237")
	cmd.Flags().StringVar(&f.alt, "alt", "", "Comma-separated alternative pmf (shorter lists are zero-padded)")
	cmd.Flags().IntVar(&f.trials, "trials", 0, "Binomial trial count (alternative to --null/--alt)")
	cmd.Flags().Float64Var(&f.p0, "p0", 0, "Binomial success probability under the null")
	cmd.Flags().Float64Var(&f.p1, "p1", 0, "Binomial success probability under the alternative")
}

func (f *pairFlags) pair() (hypothesis.DistributionPair, error) {
	if f.null != "" {
		null, err := parsePMF(f.null)
		if err != nil {
			return hypothesis.DistributionPair{}, fmt.Errorf("invalid --null: %w", err)
		}
		alt, err := parsePMF(f.alt)
		if err != nil {
			return hypothesis.DistributionPair{}, fmt.Errorf("invalid --alt: %w", err)
		}
		return hypothesis.NewDistributionPair(null, alt)
	}
	if f.trials > 0 {
		return hypothesis.NewBinomialPair(f.trials, f.p0, f.p1)
	}
	return hypothesis.DistributionPair{}, fmt.Errorf("either --null/--alt or --trials/--p0/--p1 is required")
}

func newTableCmd() *cobra.Command {
	var flags pairFlags

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print size, power, dominance and LRT flags for every rejection region",
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := flags.pair()
			if err != nil {
				return err
			}

			result, err := app.NewAnalysisService(0).Analyze(cmd.Context(), pair)
			if err != nil {
				return err
			}

			fmt.Println("region, size, power, dominated?, LRT?")
			for _, row := range result.Rows {
				fmt.Printf("%s, %g, %g, %t, %t\n",
					row.Region, row.Stats.Size, row.Stats.Power, row.Dominated, row.LRT)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newSelectCmd() *cobra.Command {
	var flags pairFlags
	var alpha float64

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Pick the most powerful LRT region with size within the budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := flags.pair()
			if err != nil {
				return err
			}

			selection, err := app.NewAnalysisService(0).SelectRegion(cmd.Context(), pair, alpha)
			if err != nil {
				return err
			}

			fmt.Printf("region %s: size %g, power %g (budget %g)\n",
				selection.Region, selection.Stats.Size, selection.Stats.Power, alpha)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "Maximum acceptable size")
	return cmd
}

func newExportCmd() *cobra.Command {
	var flags pairFlags
	var out string
	var markdown bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the region table to xlsx/csv, or print a markdown report",
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := flags.pair()
			if err != nil {
				return err
			}

			result, err := app.NewAnalysisService(0).Analyze(cmd.Context(), pair)
			if err != nil {
				return err
			}

			if markdown {
				fmt.Print(report.BuildMarkdown(result, nil))
				return nil
			}

			if err := excel.NewTableWriter().WriteTable(out, result.Rows); err != nil {
				return err
			}
			fmt.Printf("wrote %d rows to %s\n", len(result.Rows), out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&out, "out", "regions.xlsx", "Output path (.xlsx or .csv)")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print a markdown report instead of writing a file")
	return cmd
}

func parsePMF(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	pmf := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad probability %q: %w", part, err)
		}
		pmf = append(pmf, v)
	}
	return pmf, nil
}
