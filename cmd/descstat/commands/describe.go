package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"descstat/internal/dataset"
	"descstat/internal/stats"
	"descstat/internal/visuals"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	describeJSON      bool
	describeChart     bool
	describeQuantiles string
)

// FileReport pairs a source path with its computed statistics.
type FileReport struct {
	File      string             `json:"file"`
	Summary   stats.Summary      `json:"summary"`
	Quantiles map[string]float64 `json:"quantiles,omitempty"`
}

var describeCmd = &cobra.Command{
	Use:   "describe [files...]",
	Short: "Compute descriptive statistics for dataset files (or stdin)",
	Long: `Reads newline-separated decimal numbers from the given files (or from
stdin when no file is named) and prints n, min, max, mean, median,
quartiles, bias-corrected sample variance and standard deviation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		probs, err := parseProbabilities(describeQuantiles)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			values, err := dataset.Read(os.Stdin)
			if err != nil {
				return fmt.Errorf("stdin: %w", err)
			}
			report, err := buildReport("stdin", values, probs)
			if err != nil {
				return err
			}
			return printReports(cmd, []FileReport{report}, [][]float64{values})
		}

		reports := make([]FileReport, len(args))
		samples := make([][]float64, len(args))

		var g errgroup.Group
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				values, err := dataset.Load(path)
				if err != nil {
					return err
				}
				report, err := buildReport(path, values, probs)
				if err != nil {
					return err
				}
				reports[i] = report
				samples[i] = values
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		return printReports(cmd, reports, samples)
	},
}

func buildReport(name string, values []float64, probs []float64) (FileReport, error) {
	summary, err := stats.Describe(values, nil)
	if err != nil {
		return FileReport{}, fmt.Errorf("%s: %w", name, err)
	}

	report := FileReport{File: name, Summary: summary}
	if len(probs) > 0 {
		sorted := slices.Clone(values)
		slices.Sort(sorted)
		report.Quantiles = make(map[string]float64, len(probs))
		for _, p := range probs {
			q, err := stats.Quantile(p, sorted, nil)
			if err != nil {
				return FileReport{}, fmt.Errorf("%s: %w", name, err)
			}
			report.Quantiles[fmt.Sprintf("p%g", p*100)] = q
		}
	}
	return report, nil
}

func printReports(cmd *cobra.Command, reports []FileReport, samples [][]float64) error {
	w := cmd.OutOrStdout()

	if describeJSON {
		out, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	for i, r := range reports {
		s := r.Summary
		fmt.Fprintf(w, "%s: n=%d\n", r.File, s.N)
		fmt.Fprintf(w, "  min=%g max=%g\n", s.Min, s.Max)
		fmt.Fprintf(w, "  mean=%g median=%g q1=%g q3=%g\n", s.Mean, s.Median, s.Q1, s.Q3)
		fmt.Fprintf(w, "  variance=%g std_dev=%g\n", s.Variance, s.StdDev)
		if len(r.Quantiles) > 0 {
			keys := make([]string, 0, len(r.Quantiles))
			for k := range r.Quantiles {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				fmt.Fprintf(w, "  %s=%g\n", k, r.Quantiles[k])
			}
		}
		if describeChart {
			fmt.Fprintln(w, visuals.GenerateHistogram(samples[i], cfg.HistogramBins))
		}
	}
	return nil
}

// parseProbabilities splits a comma-separated list like "0.5,0.9,0.99".
func parseProbabilities(flag string) ([]float64, error) {
	if flag == "" {
		return nil, nil
	}
	parts := strings.Split(flag, ",")
	probs := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid probability %q", part)
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("probability %v is outside [0, 1]", p)
		}
		probs = append(probs, p)
	}
	return probs, nil
}

func init() {
	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "print results as JSON")
	describeCmd.Flags().BoolVar(&describeChart, "chart", false, "print a mermaid histogram per file")
	describeCmd.Flags().StringVar(&describeQuantiles, "quantiles", "", "extra quantiles to report, e.g. 0.9,0.99")
	rootCmd.AddCommand(describeCmd)
}
