package commands

import (
	"github.com/spf13/cobra"
)

// The fixed nine-value sample used throughout the documentation.
var demoSample = []float64{32.32, 56.98, 21.52, 44.32, 55.63, 13.75, 43.47, 43.34, 12.34}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Describe the built-in example sample",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := buildReport("demo", demoSample, nil)
		if err != nil {
			return err
		}
		return printReports(cmd, []FileReport{report}, [][]float64{demoSample})
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
