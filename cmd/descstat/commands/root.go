package commands

import (
	"descstat/internal/config"
	"descstat/internal/logging"
	"descstat/internal/mcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "descstat",
	Short: "descstat computes descriptive statistics over numeric datasets",
	Long: `A descriptive-statistics toolkit: mean, median, bias-corrected variance,
standard deviation and empirical quantiles over plain-text number lists,
exposed as a CLI and as an MCP server over stdio.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("descstat starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Str("dataPath", cfg.DataPath).Msg("MCP Server starting Stdio loop")
		server := mcp.NewServer(cfg)
		return server.Serve()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
