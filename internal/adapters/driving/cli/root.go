// Package cli implements the command-line interface.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bitgeese/boludo-translator/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "boludo",
	Short: "Translate English or Spanish into authentic Argentinian Spanish",
	Long: `boludo is a retrieval-augmented translator. It grounds an LLM in a
curated phrasebook of Argentinian slang plus scraped language articles,
then renders your input the way a porteño would actually say it.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.boludo/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	// A .env file is optional; only used to carry OPENAI_API_KEY.
	_ = godotenv.Load()
	return rootCmd.Execute()
}
