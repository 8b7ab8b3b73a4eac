package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Render a bilingual portfolio page from its JSON profile documents",
	Long: `Portfolio fetches the localized profile document (Portuguese or English),
renders every section into the host page and writes the populated page.
It keeps the language and theme preferences between runs and can serve
the site root locally for development.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".portfolio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
