package main

import (
	"github.com/spf13/cobra"

	"lbe/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "lbe",
	Short: "Landing page for The LBE",
	Long: `Serves the LBE landing page: one scrolling page with a theme toggle,
mobile navigation, an FAQ accordion and contact details. The page also
renders to a static HTML file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "lbe.yml", "config file path")
	rootCmd.AddCommand(serveCmd, renderCmd, variantsCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
