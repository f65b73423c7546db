package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lbe/internal/services"
	"lbe/internal/theme"
	"lbe/internal/ui"
	"lbe/web/templates/pages/landing"
)

var (
	renderVariant string
	renderTheme   string
	renderOut     string
	renderFAQ     int
	renderMenu    bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the page to a static HTML file",
	Long: `Render writes a snapshot of the page for one variant and view state.
The contact form is left out since no server is there to receive it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		variant := renderVariant
		if variant == "" {
			variant = cfg.Variant
		}

		lib, err := services.LoadLibrary(cfg.ContentDir)
		if err != nil {
			return err
		}
		page, err := lib.Get(variant)
		if err != nil {
			return err
		}

		state := ui.Initial()
		if renderTheme != "" {
			t, ok := theme.Parse(renderTheme)
			if !ok {
				return fmt.Errorf("invalid theme %q: must be light or dark", renderTheme)
			}
			state.Theme = t
		}
		if renderMenu {
			state = state.Apply(ui.OpenMenu())
		}
		if renderFAQ >= 0 {
			state = state.Apply(ui.ToggleFAQ(renderFAQ, len(page.FAQ.Entries)))
		}

		if err := landing.WriteFile(renderOut, landing.NewPage(page, state, "")); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (variant %s, theme %s)\n", renderOut, page.Name, state.Theme)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderVariant, "variant", "", "content variant (default from config)")
	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "light or dark (default light)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "index.html", "output file")
	renderCmd.Flags().IntVar(&renderFAQ, "faq", -1, "index of the FAQ entry to expand")
	renderCmd.Flags().BoolVar(&renderMenu, "menu", false, "render with the mobile menu open")
}
