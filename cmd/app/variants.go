package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lbe/internal/services"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the available content variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		lib, err := services.LoadLibrary(cfg.ContentDir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		name := color.New(color.FgHiWhite, color.Bold)
		active := color.New(color.FgHiGreen)
		dim := color.New(color.FgHiBlack)

		for _, v := range lib.Names() {
			page, err := lib.Get(v)
			if err != nil {
				return err
			}
			labels := make([]string, 0, len(page.Nav))
			for _, item := range page.Nav {
				labels = append(labels, item.Label)
			}

			name.Fprintf(out, "%-10s", v)
			if v == cfg.Variant {
				active.Fprint(out, " (serving)")
			}
			form := "no form"
			if page.Contact.Form {
				form = "form"
			}
			dim.Fprintf(out, "  %s · %d faq · %s\n", strings.Join(labels, " / "), len(page.FAQ.Entries), form)
		}
		return nil
	},
}
