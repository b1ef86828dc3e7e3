package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ahmethakanbesel/crypto-price-api/internal/config"
	"github.com/ahmethakanbesel/crypto-price-api/internal/scraper"
)

func newURLCommand(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "url [coin]",
		Short: "Prints the page address scraped for a coin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := queryFromArgs(cmd, cfg, args)
			if err != nil {
				return err
			}
			u, err := newService(cfg).URL(q)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}
}

func newProvidersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "Prints the supported providers.",
		Run: func(cmd *cobra.Command, args []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Provider"})

			for _, p := range scraper.Providers() {
				t.AppendRow(table.Row{p})
			}

			t.SetStyle(table.StyleRounded)
			t.Render()
		},
	}
}
