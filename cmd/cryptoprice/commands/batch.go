package commands

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ahmethakanbesel/crypto-price-api/internal/config"
	"github.com/ahmethakanbesel/crypto-price-api/internal/metric"
	"github.com/ahmethakanbesel/crypto-price-api/internal/quote"
)

func newBatchCommand(cfg config.Config) *cobra.Command {
	var (
		fields  string
		all     bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "batch <coin>...",
		Short: "Scrapes several coins concurrently.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := queryFromArgs(cmd, cfg, args[:1])
			if err != nil {
				return err
			}
			sel, err := selectionFromFlags(fields, all)
			if err != nil {
				return err
			}

			queries := make([]quote.Query, len(args))
			for i, coin := range args {
				queries[i] = base.WithCoin(coin)
			}

			items, err := newService(cfg).GetMany(cmd.Context(), queries, sel)
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(items)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			header := table.Row{"Coin"}
			for _, m := range sel.Metrics() {
				header = append(header, m)
			}
			t.AppendHeader(append(header, "Error"))

			for _, item := range items {
				row := table.Row{item.Coin}
				for _, m := range sel.Metrics() {
					v := metric.Unavailable
					if item.Result != nil {
						v = item.Result[m]
					}
					row = append(row, v)
				}
				t.AppendRow(append(row, item.Error))
			}

			t.SetStyle(table.StyleRounded)
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&fields, "fields", metric.Price.String(), "Comma separated metrics to print.")
	cmd.Flags().BoolVar(&all, "all", false, "Print every metric.")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the results as JSON.")
	return cmd
}
