package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ahmethakanbesel/crypto-price-api/internal/config"
	"github.com/ahmethakanbesel/crypto-price-api/internal/metric"
)

func newGetCommand(cfg config.Config) *cobra.Command {
	var (
		fields  string
		all     bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "get [coin]",
		Short: "Prints the selected metrics for a coin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := queryFromArgs(cmd, cfg, args)
			if err != nil {
				return err
			}
			sel, err := selectionFromFlags(fields, all)
			if err != nil {
				return err
			}

			res, err := newService(cfg).GetData(cmd.Context(), q, sel)
			if err != nil {
				return err
			}

			if jsonOut {
				b, err := res.JSON()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return err
			}
			renderResult(cmd.OutOrStdout(), q.Coin(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&fields, "fields", metric.Price.String(), "Comma separated metrics to print.")
	cmd.Flags().BoolVar(&all, "all", false, "Print every metric.")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON.")
	return cmd
}

func selectionFromFlags(fields string, all bool) (metric.Selection, error) {
	if all {
		return metric.AllMetrics(), nil
	}
	return metric.ParseSelection(fields)
}

func renderResult(w io.Writer, coin string, res metric.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(strings.ToUpper(coin))
	t.AppendHeader(table.Row{"Metric", "Value"})

	for _, m := range res.Metrics() {
		t.AppendRow(table.Row{m, res[m]})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
