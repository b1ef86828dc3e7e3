package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahmethakanbesel/crypto-price-api/internal/config"
	"github.com/ahmethakanbesel/crypto-price-api/internal/fetch"
	"github.com/ahmethakanbesel/crypto-price-api/internal/quote"
	"github.com/ahmethakanbesel/crypto-price-api/internal/scraper"
	"github.com/ahmethakanbesel/crypto-price-api/internal/scraper/coinmarketcap"
)

// NewRootCommand builds the command tree around cfg.
func NewRootCommand(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "cryptoprice",
		Short:         "cryptoprice scrapes current cryptocurrency prices from listing sites.",
		Long:          quote.Description(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("provider", cfg.DefaultProvider, "Provider to scrape.")

	root.AddCommand(
		newGetCommand(cfg),
		newBatchCommand(cfg),
		newURLCommand(cfg),
		newProvidersCommand(),
		newServeCommand(cfg),
	)
	return root
}

func ExecuteContext(ctx context.Context, cfg config.Config) {
	if err := NewRootCommand(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService(cfg config.Config) *quote.Service {
	fetcher := fetch.New(
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithTimeout(cfg.FetchTimeout),
	)

	registry := scraper.NewRegistry()
	registry.Register(coinmarketcap.New(
		coinmarketcap.WithFetcher(fetcher),
		coinmarketcap.WithBaseURL(cfg.BaseURL),
	))

	return quote.NewService(registry, quote.WithWorkers(cfg.Workers))
}

// queryFromArgs resolves the --provider flag and the optional coin argument.
func queryFromArgs(cmd *cobra.Command, cfg config.Config, args []string) (quote.Query, error) {
	name, _ := cmd.Flags().GetString("provider")
	provider, err := scraper.ParseProvider(name)
	if err != nil {
		return quote.Query{}, err
	}

	coin := cfg.DefaultCoin
	if len(args) > 0 {
		coin = args[0]
	}
	return quote.NewQuery(coin, provider), nil
}
