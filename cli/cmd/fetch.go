package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arshkumarsingh/rorex"
)

func fetch(config *Config) *cobra.Command {
	var (
		apiKey  string
		base    string
		target  string
		history bool
	)

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a rate once, print it and exit",
	}

	fetchCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if apiKey == "" {
			apiKey = viper.GetString("api_key")
		}

		if base == "" {
			base = viper.GetString("defaults.base")
		}

		if target == "" {
			target = viper.GetString("defaults.target")
		}

		if base == "" {
			base = "USD"
		}

		if target == "" {
			target = "EUR"
		}

		pair := rorex.Pair{Base: base, Target: target}

		if !rorex.SupportedCurrency(pair.Base) || !rorex.SupportedCurrency(pair.Target) {
			return fmt.Errorf("unsupported currency pair %s", pair)
		}

		if history {
			samples, err := config.Fetcher.FetchHistory(config.Ctx, apiKey, pair)

			if err != nil {
				return err
			}

			for _, sample := range samples {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\n", sample.Date.Format(rorex.DateFormat), sample.Rate)
			}

			return nil
		}

		rate, err := config.Fetcher.FetchRate(config.Ctx, apiKey, pair)

		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %g\n", pair, rate)

		journals := config.Journals

		if journals == nil {
			if journals, err = journalsFromConfig(config.Ctx, config.Logger); err != nil {
				return err
			}
		}

		for _, j := range journals {
			entry, err := j.Record(rorex.Entry{
				Pair:     pair,
				Provider: config.Provider,
				Rate:     rate,
			})

			if err != nil {
				return err
			}

			if config.debug != nil && *config.debug {
				config.Logger.Debug("recorded fetch", "journal", j.ProviderName(), "id", entry.ID)
			}
		}

		return nil
	}

	fetchCmd.Flags().StringVar(&apiKey, "key", "", "exchangerate-api key")
	fetchCmd.Flags().StringVar(&base, "base", "", "Base currency code")
	fetchCmd.Flags().StringVar(&target, "target", "", "Target currency code")
	fetchCmd.Flags().BoolVar(&history, "history", false, "Fetch the 30-day history instead of the latest rate")

	return fetchCmd
}
