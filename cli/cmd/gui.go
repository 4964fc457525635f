package cmd

import (
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arshkumarsingh/rorex/runner"
	"github.com/arshkumarsingh/rorex/ui"
)

func gui(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the forex rate window",
		RunE: func(cmd *cobra.Command, args []string) error {
			journals := config.Journals

			if journals == nil {
				var err error

				if journals, err = journalsFromConfig(config.Ctx, config.Logger); err != nil {
					return err
				}
			}

			view := ui.New(app.New(), ui.Config{
				Runner:   runner.New(config.Fetcher),
				Provider: config.Provider,
				Journals: journals,
				Logger:   config.Logger,
				Base:     viper.GetString("defaults.base"),
				Target:   viper.GetString("defaults.target"),
			})

			view.Run()

			return nil
		},
	}
}
