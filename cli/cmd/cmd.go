package cmd

import (
	"context"
	"path/filepath"

	"github.com/go-sql-driver/mysql"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arshkumarsingh/rorex"
	"github.com/arshkumarsingh/rorex/fetchers"
	"github.com/arshkumarsingh/rorex/journal"
)

var (
	rootCmd = &cobra.Command{
		Use:     "rorex",
		Short:   "Desktop forex rate fetcher",
		Version: "v1.0.0",
	}
	debug      bool
	configFile string
)

type (
	Config struct {
		Ctx      context.Context
		Fetcher  rorex.Fetcher
		Provider rorex.Provider
		Journals []rorex.Journal
		Logger   hclog.Logger
		debug    *bool
	}
)

func Execute(config *Config) error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.yml", "Path to config file")
	cobra.OnInitialize()

	absolutePath, _ := filepath.Abs(configFile)

	viper.SetConfigFile(absolutePath)
	viper.SetEnvPrefix("ROREX")
	viper.AutomaticEnv()

	// the config file only supplies defaults; running without one is fine
	_ = viper.ReadInConfig()

	config.debug = &debug

	if config.Logger == nil {
		config.Logger = hclog.New(&hclog.LoggerOptions{Name: "rorex"})
	}

	if config.Ctx == nil {
		config.Ctx = context.Background()
	}

	if config.Fetcher == nil {
		config.Provider = rorex.ExchangeRateAPIProvider
		config.Fetcher = fetchers.NewFetcher(config.Provider, fetchers.ExchangeRateAPIConfig{
			URL: viper.GetString("fetchers.exchangerateapi.url"),
		})
	}

	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		if debug {
			config.Logger.SetLevel(hclog.Debug)
		}
	}

	guiCmd := gui(config)
	rootCmd.AddCommand(guiCmd, fetch(config))
	// bare invocation opens the window, matching desktop expectations
	rootCmd.RunE = guiCmd.RunE

	return rootCmd.Execute()
}

func getMysqlDSN(config map[string]string) string {
	driverConfig := mysql.NewConfig()
	driverConfig.User = config["user"]
	driverConfig.Passwd = config["password"]
	driverConfig.Addr = config["addr"]
	driverConfig.Net = "tcp"
	driverConfig.DBName = config["db"]
	driverConfig.ParseTime = true

	return driverConfig.FormatDSN()
}

func journalsFromConfig(ctx context.Context, logger hclog.Logger) ([]rorex.Journal, error) {
	providers, err := journal.ConvertToProvidersFromStringSlice(viper.GetStringSlice("journals"))

	if err != nil {
		return nil, err
	}

	base := journal.BaseConfig{
		Ctx:     ctx,
		Migrate: viper.GetBool("migrate"),
	}

	journals := make([]rorex.Journal, 0, len(providers))

	for _, provider := range providers {
		var config interface{}

		switch provider {
		case journal.MySQL:
			mysqlConfig := viper.GetStringMapString("databases.mysql")
			config = journal.MySQLConfig{
				BaseConfig:       base,
				ConnectionString: getMysqlDSN(mysqlConfig),
				TableName:        mysqlConfig["table"],
			}
		case journal.MongoDB:
			mongoConfig := viper.GetStringMapString("databases.mongodb")
			config = journal.MongoDBConfig{
				BaseConfig:       base,
				ConnectionString: mongoConfig["uri"],
				Database:         mongoConfig["db"],
				Collection:       mongoConfig["collection"],
			}
		}

		j, err := journal.New(provider, config)

		if err != nil {
			return nil, err
		}

		logger.Debug("journal configured", "provider", j.ProviderName())
		journals = append(journals, j)
	}

	return journals, nil
}
