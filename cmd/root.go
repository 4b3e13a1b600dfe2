package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"portfolio/config"
	"portfolio/constants"
	"portfolio/database"
)

var cfgFile string
var appConfig *config.Config
var log *logrus.Logger

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio website with a content admin",
	Long: `portfolio serves a personal portfolio site: projects, skills, technologies,
certifications, a blog and a contact form, plus the admin screens and JSON API
used to manage them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	appConfig = cfg
	log = logger
	log.WithField("app", constants.APP_NAME).Debug("configuration loaded")
	return nil
}

// openStore connects to the configured database and brings the schema up to
// date.
func openStore() (*database.Store, error) {
	store, err := database.Open(appConfig.Database.Driver, appConfig.Database.DSN, appConfig.Debug)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(); err != nil {
		store.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return store, nil
}
