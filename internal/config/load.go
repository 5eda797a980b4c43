package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in the working directory.
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".autocase")
	}

	viper.SetEnvPrefix("AUTOCASE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Set defaults
	viper.SetDefault("project", "default")
	viper.SetDefault("db.driver", "sqlite")
	viper.SetDefault("db.path", ".autocase.db")
	viper.SetDefault("db.dsn", "")
	viper.SetDefault("history.keep", 3)
	viper.SetDefault("metrics_port", 0)
	viper.SetDefault("verbose", false)

	// Notification defaults
	slackEnabled := os.Getenv("SLACK_BOT_USER_TOKEN") != ""
	viper.SetDefault("notifications.slack.enabled", slackEnabled)
	viper.SetDefault("notifications.slack.channel", "#qa-automation")
	viper.SetDefault("notifications.slack.events.on_import", true)
	viper.SetDefault("notifications.slack.events.on_generate", true)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
