package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Validate checks the loaded configuration for values that would only fail
// later, deep inside a command.
func Validate() error {
	driver := viper.GetString("db.driver")
	switch driver {
	case "sqlite", "sqlite3", "postgres", "postgresql", "":
	default:
		return fmt.Errorf("db.driver must be sqlite or postgres, got %q", driver)
	}

	if driver == "postgres" || driver == "postgresql" {
		if viper.GetString("db.dsn") == "" {
			return fmt.Errorf("db.dsn is required when db.driver is postgres")
		}
	}

	if keep := viper.GetInt("history.keep"); keep < 1 {
		return fmt.Errorf("history.keep must be at least 1, got %d", keep)
	}

	if port := viper.GetInt("metrics_port"); port < 0 || port > 65535 {
		return fmt.Errorf("metrics_port must be a valid port, got %d", port)
	}

	return nil
}
