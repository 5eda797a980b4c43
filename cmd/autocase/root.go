package main

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autocase/internal/config"
	"autocase/internal/metrics"
)

var exit = os.Exit
var cfgFile string

// Wrapper for survey functions to allow mocking in tests
var askOneFunc = survey.AskOne

// appMetrics is shared by every command in the process.
var appMetrics = metrics.NewMetrics()

var rootCmd = &cobra.Command{
	Use:   "autocase",
	Short: "Test-case automation-worthiness scoring from versioned state diagrams",
	Long: `autocase scores test cases for automation worthiness, validates and diffs
versioned state-diagram snapshots, and generates draft test cases from the
changes between diagram versions.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'autocase --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.autocase.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("project", "", "Project name (overrides config)")
	rootCmd.PersistentFlags().String("db", "", "Database path or DSN (overrides config)")
	rootCmd.PersistentFlags().String("driver", "", "Database driver: sqlite or postgres")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("project", rootCmd.PersistentFlags().Lookup("project"))
	viper.BindPFlag("db.path", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("db.driver", rootCmd.PersistentFlags().Lookup("driver"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	// Start metrics server when a port is configured
	if port := viper.GetInt("metrics_port"); port > 0 {
		go func() {
			if err := appMetrics.Serve(port); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to start metrics server: %v\n", err)
			}
		}()
	}
}
