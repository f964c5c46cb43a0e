package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lbruun/AWS-RDS-IAM-Tokens/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var envFiles string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rds-iam-token",
	Short: "Generate AWS RDS IAM authentication tokens",
	Long: `Generates short-lived authentication tokens to be used as the database
password when connecting to an RDS instance with IAM authentication enabled.

Token generation is a purely local computation (AWS sigv4 presigning),
no network calls are made.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	logging.InitializeLogging(logging.EnvironmentLvl, nil)
	rootCmd.PersistentFlags().StringVar(&envFiles, "dot-env", "", "File paths to .env files comma separated")

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rds-iam-token.yaml)")
}

func loadEnvVarsFromDotEnv() {
	for _, dotEnv := range strings.Split(envFiles, ",") {
		if dotEnv == "" {
			continue
		}
		err := godotenv.Load(dotEnv)
		if err != nil {
			dir, _ := os.Getwd()
			slog.Error("Error loading .env file", "cwd", dir, "filepath", dotEnv)
			os.Exit(1)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".rds-iam-token" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rds-iam-token")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
	loadEnvVarsFromDotEnv()
}
