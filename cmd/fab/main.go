package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fabworks-io/fabric-client/cmd/fab/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fab",
	Short: "Microsoft Fabric CLI",
	Long: `A command-line interface for Microsoft Fabric workspaces.

This CLI lists and manages Fabric items including mounted data factories,
KQL querysets, lakehouses, semantic models, and Power BI reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.fab/config.yml)")
	rootCmd.PersistentFlags().StringP("api", "a", "", "Fabric API endpoint URL")
	rootCmd.PersistentFlags().String("powerbi-api", "", "Power BI API endpoint URL")
	rootCmd.PersistentFlags().StringP("token", "t", "", "authentication token")
	rootCmd.PersistentFlags().String("tenant", "", "AAD tenant id")
	rootCmd.PersistentFlags().String("client-id", "", "AAD client id")
	rootCmd.PersistentFlags().String("client-secret", "", "AAD client secret")
	rootCmd.PersistentFlags().StringP("workspace", "w", "", "default workspace id used when a command omits one")
	rootCmd.PersistentFlags().String("lakehouse", "", "default lakehouse id used when a command omits one")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("powerbi-api", rootCmd.PersistentFlags().Lookup("powerbi-api"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("tenant", rootCmd.PersistentFlags().Lookup("tenant"))
	_ = viper.BindPFlag("client-id", rootCmd.PersistentFlags().Lookup("client-id"))
	_ = viper.BindPFlag("client-secret", rootCmd.PersistentFlags().Lookup("client-secret"))
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("lakehouse", rootCmd.PersistentFlags().Lookup("lakehouse"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewWorkspacesCommand())
	rootCmd.AddCommand(commands.NewItemsCommand())
	rootCmd.AddCommand(commands.NewMountedDataFactoriesCommand())
	rootCmd.AddCommand(commands.NewKQLQuerysetsCommand())
	rootCmd.AddCommand(commands.NewLakehousesCommand())
	rootCmd.AddCommand(commands.NewReportsCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Create config directory if it doesn't exist
		configDir := filepath.Join(home, ".fab")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		}

		// Search config in ~/.fab/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("FAB")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
