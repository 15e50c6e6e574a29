// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gdc-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gdc-engine/internal/gdc"
	"github.com/pdiddy/gdc-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "gdc-engine/0.1"
)

// rootCmd is the base command for the gdc-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "gdc-engine",
	Short: "Query and download open-access data from the GDC API",
	Long: `gdc-engine is a client for the NCI Genomic Data Commons REST API. It lists
projects and files, downloads open-access data files with progress reporting,
labels file UUIDs by a metadata field, and flattens the case collection into
a tab-separated table.

Each operation is a subcommand: projects, files, download, label, and cases.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gdc-engine.yaml or ~/.config/gdc-engine/config.yaml)")
	rootCmd.PersistentFlags().String("base-url", "", "GDC API root (default "+gdc.DefaultBaseURL+")")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gdc-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gdc-engine"))
		}
	}

	viper.SetEnvPrefix("GDC_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// clientConfig resolves client settings from flags, then config file, then
// defaults.
func clientConfig(cmd *cobra.Command) types.ClientConfig {
	baseURL, _ := cmd.Flags().GetString("base-url")
	if baseURL == "" {
		baseURL = viper.GetString("base_url")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("http.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		BaseURL: baseURL,
	}
}

func newClient(cmd *cobra.Command) *gdc.Client {
	return gdc.New(clientConfig(cmd))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
