// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the texclean CLI, which converts
// LaTeX sources into clean Markdown and keeps a catalog of the results.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the texclean CLI.
var rootCmd = &cobra.Command{
	Use:   "texclean",
	Short: "Convert LaTeX documents into clean Markdown",
	Long: `texclean turns LaTeX sources into Markdown-like text suited to reading
and to language-model ingestion. It keeps titles, authors, headings, lists,
figure and table captions, tables and display math, and drops layout noise.

Inputs can be .tex files, directories of them, http(s) URLs, or "-" for
standard input. Converted documents can be recorded in a local catalog for
search and export, and previewed as HTML.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./texclean.yaml or ~/.config/texclean/texclean.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "diagnostic log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "diagnostic log format: text or json")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	setDefaults()
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("texclean")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "texclean"))
		}
	}

	viper.SetEnvPrefix("TEXCLEAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
