package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	providerFlag string
	mockFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "empathic",
	Short: "empathic turns blunt code review comments into constructive feedback.",
	Long: `A CLI for the empathic code reviewer. It takes a code snippet and a list
of harsh review comments and produces a structured Markdown report with a
softened rephrasing, the underlying principle, an improved code example and
learning resources for each comment.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// --mock is a shortcut that wins over any configured provider.
		if mockFlag {
			viper.Set("GENERATOR_PROVIDER", "mock")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&providerFlag, "provider", "p", "", "Generator provider (mock, azure, ollama)")
	rootCmd.PersistentFlags().BoolVar(&mockFlag, "mock", false, "Use the deterministic mock generator (no credentials needed)")

	if err := viper.BindPFlag("GENERATOR_PROVIDER", rootCmd.PersistentFlags().Lookup("provider")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
