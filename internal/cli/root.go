// Package cli wires the dynamicform commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynamicform/internal/config"
)

var (
	configPath string
	langFlag   string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dynamicform",
	Short: "Work with localized dynamic questionnaires",
	Long: `dynamicform edits, validates, fills and persists JSON questionnaires.

Questionnaires are arrays of items (titles, paragraphs, text questions and
single-choice questions) with per-language strings. Answers are stored as a
key-value document next to the questionnaire on a bearer-authenticated
endpoint.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if langFlag != "" {
			cfg.Language = langFlag
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "dynamicform.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&langFlag, "language", "", "active language tag (overrides config)")

	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
}
