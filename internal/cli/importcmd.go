package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/importer/openapi"
)

var (
	importOperation string
	importOutput    string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Build questionnaires from external definitions",
}

var importOpenAPICmd = &cobra.Command{
	Use:   "openapi <document>",
	Short: "Derive a questionnaire from an OpenAPI operation",
	Long: `Reads an OpenAPI document and turns the JSON request body of the given
operation into questionnaire items: string properties become text questions
and enum properties become single-choice questions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		items, err := openapi.Import(cmd.Context(), doc, importOperation, openapi.Options{
			Language: cfg.Language,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		out, err := form.MarshalItems(items)
		if err != nil {
			return err
		}
		if importOutput != "" {
			return os.WriteFile(importOutput, append(out, '\n'), 0o644)
		}
		cmd.Println(string(out))
		return nil
	},
}

func init() {
	importOpenAPICmd.Flags().StringVar(&importOperation, "operation", "", "operation ID to import (required)")
	importOpenAPICmd.Flags().StringVarP(&importOutput, "output", "o", "", "output file (stdout if empty)")
	_ = importOpenAPICmd.MarkFlagRequired("operation")
	importCmd.AddCommand(importOpenAPICmd)
}
