package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynamicform/pkg/form"
)

var questionsWrite bool

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Inspect and maintain questionnaire files",
}

var questionsFormatCmd = &cobra.Command{
	Use:   "format <file>",
	Short: "Pretty-print a questionnaire file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		items, err := form.ParseItems(data)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		out, err := form.MarshalItems(items)
		if err != nil {
			return err
		}
		if questionsWrite {
			return os.WriteFile(args[0], append(out, '\n'), 0o644)
		}
		cmd.Println(string(out))
		return nil
	},
}

var questionsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a questionnaire file for structural problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		items, err := form.ParseItems(data)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		schema := form.New()
		if err := schema.Load(items); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		cmd.Printf("%s: %d items OK\n", args[0], schema.Len())
		return nil
	},
}

func init() {
	questionsFormatCmd.Flags().BoolVarP(&questionsWrite, "write", "w", false, "rewrite the file in place")
	questionsCmd.AddCommand(questionsFormatCmd)
	questionsCmd.AddCommand(questionsValidateCmd)
}
