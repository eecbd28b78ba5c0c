package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynamicform/pkg/answers"
	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/render"
	"github.com/goliatone/go-dynamicform/pkg/renderers/htmlform"
	"github.com/goliatone/go-dynamicform/pkg/storage"
)

var (
	exportFile     string
	exportOutput   string
	exportRenderer string
	exportAnswers  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the questionnaire with a registered renderer",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		registry := render.NewRegistry()
		html, err := htmlform.New()
		if err != nil {
			return err
		}
		registry.MustRegister(html)

		renderer, err := registry.Get(exportRenderer)
		if err != nil {
			return fmt.Errorf("cli: %w (have %v)", err, registry.List())
		}

		schema := form.New()
		var (
			items   []form.Item
			prefill answers.Set
		)
		if exportFile != "" {
			data, rerr := os.ReadFile(exportFile)
			if rerr != nil {
				return rerr
			}
			if items, err = form.ParseItems(data); err != nil {
				return fmt.Errorf("%s: %w", exportFile, err)
			}
		} else {
			gateway, gerr := newGateway()
			if gerr != nil {
				return gerr
			}
			if items, err = loadItems(ctx, gateway); err != nil {
				return err
			}
			if exportAnswers {
				data, aerr := gateway.Get(ctx, storage.AnswersKey)
				if aerr != nil && !errors.Is(aerr, storage.ErrNotFound) {
					return aerr
				}
				if aerr == nil {
					set, derr := answers.Decode(data, cfg.Language)
					if derr != nil {
						return derr
					}
					prefill = set
				}
			}
		}
		if err := schema.Load(items); err != nil {
			return err
		}

		out, err := renderer.Render(ctx, schema, render.Options{
			Language: cfg.Language,
			Answers:  prefill,
		})
		if err != nil {
			return err
		}

		if exportOutput != "" {
			return os.WriteFile(exportOutput, out, 0o644)
		}
		cmd.Println(string(out))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "questionnaire file to render instead of the stored one")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (stdout if empty)")
	exportCmd.Flags().StringVarP(&exportRenderer, "renderer", "r", htmlform.Name, "renderer to use")
	exportCmd.Flags().BoolVar(&exportAnswers, "answers", false, "prefill with the stored answers")
}
