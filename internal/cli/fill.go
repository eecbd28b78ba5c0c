package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynamicform/pkg/answers"
	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/renderers/tui"
	"github.com/goliatone/go-dynamicform/pkg/storage"
)

var fillFile string

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Answer the questionnaire interactively and save the answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		gateway, err := newGateway()
		if err != nil {
			return err
		}

		schema := form.New()
		items, err := loadItems(ctx, gateway)
		if err != nil {
			return err
		}
		if err := schema.Load(items); err != nil {
			return err
		}

		store := answers.NewStore(cfg.Language)
		if data, err := gateway.Get(ctx, storage.AnswersKey); err == nil {
			if set, derr := answers.Decode(data, cfg.Language); derr == nil {
				store.Replace(set)
			}
		}

		filler := tui.New(cfg.Language)
		if err := filler.Fill(ctx, schema, store); err != nil {
			if errors.Is(err, tui.ErrInterrupted) {
				cmd.Println("aborted")
				return nil
			}
			return err
		}

		encoded, err := answers.Encode(store.Snapshot())
		if err != nil {
			return err
		}
		if err := gateway.Put(ctx, storage.AnswersKey, encoded); err != nil {
			return err
		}
		cmd.Println("answers saved")
		return nil
	},
}

// loadItems prefers a local file when --file is set, otherwise fetches the
// stored questionnaire and falls back to the built-in one when the endpoint
// has no data yet.
func loadItems(ctx context.Context, gateway storage.Gateway) ([]form.Item, error) {
	if fillFile != "" {
		data, err := os.ReadFile(fillFile)
		if err != nil {
			return nil, err
		}
		return form.ParseItems(data)
	}
	data, err := gateway.Get(ctx, storage.QuestionsKey)
	if errors.Is(err, storage.ErrNotFound) {
		return form.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return form.ParseItems(data)
}

func init() {
	fillCmd.Flags().StringVarP(&fillFile, "file", "f", "", "questionnaire file to fill instead of the stored one")
}
