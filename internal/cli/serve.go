package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynamicform/internal/devserver"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local key-value endpoint for development",
	Long: `Starts an in-memory key-value server that speaks the same protocol as
the production endpoint. Data is lost when the process exits. When the
config carries a token the server requires it as a bearer token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []devserver.Option{}
		if cfg.Token != "" {
			opts = append(opts, devserver.WithToken(cfg.Token))
		}
		srv := devserver.New(opts...)
		cmd.Printf("listening on %s\n", serveAddr)
		return srv.ListenAndServe(serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8787", "listen address")
}
