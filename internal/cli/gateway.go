package cli

import (
	"fmt"

	"github.com/goliatone/go-dynamicform/pkg/auth"
	"github.com/goliatone/go-dynamicform/pkg/storage"
	"github.com/goliatone/go-dynamicform/pkg/storage/httpkv"
)

// newGateway builds the key-value client from the loaded configuration.
func newGateway() (storage.Gateway, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("cli: no endpoint configured")
	}
	opts := []httpkv.Option{}
	if cfg.Timeout > 0 {
		opts = append(opts, httpkv.WithTimeout(cfg.Timeout))
	}
	return httpkv.New(cfg.Endpoint, auth.NewStatic(cfg.Token), opts...)
}
