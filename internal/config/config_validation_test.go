package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{SessionToken: "token"},
		Adapter: ClientAdapter{
			BaseURL:        "https://api.example.com",
			RequestTimeout: 15 * time.Second,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "bidpilot.db"}},
	}
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(cfg *ClientConfig) {},
		},
		{
			name:    "empty DSN",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory DSN rejected",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing base URL",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.BaseURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
