package config_test

import (
	"roomops/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr bool
	}{
		{
			name:   "defaults",
			mutate: func(_ *config.Config) {},
		},
		{
			name: "tax schedule with padded rates",
			mutate: func(cfg *config.Config) {
				cfg.Checkout.Taxes = map[string]string{"CGST": " 6", "SGST": "6.0"}
			},
		},
		{
			name: "round off disabled",
			mutate: func(cfg *config.Config) {
				cfg.Checkout.RoundOffAdjustment = "0"
			},
		},
		{
			name: "round off is not a number",
			mutate: func(cfg *config.Config) {
				cfg.Checkout.RoundOffAdjustment = "one paisa"
			},
			wantErr: true,
		},
		{
			name: "negative tax",
			mutate: func(cfg *config.Config) {
				cfg.Checkout.Taxes = map[string]string{"VAT": "-5"}
			},
			wantErr: true,
		},
		{
			name: "negative cache ttl",
			mutate: func(cfg *config.Config) {
				cfg.Checkout.StatusCacheSeconds = -1
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Checkout.RoundOffAdjustment = "-0.01"
			cfg.Checkout.StatusCacheSeconds = 5
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
