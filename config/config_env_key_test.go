package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"marketplace": map[string]any{
			"platformFeeRate": 0.1,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MARKETPLACE_PLATFORMFEERATE", want: "marketplace.platformFeeRate"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestMarketplaceConfig_Defaults(t *testing.T) {
	var cfg *MarketplaceConfig

	if got := cfg.FeeRate(); got != 0.10 {
		t.Fatalf("FeeRate() on nil config = %v, want 0.10", got)
	}
	if got := cfg.SimDelay().Milliseconds(); got != 1500 {
		t.Fatalf("SimDelay() on nil config = %vms, want 1500ms", got)
	}

	cfg = &MarketplaceConfig{PlatformFeeRate: 0.2}
	if got := cfg.FeeRate(); got != 0.2 {
		t.Fatalf("FeeRate() = %v, want 0.2", got)
	}
}
