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
		"push": map[string]any{
			"vapidPublicKey":     "",
			"maxConcurrentSends": 8,
		},
		"sweeper": map[string]any{
			"retentionHorizon": "24h",
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
		{envKey: "PUSH_VAPIDPUBLICKEY", want: "push.vapidPublicKey"},
		{envKey: "PUSH_MAXCONCURRENTSENDS", want: "push.maxConcurrentSends"},
		{envKey: "SWEEPER_RETENTIONHORIZON", want: "sweeper.retentionHorizon"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("bcrypt cost = %d, want %d", cfg.Auth.BcryptCost, defaultBcryptCost)
	}
	if cfg.Device.DefaultTimezone != defaultTimezone {
		t.Fatalf("default timezone = %q, want %q", cfg.Device.DefaultTimezone, defaultTimezone)
	}
	if cfg.Push.Icon != "/icon-192.png" || cfg.Push.Badge != "/badge-72.png" {
		t.Fatalf("unexpected push assets %q %q", cfg.Push.Icon, cfg.Push.Badge)
	}
	if cfg.Sweeper.RetentionHorizon != defaultRetentionHorizon {
		t.Fatalf("retention horizon = %s, want %s", cfg.Sweeper.RetentionHorizon, defaultRetentionHorizon)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Push:    &PushConfig{MaxConcurrentSends: 2, Icon: "/custom.png"},
		Sweeper: &SweeperConfig{Schedule: "0 */5 * * * *"},
	}
	applyDefaults(cfg)

	if cfg.Push.MaxConcurrentSends != 2 || cfg.Push.Icon != "/custom.png" {
		t.Fatalf("push overrides lost: %+v", cfg.Push)
	}
	if cfg.Sweeper.Schedule != "0 */5 * * * *" {
		t.Fatalf("sweeper schedule = %q", cfg.Sweeper.Schedule)
	}
}
