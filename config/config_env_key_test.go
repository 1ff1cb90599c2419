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
		"jwt": map[string]any{
			"accessTtl":       "15m",
			"rotationEnabled": true,
		},
		"apple": map[string]any{
			"servicesId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "JWT_ACCESSTTL", want: "jwt.accessTtl"},
		{envKey: "JWT_ROTATIONENABLED", want: "jwt.rotationEnabled"},
		{envKey: "APPLE_SERVICESID", want: "apple.servicesId"},
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

func TestApplyAuthDefaults(t *testing.T) {
	cfg := &Config{}

	applyAuthDefaults(cfg)

	if cfg.JWT.AccessTTL != defaultAccessTTL {
		t.Fatalf("AccessTTL = %v, want %v", cfg.JWT.AccessTTL, defaultAccessTTL)
	}
	if cfg.JWT.RefreshTTL != defaultRefreshTTL {
		t.Fatalf("RefreshTTL = %v, want %v", cfg.JWT.RefreshTTL, defaultRefreshTTL)
	}
	if cfg.JWT.Issuer != defaultIssuer {
		t.Fatalf("Issuer = %q, want %q", cfg.JWT.Issuer, defaultIssuer)
	}
	if cfg.Otp.MaxAttempts != defaultOtpMaxAttempts {
		t.Fatalf("MaxAttempts = %d, want %d", cfg.Otp.MaxAttempts, defaultOtpMaxAttempts)
	}
	if !cfg.Cookie.Secure {
		t.Fatal("Cookie.Secure should default to true")
	}
}

func TestApplyAuthDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.JWT = &JWTConfig{Issuer: "custom-issuer"}
	cfg.Cookie = &CookieConfig{Secure: false}

	applyAuthDefaults(cfg)

	if cfg.JWT.Issuer != "custom-issuer" {
		t.Fatalf("Issuer = %q, want custom-issuer", cfg.JWT.Issuer)
	}
	if cfg.Cookie.Secure {
		t.Fatal("explicit Cookie.Secure=false must survive")
	}
}
