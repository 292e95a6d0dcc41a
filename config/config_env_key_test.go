package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"maxOpenConns": 10,
			"dsn":          "",
		},
		"session": map[string]any{
			"cookieName":      "session",
			"cleanupSchedule": "@every 1h",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_MAXOPENCONNS", want: "database.maxOpenConns"},
		{envKey: "DATABASE_DSN", want: "database.dsn"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "SESSION_CLEANUPSCHEDULE", want: "session.cleanupSchedule"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
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
