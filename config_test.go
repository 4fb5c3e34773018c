package main

import "testing"

func TestLoadConfigRequiresToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	if _, err := loadConfig(); err == nil {
		t.Fatalf("loadConfig accepted an empty token")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("APP_ID", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("STORE_FILE", "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.StoreFile != DefaultStoreFile {
		t.Fatalf("StoreFile = %q, want default", cfg.StoreFile)
	}
}

func TestSanitizeLogLevel(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"valid", "DEBUG", "DEBUG"},
		{"invalid", "LOUD", "INFO"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{BotToken: "x", LogLevel: tc.in}
			cfg.sanitize()
			if cfg.LogLevel != tc.want {
				t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, tc.want)
			}
		})
	}
}

func TestMainLocationLoads(t *testing.T) {
	loc := mainLocation()
	if loc == nil {
		t.Fatalf("mainLocation returned nil")
	}
}
