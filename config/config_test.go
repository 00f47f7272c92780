package config

import "testing"

func TestLoadRequiresAPIBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error when API_BASE_URL is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:3000/api")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SESSION_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerPort != 4200 {
		t.Fatalf("expected default port 4200, got %d", cfg.ServerPort)
	}
	if cfg.SessionFile != ".session.json" {
		t.Fatalf("expected default session file, got %q", cfg.SessionFile)
	}
	if cfg.CrestUploadEnabled() {
		t.Fatal("crest uploads must stay disabled without R2 credentials")
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:3000/api")

	for _, port := range []string{"abc", "0", "70000"} {
		t.Setenv("SERVER_PORT", port)
		if _, err := Load(); err == nil {
			t.Fatalf("expected an error for SERVER_PORT=%q", port)
		}
	}
}

func TestCrestUploadEnabled(t *testing.T) {
	cfg := &Config{
		R2AccountID:       "acc",
		R2AccessKeyID:     "key",
		R2SecretAccessKey: "secret",
		R2BucketName:      "crests",
		R2PublicBaseURL:   "https://cdn.example.com",
	}
	if !cfg.CrestUploadEnabled() {
		t.Fatal("expected uploads enabled with full credentials")
	}
	cfg.R2BucketName = ""
	if cfg.CrestUploadEnabled() {
		t.Fatal("expected uploads disabled with a missing field")
	}
}
