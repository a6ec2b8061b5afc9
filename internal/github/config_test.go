package github

import (
	"os"
	"testing"
	"time"
)

func clearGitHubEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GITHUB_TOKEN", "GITHUB_API_URL", "GITHUB_TIMEOUT", "GITHUB_USER_AGENT"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearGitHubEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.BaseURL != "https://api.github.com" {
		t.Errorf("BaseURL = %q, want https://api.github.com", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want default", cfg.UserAgent)
	}
	if cfg.HasToken() {
		t.Error("HasToken should be false without GITHUB_TOKEN")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearGitHubEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("GITHUB_API_URL", "https://github.example.com/api/v3")
	t.Setenv("GITHUB_TIMEOUT", "5s")
	t.Setenv("GITHUB_USER_AGENT", "custom/1.0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Token != "ghp_test" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.BaseURL != "https://github.example.com/api/v3" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.UserAgent != "custom/1.0" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
	if !cfg.HasToken() {
		t.Error("HasToken should be true")
	}
}

func TestLoadConfigInvalidTimeout(t *testing.T) {
	clearGitHubEnv(t)
	t.Setenv("GITHUB_TIMEOUT", "not-a-duration")

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for invalid GITHUB_TIMEOUT")
	}
}
