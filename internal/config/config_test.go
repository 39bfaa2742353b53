package config

import (
	"os"
	"testing"
	"time"
)

// clearEnv unsets every config variable for the duration of the test.
// t.Setenv registers the restore; Unsetenv makes LookupEnv miss.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "FRONTEND_URL", "DB_PATH", "SESSION_TTL_HOURS",
		"GEMINI_API_KEY", "GOOGLE_CLOUD_PROJECT", "GOOGLE_CLOUD_LOCATION",
		"GEMINI_MODEL", "LICENSE_PRODUCT_ID", "LICENSE_VERIFY_URL",
	} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}
}

func TestLoadRequiresCredential(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Error("Expected error when no completion credential is configured")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("Expected default TTL 24h, got %s", cfg.SessionTTL)
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("Unexpected default model %s", cfg.Gemini.Model)
	}
	if cfg.License.Enabled() {
		t.Error("Licensing must be disabled without a product ID")
	}
	if cfg.License.VerifyURL != DefaultVerifyURL {
		t.Errorf("Unexpected verify URL %s", cfg.License.VerifyURL)
	}
	if !cfg.IsDevelopment() {
		t.Error("Empty FRONTEND_URL must count as development")
	}
}

func TestLoadVertexBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_CLOUD_PROJECT", "proj")
	t.Setenv("GOOGLE_CLOUD_LOCATION", "europe-west1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Gemini.UsesVertex() {
		t.Error("Expected Vertex backend with project and location set")
	}
}

func TestInvalidTTLFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("SESSION_TTL_HOURS", "-3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("Expected TTL fallback to 24h, got %s", cfg.SessionTTL)
	}
}
