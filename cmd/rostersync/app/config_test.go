package app

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Verify defaults are set
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.TempPassword == "" {
		t.Error("TempPassword not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies DW_-prefixed environment
// variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("DW_DIRECTORY_URL", "https://directory.test.example")
	t.Setenv("DW_USER_POOL_ID", "pool-test-1")
	t.Setenv("DW_REGISTRY_API_KEY", "da2-testkey")
	t.Setenv("DW_TEMP_PASSWORD", "Changeme#1")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.DirectoryURL != "https://directory.test.example" {
		t.Errorf("DirectoryURL = %s, want https://directory.test.example", config.DirectoryURL)
	}
	if config.PoolID != "pool-test-1" {
		t.Errorf("PoolID = %s, want pool-test-1", config.PoolID)
	}
	if config.RegistryAPIKey != "da2-testkey" {
		t.Errorf("RegistryAPIKey = %s, want da2-testkey", config.RegistryAPIKey)
	}
	if config.TempPassword != "Changeme#1" {
		t.Errorf("TempPassword = %s, want Changeme#1", config.TempPassword)
	}
}

// TestConfig_MetaDefaults verifies that unset endpoints fall back to
// the backend metadata document while explicit values win.
func TestConfig_MetaDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backend-meta.yaml")
	doc := `auth:
  officers:
    output:
      UserPoolId: pool-from-meta
api:
  admin:
    output:
      AdminAPIEndpointOutput: https://admin.meta.example
  roster:
    output:
      GraphQLAPIEndpointOutput: https://graphql.meta.example/graphql
      GraphQLAPIKeyOutput: da2-meta
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	config := &Config{
		MetaPath: path,
		PoolID:   "pool-explicit",
	}
	config.applyMetaDefaults()

	if config.PoolID != "pool-explicit" {
		t.Errorf("explicit PoolID overridden, got %s", config.PoolID)
	}
	if config.DirectoryURL != "https://admin.meta.example" {
		t.Errorf("DirectoryURL = %s, want meta value", config.DirectoryURL)
	}
	if config.RegistryURL != "https://graphql.meta.example/graphql" {
		t.Errorf("RegistryURL = %s, want meta value", config.RegistryURL)
	}
	if config.RegistryAPIKey != "da2-meta" {
		t.Errorf("RegistryAPIKey = %s, want meta value", config.RegistryAPIKey)
	}
}

// TestConfig_UpdateFromFlags verifies flag precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "")
	if !config.Verbose || config.Quiet || !config.NoColor {
		t.Error("boolean flags not applied")
	}
	if config.LogLevel != "info" {
		t.Errorf("empty --log-level clobbered LogLevel, got %s", config.LogLevel)
	}

	config.UpdateFromFlags(false, false, false, "error")
	if config.LogLevel != "error" {
		t.Errorf("LogLevel = %s, want error", config.LogLevel)
	}
}
