package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dutywire/rostersync/internal/meta"
)

// DefaultTempPassword is the platform temporary-credential policy value
// used when no override is configured.
const DefaultTempPassword = "DutyWire#123"

// Config holds the application configuration loaded from flags,
// environment variables, .env files, the optional config file, and the
// project's backend metadata document — in that order of precedence.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Directory (identity pool) configuration
	DirectoryURL   string
	DirectoryToken string
	PoolID         string

	// Registry (assignment store) configuration
	RegistryURL    string
	RegistryAPIKey string

	// TempPassword is the temporary credential for created accounts.
	TempPassword string

	// MetaPath overrides backend metadata discovery.
	MetaPath string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of
// precedence:
//  1. Command-line flags (applied later by cobra via UpdateFromFlags)
//  2. DW_* environment variables
//  3. .env files
//  4. Config file (~/.rostersync.yaml)
//  5. Backend metadata document
//  6. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("DW")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".rostersync")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no_color"),

		ConfigFile: viper.ConfigFileUsed(),

		DirectoryURL:   viper.GetString("directory_url"),
		DirectoryToken: viper.GetString("directory_token"),
		PoolID:         viper.GetString("user_pool_id"),
		RegistryURL:    viper.GetString("registry_url"),
		RegistryAPIKey: viper.GetString("registry_api_key"),
		TempPassword:   viper.GetString("temp_password"),
		MetaPath:       viper.GetString("meta_path"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	config.applyMetaDefaults()

	if config.TempPassword == "" {
		config.TempPassword = DefaultTempPassword
	}

	return config, nil
}

// applyMetaDefaults fills unset endpoint values from the project's
// backend metadata document, mirroring the deploy tooling's outputs.
func (c *Config) applyMetaDefaults() {
	var defaults meta.Defaults
	if c.MetaPath != "" {
		loaded, err := meta.Load(c.MetaPath)
		if err != nil {
			// An explicit path that cannot be read is worth a warning,
			// but discovery stays best-effort like the defaults search.
			defaults = meta.Defaults{}
		} else {
			defaults = loaded
		}
	} else {
		defaults = meta.Resolve(".")
	}

	if c.PoolID == "" {
		c.PoolID = defaults.PoolID
	}
	if c.DirectoryURL == "" {
		c.DirectoryURL = defaults.DirectoryURL
	}
	if c.RegistryURL == "" {
		c.RegistryURL = defaults.RegistryURL
	}
	if c.RegistryAPIKey == "" {
		c.RegistryAPIKey = defaults.RegistryAPIKey
	}
}

// UpdateFromFlags updates config with values parsed from command-line
// flags. Flags take precedence over every other source.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads .env files in order of precedence.
func loadEnvFiles() {
	// .env.local wins over .env; both lose to real environment
	// variables because godotenv never overwrites existing keys.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
}

// getEnvOrDefault returns an environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
