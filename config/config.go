package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DatabaseDriverMongo     = "mongo"
	DatabaseDriverFirestore = "firestore"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Timezone used to resolve "today" for due dates.
	Timezone string

	// Storage
	Database  DatabaseConfig
	Mongo     MongoConfig
	Firestore FirestoreConfig

	// Auth
	JWT JWTConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	LoginAttempts int
	LoginWindow   time.Duration
	AIPerMinute   int
}

type DatabaseConfig struct {
	Driver string
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type FirestoreConfig struct {
	ProjectID       string
	CredentialsPath string
}

type JWTConfig struct {
	SecretKey string
	TTL       time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	// Provider names the provider to use. Empty picks the enabled one with the lowest priority.
	Provider  string           `yaml:"provider"`
	Providers []ProviderConfig `yaml:"providers"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// A .env file is loaded into the environment first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.RateLimit.LoginAttempts = viper.GetInt("rate_limit.login_attempts")
	cfg.RateLimit.LoginWindow = viper.GetDuration("rate_limit.login_window")
	cfg.RateLimit.AIPerMinute = viper.GetInt("rate_limit.ai_per_minute")
	cfg.Timezone = viper.GetString("timezone")

	// Storage
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Mongo.URI = viper.GetString("mongo.uri")
	cfg.Mongo.Database = viper.GetString("mongo.database")
	cfg.Mongo.ConnectTimeout = viper.GetDuration("mongo.connect_timeout")
	if mongoURI := viper.GetString("mongo_uri"); mongoURI != "" {
		cfg.Mongo.URI = mongoURI
	}
	cfg.Firestore.ProjectID = viper.GetString("firestore.project_id")
	cfg.Firestore.CredentialsPath = viper.GetString("firestore.credentials_path")
	if credsPath := viper.GetString("firebase_credentials_path"); credsPath != "" {
		cfg.Firestore.CredentialsPath = credsPath
	}

	// Auth
	cfg.JWT.SecretKey = expandEnvVar(viper.GetString("jwt.secret_key"))
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.SecretKey = secret
	}

	// LLM Provider Abstraction
	cfg.LLM.Provider = viper.GetString("llm.provider")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// A bare GEMINI_API_KEY is enough to run with the default provider.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("gemini_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "gemini",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("gemini_model"),
			})
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "http://localhost:5173")
	viper.SetDefault("rate_limit.login_attempts", 5)
	viper.SetDefault("rate_limit.login_window", "15m")
	viper.SetDefault("rate_limit.ai_per_minute", 20)
	viper.SetDefault("timezone", "UTC")

	viper.SetDefault("database.driver", DatabaseDriverMongo)
	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "taskflow")
	viper.SetDefault("mongo.connect_timeout", "10s")

	viper.SetDefault("jwt.ttl", "24h")
}

func validate(cfg *Config) error {
	switch cfg.Database.Driver {
	case DatabaseDriverMongo:
		if cfg.Mongo.URI == "" {
			return fmt.Errorf("mongo.uri is required")
		}
	case DatabaseDriverFirestore:
		if cfg.Firestore.ProjectID == "" {
			return fmt.Errorf("firestore.project_id is required")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if cfg.JWT.TTL <= 0 {
		return fmt.Errorf("jwt.ttl must be positive")
	}

	return validateLLMConfig(&cfg.LLM)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set GEMINI_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)
	selectedFound := cfg.Provider == ""

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			enabledCount++

			// Check priority is valid
			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			// Check for duplicate priorities
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true

			if provider.APIKey == "" {
				return fmt.Errorf("provider %s: api_key is required", provider.Name)
			}

			if provider.Name == cfg.Provider {
				selectedFound = true
			}
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	if !selectedFound {
		return fmt.Errorf("llm.provider %q is not an enabled provider", cfg.Provider)
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
