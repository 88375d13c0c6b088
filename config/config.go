package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends
const (
	BackendNeo4j    = "neo4j"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment `yaml:"-"`

	// Server configuration
	ServerHost     string `yaml:"server_host"`
	ServerPort     string `yaml:"server_port"`
	LogLevel       string `yaml:"log_level"`
	SwaggerEnabled bool   `yaml:"swagger_enabled"`

	// Record store configuration
	StoreBackend            string        `yaml:"store_backend"`
	QueryTimeout            time.Duration `yaml:"query_timeout"`
	BreakerFailureThreshold float64       `yaml:"breaker_failure_threshold"`
	BreakerTimeout          time.Duration `yaml:"breaker_timeout"`

	// Neo4j configuration
	Neo4jURI      string `yaml:"neo4j_uri"`
	Neo4jUser     string `yaml:"neo4j_user"`
	Neo4jPassword string `yaml:"-"`
	Neo4jDatabase string `yaml:"neo4j_database"`

	// Relational database configuration
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"-"`
	DBName     string `yaml:"db_name"`
	DBSSLMode  string `yaml:"db_ssl_mode"`
	SQLitePath string `yaml:"sqlite_path"`

	// Redis configuration
	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	RedisPassword string `yaml:"-"`
	RedisDB       int    `yaml:"redis_db"`
	RedisURL      string `yaml:"redis_url"`

	// Rate limiting, requests per client per minute. Zero disables it.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`

	// Image references
	S3BucketName string `yaml:"s3_bucket_name"`
	AWSRegion    string `yaml:"aws_region"`
}

// Default returns the configuration used before any source is applied
func Default() *Config {
	return &Config{
		Environment:             Development,
		ServerHost:              "0.0.0.0",
		ServerPort:              "8080",
		SwaggerEnabled:          true,
		StoreBackend:            BackendNeo4j,
		QueryTimeout:            10 * time.Second,
		BreakerFailureThreshold: 0.8,
		BreakerTimeout:          60 * time.Second,
		Neo4jUser:               "neo4j",
		DBPort:                  "5432",
		DBSSLMode:               "disable",
		SQLitePath:              "tasteit.db",
		RedisPort:               "6379",
		RateLimitPerMinute:      120,
	}
}

// LoadConfig builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE, environment variables and finally Docker secrets.
func LoadConfig() (*Config, error) {
	cfg := Default()
	cfg.Environment = GetEnvironment()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	if cfg.Environment.UsesSecrets() {
		loadSecrets(cfg)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// loadEnv overrides cfg with every environment variable that is set
func loadEnv(cfg *Config) error {
	setString(&cfg.ServerHost, "SERVER_HOST")
	setString(&cfg.ServerPort, "SERVER_PORT")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.StoreBackend, "STORE_BACKEND")
	setString(&cfg.Neo4jURI, "NEO4J_URI")
	setString(&cfg.Neo4jUser, "NEO4J_USER")
	setString(&cfg.Neo4jPassword, "NEO4J_PASSWORD")
	setString(&cfg.Neo4jDatabase, "NEO4J_DATABASE")
	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBPort, "DB_PORT")
	setString(&cfg.DBUser, "DB_USER")
	setString(&cfg.DBPassword, "DB_PASSWORD")
	setString(&cfg.DBName, "DB_NAME")
	setString(&cfg.DBSSLMode, "DB_SSL_MODE")
	setString(&cfg.SQLitePath, "SQLITE_PATH")
	setString(&cfg.RedisHost, "REDIS_HOST")
	setString(&cfg.RedisPort, "REDIS_PORT")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.RedisURL, "REDIS_URL")
	setString(&cfg.S3BucketName, "S3_BUCKET_NAME")
	setString(&cfg.AWSRegion, "AWS_REGION")

	var errs []string
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}
	collect(setInt(&cfg.RedisDB, "REDIS_DB"))
	collect(setInt(&cfg.RateLimitPerMinute, "RATE_LIMIT_PER_MINUTE"))
	collect(setDuration(&cfg.QueryTimeout, "STORE_QUERY_TIMEOUT"))
	collect(setDuration(&cfg.BreakerTimeout, "BREAKER_TIMEOUT"))
	collect(setFloat(&cfg.BreakerFailureThreshold, "BREAKER_FAILURE_THRESHOLD"))
	collect(setBool(&cfg.SwaggerEnabled, "SWAGGER_ENABLED"))

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// loadSecrets reads passwords from the Docker secrets directory. A present secret wins
// over the environment.
func loadSecrets(cfg *Config) {
	if v := readSecret("neo4j_password"); v != "" {
		cfg.Neo4jPassword = v
	}
	if v := readSecret("db_password"); v != "" {
		cfg.DBPassword = v
	}
	if v := readSecret("redis_password"); v != "" {
		cfg.RedisPassword = v
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s must be an integer", key)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s must be a number", key)
	}
	*dst = f
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s must be a duration", key)
	}
	*dst = d
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s must be a boolean", key)
	}
	*dst = b
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN returns the lib/pq connection string
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
