package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every problem found in one pass
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "\n")
}

// requirements lists the settings each store backend cannot start without
var requirements = map[string][]struct {
	field string
	get   func(*Config) string
}{
	BackendNeo4j: {
		{"NEO4J_URI", func(c *Config) string { return c.Neo4jURI }},
		{"NEO4J_USER", func(c *Config) string { return c.Neo4jUser }},
		{"neo4j_password", func(c *Config) string { return c.Neo4jPassword }},
	},
	BackendPostgres: {
		{"DB_HOST", func(c *Config) string { return c.DBHost }},
		{"DB_PORT", func(c *Config) string { return c.DBPort }},
		{"DB_USER", func(c *Config) string { return c.DBUser }},
		{"DB_NAME", func(c *Config) string { return c.DBName }},
		{"db_password", func(c *Config) string { return c.DBPassword }},
	},
	BackendSQLite: {
		{"SQLITE_PATH", func(c *Config) string { return c.SQLitePath }},
	},
}

// ValidateConfig checks that the configuration can start the selected backend
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "is required"})
	}

	reqs, ok := requirements[cfg.StoreBackend]
	if !ok {
		errs = append(errs, ValidationError{"STORE_BACKEND", fmt.Sprintf("unknown backend %q", cfg.StoreBackend)})
	}
	for _, r := range reqs {
		if r.get(cfg) == "" {
			errs = append(errs, ValidationError{r.field, "is required for the " + cfg.StoreBackend + " backend"})
		}
	}

	if cfg.QueryTimeout < 0 {
		errs = append(errs, ValidationError{"STORE_QUERY_TIMEOUT", "must not be negative"})
	}
	if cfg.BreakerFailureThreshold <= 0 || cfg.BreakerFailureThreshold > 1 {
		errs = append(errs, ValidationError{"BREAKER_FAILURE_THRESHOLD", "must be in (0, 1]"})
	}
	if cfg.RateLimitPerMinute < 0 {
		errs = append(errs, ValidationError{"RATE_LIMIT_PER_MINUTE", "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
