package testingutils

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tasteit/tasteit/backend/config"
)

// RequireDocker skips container-based tests on machines without docker
func RequireDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}
}

func startContainer(t *testing.T, req testcontainers.ContainerRequest) (string, func(string) string) {
	t.Helper()
	RequireDocker(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Error terminating container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port := func(p string) string {
		mapped, err := container.MappedPort(ctx, nat.Port(p+"/tcp"))
		require.NoError(t, err)
		return mapped.Port()
	}
	return host, port
}

// StartPostgres runs a disposable PostgreSQL and returns a config pointing at it
func StartPostgres(t *testing.T) *config.Config {
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "tasteit",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		).WithDeadline(2 * time.Minute),
	})

	cfg := config.Default()
	cfg.StoreBackend = config.BackendPostgres
	cfg.DBHost = host
	cfg.DBPort = port("5432")
	cfg.DBUser = "test"
	cfg.DBPassword = "test"
	cfg.DBName = "tasteit"
	return cfg
}

// StartNeo4j runs a disposable Neo4j and returns a config pointing at it
func StartNeo4j(t *testing.T) *config.Config {
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "neo4j:5",
		ExposedPorts: []string{"7687/tcp"},
		Env: map[string]string{
			"NEO4J_AUTH": "neo4j/testpassword",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("Started."),
			wait.ForListeningPort("7687/tcp"),
		).WithDeadline(3 * time.Minute),
	})

	cfg := config.Default()
	cfg.StoreBackend = config.BackendNeo4j
	cfg.Neo4jURI = fmt.Sprintf("neo4j://%s:%s", host, port("7687"))
	cfg.Neo4jUser = "neo4j"
	cfg.Neo4jPassword = "testpassword"
	return cfg
}

// StartRedis runs a disposable Redis and returns a config pointing at it
func StartRedis(t *testing.T) *config.Config {
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	})

	cfg := config.Default()
	cfg.RedisHost = host
	cfg.RedisPort = port("6379")
	return cfg
}
