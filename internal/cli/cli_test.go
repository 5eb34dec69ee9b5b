package cli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/ecomshop/shop-api/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", filepath.Join(t.TempDir(), "shop.db"))
	t.Setenv("JWT_SECRET", "test-jwt-secret-key-must-be-at-least-32-characters-long")
	t.Setenv("CACHE_DRIVER", "noop")
	t.Setenv("EVENTS_ENABLED", "false")
}

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestMigrateThenSeed(t *testing.T) {
	// Given
	setEnv(t)

	// When / Then
	assert.Contains(t, run(t, "migrate", "--env", "test"), "migrations applied")
	assert.Contains(t, run(t, "seed", "--env", "test"), "seed data applied")
	assert.Contains(t, run(t, "seed", "--env", "test"), "catalogue already present")
}

func TestMigrateReset(t *testing.T) {
	setEnv(t)

	assert.Contains(t, run(t, "migrate", "--reset", "--env", "test"), "migrations applied")
}

func TestMigrateReset_RefusedInProd(t *testing.T) {
	setEnv(t)

	cmd := cli.NewRootCommand()
	cmd.SetArgs([]string{"migrate", "--reset", "--env", "prod"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestInvalidConfig(t *testing.T) {
	setEnv(t)
	t.Setenv("JWT_SECRET", "short")

	cmd := cli.NewRootCommand()
	cmd.SetArgs([]string{"seed", "--env", "test"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
