package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DB_DRIVER", "postgres")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSeedCommand_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dash.db")

	out, _, err := run(t, "--driver", "sqlite", "--dsn", dbPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Database seeded successfully")
	assert.Contains(t, out, "customers: 6")
	assert.Contains(t, out, "invoices:  13")
	assert.Contains(t, out, "revenue:   12")
}

func TestSeedCommand_InsecurePostgres(t *testing.T) {
	_, errOut, err := run(t, "--driver", "postgres", "--dsn", "postgres://u@localhost/dash?sslmode=disable")
	require.Error(t, err)
	assert.Contains(t, errOut, "Error seeding database")
	assert.Contains(t, errOut, "must be encrypted")
}

func TestSeedCommand_UnknownDriver(t *testing.T) {
	_, _, err := run(t, "--driver", "oracle", "--dsn", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestSeedCommand_DriverFlagIsCaseInsensitive(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dash.db")

	out, _, err := run(t, "--driver", " SQLite ", "--dsn", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Database seeded successfully")
}
