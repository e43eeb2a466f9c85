package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ogurasousui/codex-employee-roster/internal/core/employee"
	"github.com/ogurasousui/codex-employee-roster/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() employee.Fields {
	return employee.Fields{
		employee.FieldName:    "John Doe",
		employee.FieldAge:     "30",
		employee.FieldJob:     "Developer",
		employee.FieldEmail:   "john@example.com",
		employee.FieldGender:  "Male",
		employee.FieldPhone:   "123-456-7890",
		employee.FieldAddress: "123 Main St",
	}
}

func TestOpen_SQLiteFileRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.DBPath = filepath.Join(dir, "Employee.db")
	ctx := context.Background()

	a, err := Open(ctx, cfg, nil)
	require.NoError(t, err)

	added := a.Records.AddRecord(ctx, validFields())
	require.True(t, added.OK, added.Message)
	require.NoError(t, a.Close())
	require.NoError(t, a.Close(), "close must be idempotent")

	reopened, err := Open(ctx, cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	found := reopened.Records.GetRecordByID(ctx, added.Payload)
	require.True(t, found.OK, found.Message)
	assert.Equal(t, "John Doe", found.Payload.Name)

	out := filepath.Join(dir, "employees.csv")
	res := reopened.Exports.ToCSV(ctx, out)
	require.True(t, res.OK, res.Message)
	assert.FileExists(t, out)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Database.Driver = "oracle"

	_, err := Open(context.Background(), cfg, nil)
	assert.EqualError(t, err, `app: unsupported database driver "oracle"`)
}

func TestOpen_PostgresRequiresConnectionSettings(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Database.Driver = config.DriverPostgres

	_, err := Open(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.postgres.host")
}

func TestOpen_UnopenableSQLitePath(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "missing", "dir", "Employee.db")

	_, err := Open(context.Background(), cfg, nil)
	assert.Error(t, err)
}
