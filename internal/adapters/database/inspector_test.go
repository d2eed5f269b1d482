package database_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/autocrud/internal/adapters/database"
	"github.com/example/autocrud/internal/db"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(`
		CREATE TABLE posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title VARCHAR(255) NOT NULL,
			body TEXT,
			published BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)
	`)
	require.NoError(t, err)

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func TestSchemaInspector_SQLite(t *testing.T) {
	ctx := context.Background()
	inspector, err := database.NewSchemaInspector(setupTestDB(t), db.DialectSQLite)
	require.NoError(t, err)

	require.NoError(t, inspector.Ping(ctx))

	exists, err := inspector.HasTable(ctx, "posts")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = inspector.HasTable(ctx, "ghosts")
	require.NoError(t, err)
	assert.False(t, exists)

	columns, err := inspector.Columns(ctx, "posts")
	require.NoError(t, err)
	require.Len(t, columns, 6)

	assert.Equal(t, "id", columns[0].Name)
	assert.Equal(t, "title", columns[1].Name)
	assert.Equal(t, "varchar(255)", columns[1].Type)
	assert.False(t, columns[1].Nullable)
	assert.Equal(t, "body", columns[2].Name)
	assert.True(t, columns[2].Nullable)
	assert.Equal(t, "boolean", columns[3].Type)
}

func TestSchemaInspector_MissingTableHasNoColumns(t *testing.T) {
	inspector, err := database.NewSchemaInspector(setupTestDB(t), db.DialectSQLite)
	require.NoError(t, err)

	columns, err := inspector.Columns(context.Background(), "ghosts")
	require.NoError(t, err)
	assert.Empty(t, columns)
}

func TestNewSchemaInspector_UnknownDialect(t *testing.T) {
	_, err := database.NewSchemaInspector(setupTestDB(t), "oracle")
	assert.Error(t, err)
}

func TestUnavailable(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("connection refused")
	inspector := database.Unavailable{Err: cause}

	assert.ErrorIs(t, inspector.Ping(ctx), cause)

	exists, err := inspector.HasTable(ctx, "posts")
	require.NoError(t, err)
	assert.False(t, exists)

	columns, err := inspector.Columns(ctx, "posts")
	require.NoError(t, err)
	assert.Empty(t, columns)
}
