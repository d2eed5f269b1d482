// Package database contains the read-only schema inspector used to enrich
// generated requests, resources and data objects with column information.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/autocrud/internal/db"
	"github.com/example/autocrud/internal/ports/secondary"
)

type queries struct {
	hasTable string
	columns  string
}

var dialectQueries = map[string]queries{
	db.DialectSQLite: {
		hasTable: "SELECT COUNT(*) FROM sqlite_master WHERE type IN ('table', 'view') AND name = ?",
		columns:  `SELECT name, type, "notnull" = 0 FROM pragma_table_info(?) ORDER BY cid`,
	},
	db.DialectPostgres: {
		hasTable: "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1",
		columns: `SELECT column_name, data_type, is_nullable = 'YES'
			FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = $1
			ORDER BY ordinal_position`,
	},
	db.DialectMySQL: {
		hasTable: "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?",
		columns: `SELECT column_name, column_type, is_nullable = 'YES'
			FROM information_schema.columns
			WHERE table_schema = DATABASE() AND table_name = ?
			ORDER BY ordinal_position`,
	},
}

// SchemaInspector implements secondary.SchemaInspector over database/sql.
type SchemaInspector struct {
	db      *sql.DB
	queries queries
}

var _ secondary.SchemaInspector = (*SchemaInspector)(nil)

// NewSchemaInspector creates an inspector for the given dialect.
func NewSchemaInspector(conn *sql.DB, dialect string) (*SchemaInspector, error) {
	q, ok := dialectQueries[dialect]
	if !ok {
		return nil, fmt.Errorf("no schema queries for dialect %q", dialect)
	}
	return &SchemaInspector{db: conn, queries: q}, nil
}

// Ping verifies connectivity to the database.
func (s *SchemaInspector) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}
	return nil
}

// HasTable reports whether the table exists.
func (s *SchemaInspector) HasTable(ctx context.Context, table string) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, s.queries.hasTable, table).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", table, err)
	}
	return count > 0, nil
}

// Columns returns the columns of a table in declaration order.
func (s *SchemaInspector) Columns(ctx context.Context, table string) ([]secondary.ColumnRecord, error) {
	rows, err := s.db.QueryContext(ctx, s.queries.columns, table)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", table, err)
	}
	defer rows.Close()

	var columns []secondary.ColumnRecord
	for rows.Next() {
		var col secondary.ColumnRecord
		if err := rows.Scan(&col.Name, &col.Type, &col.Nullable); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		col.Type = strings.ToLower(col.Type)
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", table, err)
	}

	return columns, nil
}

// Unavailable is an inspector for runs where no database could be opened.
// Ping reports the original failure; lookups report an empty schema.
type Unavailable struct {
	Err error
}

var _ secondary.SchemaInspector = Unavailable{}

// Ping returns the error that made the database unavailable.
func (u Unavailable) Ping(ctx context.Context) error {
	return u.Err
}

// HasTable always reports false.
func (u Unavailable) HasTable(ctx context.Context, table string) (bool, error) {
	return false, nil
}

// Columns always reports no columns.
func (u Unavailable) Columns(ctx context.Context, table string) ([]secondary.ColumnRecord, error) {
	return nil, nil
}
