package secondary

import "context"

// SchemaInspector defines the secondary port for read-only database introspection.
type SchemaInspector interface {
	// Ping verifies connectivity to the database.
	Ping(ctx context.Context) error

	// HasTable reports whether the table exists.
	HasTable(ctx context.Context, table string) (bool, error)

	// Columns returns the columns of a table in declaration order.
	Columns(ctx context.Context, table string) ([]ColumnRecord, error)
}

// ColumnRecord represents a table column as reported by the database.
type ColumnRecord struct {
	Name     string
	Type     string // Lowercased database type: "varchar(255)", "integer", "timestamp"
	Nullable bool
}
