package db

import (
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/autocrud/internal/config"
)

// Dialects understood by the schema inspector.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "pgsql"
	DialectMySQL    = "mysql"
)

// Dialect maps a Laravel DB_CONNECTION value onto a supported dialect.
func Dialect(connection string) (string, error) {
	switch strings.ToLower(connection) {
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "pgsql", "postgres", "postgresql":
		return DialectPostgres, nil
	case "mysql", "mariadb":
		return DialectMySQL, nil
	default:
		return "", fmt.Errorf("unsupported database connection %q", connection)
	}
}

// DataSource returns the database/sql driver name and DSN for the settings.
func DataSource(cfg config.Database) (driver, dsn string, err error) {
	dialect, err := Dialect(cfg.Connection)
	if err != nil {
		return "", "", err
	}

	switch dialect {
	case DialectSQLite:
		return "sqlite3", sqliteDSN(cfg), nil
	case DialectPostgres:
		return "pgx", postgresDSN(cfg), nil
	default:
		dsn, err := mysqlDSN(cfg)
		if err != nil {
			return "", "", err
		}
		return "mysql", dsn, nil
	}
}

// Open opens a connection to the project's database. The connection is lazy;
// callers Ping it to check reachability.
func Open(cfg config.Database) (*sql.DB, string, error) {
	driver, dsn, err := DataSource(cfg)
	if err != nil {
		return nil, "", err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	dialect, _ := Dialect(cfg.Connection)
	return conn, dialect, nil
}

func sqliteDSN(cfg config.Database) string {
	if cfg.Database == ":memory:" {
		return ":memory:"
	}
	// Read-only: the generator never touches the application's data.
	return "file:" + cfg.Database + "?mode=ro"
}

func postgresDSN(cfg config.Database) string {
	if cfg.URL != "" {
		return cfg.URL
	}

	port := cfg.Port
	if port == "" {
		port = "5432"
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(hostOrLocal(cfg.Host), port),
		Path:   "/" + cfg.Database,
	}
	if cfg.Username != "" {
		if cfg.Password != "" {
			u.User = url.UserPassword(cfg.Username, cfg.Password)
		} else {
			u.User = url.User(cfg.Username)
		}
	}
	return u.String()
}

func mysqlDSN(cfg config.Database) (string, error) {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.ParseTime = true

	if cfg.URL != "" {
		u, err := url.Parse(cfg.URL)
		if err != nil {
			return "", fmt.Errorf("invalid DB_URL: %w", err)
		}
		port := u.Port()
		if port == "" {
			port = "3306"
		}
		mc.Addr = net.JoinHostPort(hostOrLocal(u.Hostname()), port)
		mc.DBName = strings.TrimPrefix(u.Path, "/")
		if u.User != nil {
			mc.User = u.User.Username()
			mc.Passwd, _ = u.User.Password()
		}
		return mc.FormatDSN(), nil
	}

	port := cfg.Port
	if port == "" {
		port = "3306"
	}
	mc.Addr = net.JoinHostPort(hostOrLocal(cfg.Host), port)
	mc.DBName = cfg.Database
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	return mc.FormatDSN(), nil
}

func hostOrLocal(host string) string {
	if host == "" {
		return "127.0.0.1"
	}
	return host
}
