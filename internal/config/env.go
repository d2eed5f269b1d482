package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Database holds the connection settings of the Laravel project.
// Field names follow the DB_* variables of a Laravel .env file.
type Database struct {
	Connection string // DB_CONNECTION: sqlite, pgsql, mysql, mariadb
	URL        string // DB_URL
	Host       string // DB_HOST
	Port       string // DB_PORT
	Database   string // DB_DATABASE
	Username   string // DB_USERNAME
	Password   string // DB_PASSWORD
}

var databaseKeys = []string{
	"DB_CONNECTION",
	"DB_URL",
	"DB_HOST",
	"DB_PORT",
	"DB_DATABASE",
	"DB_USERNAME",
	"DB_PASSWORD",
}

// LoadDatabase reads the DB_* settings from the project's .env file.
// Variables set in the process environment take precedence, as they do in Laravel.
// A missing .env file is not an error.
func LoadDatabase(dir string) (Database, error) {
	values, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Database{}, fmt.Errorf("failed to read .env: %w", err)
	}
	if values == nil {
		values = make(map[string]string)
	}

	for _, key := range databaseKeys {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	db := Database{
		Connection: values["DB_CONNECTION"],
		URL:        values["DB_URL"],
		Host:       values["DB_HOST"],
		Port:       values["DB_PORT"],
		Database:   values["DB_DATABASE"],
		Username:   values["DB_USERNAME"],
		Password:   values["DB_PASSWORD"],
	}
	if db.Connection == "" {
		db.Connection = "sqlite"
	}
	if db.Connection == "sqlite" && db.Database == "" {
		db.Database = filepath.Join(dir, "database", "database.sqlite")
	} else if db.Connection == "sqlite" && !filepath.IsAbs(db.Database) && db.Database != ":memory:" {
		db.Database = filepath.Join(dir, db.Database)
	}

	return db, nil
}
