package db

import (
	"hskctl/internal/config"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteDialect backs local development and the package tests. The
// Database field of the connection parameters is the file path.
var sqliteDialect = dialect{
	name:   "sqlite",
	driver: "sqlite3",
	dsn: func(cfg *config.Config) string {
		return cfg.Database
	},
	resetAutoIncrement: []string{
		"DELETE FROM sqlite_sequence WHERE name = 'hsk_words'",
	},
	resetBestEffort: true,
}
