package db

import (
	"fmt"

	"hskctl/internal/config"

	"github.com/jmoiron/sqlx"
)

// TableName is the one table this tool reads and rewrites. Its column set
// is the wire contract shared with the CSV files.
const TableName = "hsk_words"

// dialect carries the engine-specific pieces of the transfer operations.
type dialect struct {
	// name prefixes log lines, e.g. [mysql].
	name string
	// driver is the database/sql driver to register with sqlx.
	driver string
	// dsn builds the driver DSN from the parsed connection parameters.
	dsn func(cfg *config.Config) string
	// resetAutoIncrement runs inside the import transaction after the
	// delete, so future inserts that omit an id start from 1 again.
	resetAutoIncrement []string
	// resetBestEffort tolerates reset failures. SQLite needs this: the
	// sqlite_sequence table only exists once an AUTOINCREMENT insert has
	// happened.
	resetBestEffort bool
}

// Store performs the hsk_words transfer operations against one database
// connection.
type Store struct {
	db      *sqlx.DB
	dialect dialect
}

// Open connects to the database selected by driver using the appsettings
// connection parameters. The connection is pinged before returning, so a
// bad host or credential fails here rather than on first use.
func Open(driver string, cfg *config.Config) (*Store, error) {
	var d dialect
	switch driver {
	case "mysql":
		d = mysqlDialect
	case "postgres":
		d = postgresDialect
	case "sqlite":
		d = sqliteDialect
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	conn, err := sqlx.Connect(d.driver, d.dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("connecting to %s database: %w", d.name, err)
	}

	return &Store{db: conn, dialect: d}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) log(format string, args ...interface{}) {
	fmt.Printf("["+s.dialect.name+"] "+format+"\n", args...)
}
