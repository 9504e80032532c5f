package db

import (
	"net/url"
	"strings"

	"hskctl/internal/config"

	_ "github.com/lib/pq"
)

// postgresDialect supports running the same transfer against a Postgres
// copy of the table. The sequence name follows the default naming for a
// serial Id column.
var postgresDialect = dialect{
	name:   "postgres",
	driver: "postgres",
	dsn:    postgresDSN,
	resetAutoIncrement: []string{
		"ALTER SEQUENCE IF EXISTS hsk_words_id_seq RESTART WITH 1",
	},
}

func postgresDSN(cfg *config.Config) string {
	host := cfg.Host
	if !strings.Contains(host, ":") {
		host += ":5432"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     host,
		Path:     cfg.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
