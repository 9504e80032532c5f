package db

import (
	"fmt"
	"strings"

	"hskctl/internal/config"

	_ "github.com/go-sql-driver/mysql"
)

// mysqlDialect is the production engine of the original system.
var mysqlDialect = dialect{
	name:   "mysql",
	driver: "mysql",
	dsn:    mysqlDSN,
	resetAutoIncrement: []string{
		"ALTER TABLE hsk_words AUTO_INCREMENT = 1",
	},
}

func mysqlDSN(cfg *config.Config) string {
	host := cfg.Host
	if !strings.Contains(host, ":") {
		host += ":3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=true",
		cfg.User, cfg.Password, host, cfg.Database, cfg.Charset)
}
