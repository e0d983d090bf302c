// Package dsn selects the GORM dialector for the configured backend URL.
package dsn

import (
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Dialector returns the GORM dialector matching the backend URL scheme.
// postgres:// and mysql:// select the corresponding network drivers;
// anything else is treated as a SQLite file path.
func Dialector(backendURL string) gorm.Dialector {
	switch {
	case strings.HasPrefix(backendURL, "postgres://"), strings.HasPrefix(backendURL, "postgresql://"):
		return postgres.Open(backendURL)
	case strings.HasPrefix(backendURL, "mysql://"):
		return mysql.Open(strings.TrimPrefix(backendURL, "mysql://"))
	default:
		return sqlite.Open(backendURL)
	}
}

// IsSQLite reports whether the backend URL selects the SQLite driver.
func IsSQLite(backendURL string) bool {
	return !strings.HasPrefix(backendURL, "postgres://") &&
		!strings.HasPrefix(backendURL, "postgresql://") &&
		!strings.HasPrefix(backendURL, "mysql://")
}
