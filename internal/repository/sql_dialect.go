package repository

import (
	"fmt"
	"time"

	"github.com/Sharjeel-22/request-management-system/internal/config"
)

// placeholder returns the correct bind variable for the given index
// based on DB type. Postgres uses $1, $2... while MySQL and SQLite use ?
func placeholder(i int) string {
	db := config.GetSystemSettingString(config.DATABASE_TYPE)
	if db == config.DATABASE_TYPE_POSTGRES {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}

func supportsReturning() bool {
	return config.GetSystemSettingString(config.DATABASE_TYPE) == config.DATABASE_TYPE_POSTGRES
}

func formatDateInDatabase(t time.Time) string {
	db := config.GetSystemSettingString(config.DATABASE_TYPE)
	if db == config.DATABASE_TYPE_SQLLITE {
		return t.UTC().Format("2006-01-02 15:04:05.000")
	}
	return t.UTC().Format("2006-01-02 15:04:05.000000")
}

// dateAfter returns a DB-specific predicate checking that the datetime
// column is strictly after the given instant. SQLite stores timestamps
// as TEXT, so it is coerced via julianday() to keep comparisons sane.
func dateAfter(column string, t time.Time) string {
	at := t.UTC().Format("2006-01-02 15:04:05.000")

	db := config.GetSystemSettingString(config.DATABASE_TYPE)
	switch db {
	case config.DATABASE_TYPE_POSTGRES, config.DATABASE_TYPE_MYSQL:
		return fmt.Sprintf("%s > '%s'", column, at)
	default:
		return fmt.Sprintf("julianday(%s) > julianday('%s')", column, at)
	}
}
