package store

import (
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "modernc.org/sqlite"
)

// Open connects to the SQLite store at path.
//
// The connection enables write-ahead logging and a busy timeout, and is
// limited to a single open connection: SQLite allows one writer at a
// time, and funneling every statement through one connection keeps the
// busy-timeout behavior predictable across the process.
//
// Schema initialization is separate; call InitDB before use.
func Open(path string) (*bun.DB, error) {
	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return bun.NewDB(sqlDB, sqlitedialect.New()), nil
}
