package leimysql

import (
	"context"
	"database/sql"
)

// Pool hands out leased connections. The implementation backed by
// database/sql delegates limits, queuing and retry to the standard pool;
// this layer only consumes the lease contract.
type Pool interface {
	// Acquire leases one connection. It may block until a connection is
	// available or ctx is done.
	Acquire(ctx context.Context) (Conn, error)
}

// Conn is a single leased database session. Release must be called exactly
// once per lease; it is not assumed to be idempotent.
type Conn interface {
	// Query executes one statement and returns the materialized rows.
	Query(ctx context.Context, query string, args ...any) ([]Row, error)

	// Exec executes one statement that returns no rows.
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)

	// Release returns the connection to the pool.
	Release() error
}

// sqlPool adapts *sql.DB to the Pool contract. Each Acquire pins one
// physical connection via (*sql.DB).Conn, so a leased Conn never shares a
// session with concurrent callers.
type sqlPool struct {
	db      *sql.DB
	scanner Scanner
}

// NewPool wraps a *sql.DB as a Pool. The scanner converts driver rows into
// Row maps; a nil scanner falls back to the default.
func NewPool(db *sql.DB, scanner Scanner) Pool {
	if scanner == nil {
		scanner = NewDefaultScanner()
	}
	return &sqlPool{db: db, scanner: scanner}
}

func (p *sqlPool) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return &sqlConn{conn: conn, scanner: p.scanner}, nil
}

// sqlConn adapts *sql.Conn to the Conn contract.
type sqlConn struct {
	conn    *sql.Conn
	scanner Scanner
}

func (c *sqlConn) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := c.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return c.scanner.ScanRows(rows)
}

func (c *sqlConn) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.conn.ExecContext(ctx, query, args...)
}

func (c *sqlConn) Release() error {
	return c.conn.Close()
}
