package testutil

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
)

// SQLStub is a database/sql connector that answers every statement with
// canned results. Exec returns ExecErr, or a result with LastID. Query
// returns QueryErr, or Rows under Columns.
type SQLStub struct {
	ExecErr  error
	LastID   int64
	QueryErr error
	Columns  []string
	Rows     [][]driver.Value
}

// OpenStubDB returns a *sql.DB backed by stub, closed when the test ends.
func OpenStubDB(t *testing.T, stub *SQLStub) *sql.DB {
	t.Helper()
	db := sql.OpenDB(stub)
	t.Cleanup(func() { db.Close() })
	return db
}

func (s *SQLStub) Connect(ctx context.Context) (driver.Conn, error) {
	return &stubConn{stub: s}, nil
}

func (s *SQLStub) Driver() driver.Driver {
	return stubDriver{stub: s}
}

type stubDriver struct {
	stub *SQLStub
}

func (d stubDriver) Open(name string) (driver.Conn, error) {
	return &stubConn{stub: d.stub}, nil
}

type stubConn struct {
	stub *SQLStub
}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
	return &stubStmt{stub: c.stub}, nil
}

func (c *stubConn) Close() error {
	return nil
}

func (c *stubConn) Begin() (driver.Tx, error) {
	return nil, errors.New("sqlstub: transactions not supported")
}

type stubStmt struct {
	stub *SQLStub
}

func (s *stubStmt) Close() error {
	return nil
}

func (s *stubStmt) NumInput() int {
	return -1
}

func (s *stubStmt) Exec(args []driver.Value) (driver.Result, error) {
	if s.stub.ExecErr != nil {
		return nil, s.stub.ExecErr
	}
	return stubResult{lastID: s.stub.LastID}, nil
}

func (s *stubStmt) Query(args []driver.Value) (driver.Rows, error) {
	if s.stub.QueryErr != nil {
		return nil, s.stub.QueryErr
	}
	return &stubRows{columns: s.stub.Columns, rows: s.stub.Rows}, nil
}

type stubResult struct {
	lastID int64
}

func (r stubResult) LastInsertId() (int64, error) {
	return r.lastID, nil
}

func (r stubResult) RowsAffected() (int64, error) {
	return 1, nil
}

type stubRows struct {
	columns []string
	rows    [][]driver.Value
	next    int
}

func (r *stubRows) Columns() []string {
	return r.columns
}

func (r *stubRows) Close() error {
	return nil
}

func (r *stubRows) Next(dest []driver.Value) error {
	if r.next >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.next])
	r.next++
	return nil
}
