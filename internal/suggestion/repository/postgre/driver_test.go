package postgre_test

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
)

// A minimal database/sql driver returning canned rows per DSN.

type scenario struct {
	mu        sync.Mutex
	columns   []string
	rows      [][]driver.Value
	err       error
	lastQuery string
	lastArgs  []driver.Value
}

var scenarios sync.Map

func init() {
	sql.Register("fakepg", fakeDriver{})
}

func openScenario(name string, s *scenario) (*sql.DB, error) {
	scenarios.Store(name, s)
	return sql.Open("fakepg", name)
}

type fakeDriver struct{}

func (fakeDriver) Open(name string) (driver.Conn, error) {
	v, ok := scenarios.Load(name)
	if !ok {
		return nil, errors.New("unknown scenario " + name)
	}
	return &fakeConn{s: v.(*scenario)}, nil
}

type fakeConn struct{ s *scenario }

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeStmt{s: c.s, query: query}, nil
}
func (c *fakeConn) Close() error              { return nil }
func (c *fakeConn) Begin() (driver.Tx, error) { return nil, errors.New("transactions not supported") }

type fakeStmt struct {
	s     *scenario
	query string
}

func (st *fakeStmt) Close() error  { return nil }
func (st *fakeStmt) NumInput() int { return -1 }

func (st *fakeStmt) record(args []driver.Value) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	st.s.lastQuery = st.query
	st.s.lastArgs = args
}

func (st *fakeStmt) Exec(args []driver.Value) (driver.Result, error) {
	st.record(args)
	if st.s.err != nil {
		return nil, st.s.err
	}
	return driver.RowsAffected(0), nil
}

func (st *fakeStmt) Query(args []driver.Value) (driver.Rows, error) {
	st.record(args)
	if st.s.err != nil {
		return nil, st.s.err
	}
	return &fakeRows{columns: st.s.columns, rows: st.s.rows}, nil
}

type fakeRows struct {
	columns []string
	rows    [][]driver.Value
	i       int
}

func (r *fakeRows) Columns() []string { return r.columns }
func (r *fakeRows) Close() error      { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.i >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.i])
	r.i++
	return nil
}

