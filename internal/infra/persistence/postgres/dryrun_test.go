package postgres

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder keeps every statement GORM traces, with vars inlined.
type sqlRecorder struct {
	logger.Interface

	mu         sync.Mutex
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface {
	return r
}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.statements, "no statement was traced")

	return r.statements[len(r.statements)-1]
}

// all returns the traced statements in execution order.
func (r *sqlRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.statements...)
}

// indexOf returns the position of the first statement containing fragment, or -1.
func (r *sqlRecorder) indexOf(fragment string) int {
	for i, statement := range r.all() {
		if strings.Contains(statement, fragment) {
			return i
		}
	}

	return -1
}

// find returns the first statement containing fragment.
func (r *sqlRecorder) find(t *testing.T, fragment string) string {
	t.Helper()

	i := r.indexOf(fragment)
	require.NotEqual(t, -1, i, "no statement contains %q in %v", fragment, r.all())

	return r.all()[i]
}

func (r *sqlRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.statements)
}

// dryRunPool is never reached in dry-run mode. Implementing gorm.TxCommitter
// makes db.Transaction run as a savepoint on it instead of opening a connection.
type dryRunPool struct{}

func (dryRunPool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, gorm.ErrDryRunModeUnsupported
}

func (dryRunPool) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, gorm.ErrDryRunModeUnsupported
}

func (dryRunPool) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, gorm.ErrDryRunModeUnsupported
}

func (dryRunPool) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

func (dryRunPool) Commit() error   { return nil }
func (dryRunPool) Rollback() error { return nil }

// newDryRunDB builds statements with the PostgreSQL dialect without a server.
// Raw scans report gorm.ErrDryRunModeUnsupported, which the tests ignore;
// Find and Take read back zero rows.
func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	recorder := &sqlRecorder{Interface: logger.Discard}
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn: dryRunPool{},
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 recorder,
	})
	require.NoError(t, err)

	return db, recorder
}

// affectRowsOnUpdate makes every UPDATE report n affected rows, standing in
// for an existing target row.
func affectRowsOnUpdate(t *testing.T, db *gorm.DB, n int64) {
	t.Helper()

	err := db.Callback().Update().After("gorm:update").Register("test:affect_rows", func(tx *gorm.DB) {
		tx.RowsAffected = n
	})
	require.NoError(t, err)
}
