package pgtest

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup holds a migrated connection to the test database
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies the migrations.
// The test is skipped when the variable is not set.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4, MinConns: 1})
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.Migrate(ctx))

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(setup.Close)
	return setup
}

// TruncateAllTables removes every row written by the repositories
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"payroll_records",
		"deficits",
		"leave_entitlements",
		"attendance_days",
		"salary_laws",
		"employees",
	}

	for _, table := range tables {
		if _, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// CreateEmployee inserts a staff row and returns its id
func (s *TestDatabaseSetup) CreateEmployee(t *testing.T, code string, hireDate time.Time, active bool) string {
	t.Helper()

	var id string
	err := s.DB.QueryRow(context.Background(), `
		INSERT INTO employees (employee_code, full_name, position, hire_date, is_active, is_married, children_count)
		VALUES ($1, $2, 'Staff', $3, $4, TRUE, 2)
		RETURNING id::text
	`, code, "Employee "+code, hireDate, active).Scan(&id)
	require.NoError(t, err)
	return id
}

func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}
