// Package integration exercises the dialect renderers end to end: generated
// DDL is executed against real databases, data is loaded, and rendered
// queries run against it.
package integration

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mariadb"
	"github.com/testcontainers/testcontainers-go/modules/mssql"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Containers start lazily on first use and are shared for the rest of the
// run. Each started container registers its teardown, so TestMain only
// terminates what actually ran.
var (
	sharedPg      *PostgresContainer
	sharedMariaDB *MariaDBContainer
	sharedMSSQL   *MSSQLContainer

	pgOnce      sync.Once
	mariadbOnce sync.Once
	mssqlOnce   sync.Once

	teardownMu  sync.Mutex
	teardownFns []func(context.Context)
)

func onTeardown(fn func(context.Context)) {
	teardownMu.Lock()
	teardownFns = append(teardownFns, fn)
	teardownMu.Unlock()
}

// TestMain tears down whatever containers the run started. Short-mode
// skipping happens in the individual tests; flags are not parsed yet here.
func TestMain(m *testing.M) {
	code := m.Run()

	ctx := context.Background()
	teardownMu.Lock()
	for i := len(teardownFns) - 1; i >= 0; i-- {
		teardownFns[i](ctx)
	}
	teardownMu.Unlock()

	os.Exit(code)
}

// waitForPing polls a database/sql handle until it answers or attempts run
// out. Container wait strategies cover the server log line, not the moment
// the listener actually accepts logins.
func waitForPing(db *sql.DB, attempts int) {
	for i := 0; i < attempts; i++ {
		if err := db.Ping(); err == nil {
			return
		}
		time.Sleep(time.Second)
	}
}

func getPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	pgOnce.Do(func() {
		ctx := context.Background()

		container, err := postgres.Run(ctx,
			"docker.io/postgres:16-alpine",
			postgres.WithDatabase("slick_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start postgres container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		conn, err := pgx.Connect(ctx, connStr)
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}

		sharedPg = &PostgresContainer{container: container, conn: conn, connStr: connStr}
		onTeardown(func(ctx context.Context) {
			_ = conn.Close(ctx)
			_ = container.Terminate(ctx)
		})
	})

	return sharedPg
}

func getMariaDBContainer(t *testing.T) *MariaDBContainer {
	t.Helper()

	mariadbOnce.Do(func() {
		ctx := context.Background()

		container, err := mariadb.Run(ctx,
			"docker.io/mariadb:11",
			mariadb.WithDatabase("slick_test"),
			mariadb.WithUsername("test"),
			mariadb.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("mariadbd: ready for connections").
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mariadb container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		db, err := sql.Open("mysql", connStr)
		if err != nil {
			log.Fatalf("Failed to connect to mariadb: %v", err)
		}
		waitForPing(db, 30)

		sharedMariaDB = &MariaDBContainer{container: container, db: db, connStr: connStr}
		onTeardown(func(ctx context.Context) {
			_ = db.Close()
			_ = container.Terminate(ctx)
		})
	})

	return sharedMariaDB
}

func getMSSQLContainer(t *testing.T) *MSSQLContainer {
	t.Helper()

	mssqlOnce.Do(func() {
		ctx := context.Background()

		container, err := mssql.Run(ctx,
			"mcr.microsoft.com/mssql/server:2022-latest",
			mssql.WithAcceptEULA(),
			mssql.WithPassword("Test@12345"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("SQL Server is now ready for client connections").
					WithStartupTimeout(120*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mssql container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		db, err := sql.Open("sqlserver", connStr)
		if err != nil {
			log.Fatalf("Failed to connect to mssql: %v", err)
		}
		waitForPing(db, 60)

		sharedMSSQL = &MSSQLContainer{container: container, db: db, connStr: connStr}
		onTeardown(func(ctx context.Context) {
			_ = db.Close()
			_ = container.Terminate(ctx)
		})
	})

	return sharedMSSQL
}
