// Helper for running integration tests against a real MariaDB instance in a
// testcontainer. The container is initialized with the same embedded DDL the
// deployment init scripts use, so the tests exercise the production schema
// rather than an AutoMigrate approximation.

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/data"
)

const (
	dbRootPassword = "root-secret"
	dbAppDatabase  = "fittracker"
	dbAppUser      = "fittracker_app"
	dbAppPassword  = "app-secret"
	dbAdminUser    = "fittracker_admin"
	dbAdminPass    = "admin-secret"
)

// MariaDB wraps a started database container and the app-user DSN.
type MariaDB struct {
	Container testcontainers.Container
	DSN       string
}

// Terminate stops and removes the container.
func (m *MariaDB) Terminate(t *testing.T) {
	t.Helper()
	if m.Container == nil {
		return
	}
	if err := m.Container.Terminate(context.Background()); err != nil {
		t.Logf("Failed to terminate MariaDB: %v", err)
	}
}

// StartMariaDB starts a MariaDB container, waits until it accepts
// connections, and applies the embedded schema and privilege DDL.
func StartMariaDB(t *testing.T) *MariaDB {
	t.Helper()
	ctx := context.Background()

	image := os.Getenv("DB_IMAGE")
	if image == "" {
		image = "mariadb:11"
	}

	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		t.Fatalf("Failed to create DB port: %v", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": dbRootPassword,
				"MYSQL_DATABASE":      dbAppDatabase,
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB: %v", err)
	}

	mdb := &MariaDB{Container: container}

	host, err := container.Host(ctx)
	if err != nil {
		mdb.Terminate(t)
		t.Fatalf("Failed to resolve container host: %v", err)
	}
	port, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		mdb.Terminate(t)
		t.Fatalf("Failed to resolve mapped port: %v", err)
	}

	if err := initDatabase(host, port.Port()); err != nil {
		mdb.Terminate(t)
		t.Fatalf("Failed to initialize database: %v", err)
	}

	mdb.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		dbAppUser, dbAppPassword, host, port.Port(), dbAppDatabase)
	return mdb
}

// initDatabase creates the application users and applies the embedded DDL as
// root, retrying the first connection while the server finishes starting.
func initDatabase(host, port string) error {
	rootDSN := fmt.Sprintf("root:%s@tcp(%s:%s)/", dbRootPassword, host, port)
	db, err := sql.Open("mysql", rootDSN)
	if err != nil {
		return fmt.Errorf("open root connection: %w", err)
	}
	defer db.Close()

	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("database not ready after 30 seconds: %w", err)
	}

	stmts := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", dbAppDatabase),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", dbAppUser, dbAppPassword),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", dbAdminUser, dbAdminPass),
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}

	if err := executeSQL(db, data.InitdbMariaDBTables); err != nil {
		return fmt.Errorf("tables init sql: %w", err)
	}
	if err := executeSQL(db, data.InitdbMariaDBPrivileges); err != nil {
		return fmt.Errorf("privileges init sql: %w", err)
	}
	return nil
}

// executeSQL runs a multi-statement script one statement at a time,
// stripping line comments first.
func executeSQL(db *sql.DB, script string) error {
	var lines []string
	for _, line := range strings.Split(script, "\n") {
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		lines = append(lines, line)
	}

	for _, stmt := range strings.Split(strings.Join(lines, "\n"), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%w : when executing > %s", err, stmt)
		}
	}
	return nil
}
