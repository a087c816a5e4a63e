package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"continuous-improvement-backend/internal/config"
	"continuous-improvement-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite gives integration suites a migrated database and a test config
type BaseTestSuite struct {
	suite.Suite
	DB       *gorm.DB
	Config   *config.Config
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// SetupTestSuite starts the shared Postgres container on first use and returns a suite bound to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedPGContainer() })
	if sharedInitErr != nil {
		t.Fatalf("postgres container unavailable: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		DB:       sharedDB,
		Config:   sharedConfig,
		pool:     sharedPool,
		resource: sharedResource,
	}
}

// CleanupSharedContainer purges the shared container; integration TestMain functions defer it
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if sharedPool != nil && sharedResource != nil {
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("could not purge postgres container: %v", err)
		} else {
			log.Printf("purged container %s", sharedResource.Container.Name)
		}
		sharedResource = nil
		sharedPool = nil
		sharedDB = nil
	}
}

// RunWithTestSuite runs testFunc against a ready suite and cleans the tables afterwards
func RunWithTestSuite(t *testing.T, testFunc func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()
	testFunc(s)
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives individual suites
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// truncateOrder lists the tables emptied between tests, join rows first
var truncateOrder = []string{
	"idea_champions",
	"idea_categories",
	"ideas",
	"champions",
	"categories",
	"statuses",
}

const (
	pgUser     = "testuser"
	pgPassword = "testpass"
	pgDatabase = "testdb"
)

// CleanTestDB truncates the idea tables and resets their sequences
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	s.DB.Exec(`SET session_replication_role = replica;`)
	for _, t := range truncateOrder {
		if m.HasTable(t) {
			s.DB.Exec(`TRUNCATE TABLE "` + t + `" RESTART IDENTITY CASCADE;`)
		}
	}
	s.DB.Exec(`SET session_replication_role = DEFAULT;`)
}

func initSharedPGContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, hostPort, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error { return pingPostgres(dsn) }); err != nil {
		return fmt.Errorf("could not connect to postgres container: %w", err)
	}

	// migrations run inside Initialize
	gdb, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	sharedDB = gdb

	sharedConfig = &config.Config{
		DatabaseURL:  dsn,
		DatabaseName: pgDatabase,
		Port:         "8080",
		LogLevel:     "debug",
		Environment:  "test",
		BasePath:     "/api/v1/continuous-improvement",
		SMTPPort:     25,
	}

	log.Printf("postgres ready on port %s", hostPort)
	logExistingTables(sharedDB)
	return nil
}

// pingPostgres opens a plain pgx connection so gorm is only initialized once the server accepts clients
func pingPostgres(dsn string) error {
	std, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer std.Close()
	return std.Ping()
}

// logExistingTables prints the migrated tables so a missing model shows up in the test log
func logExistingTables(db *gorm.DB) {
	type row struct{ Tablename string }
	var rows []row
	if err := db.Raw(
		`SELECT tablename FROM pg_tables WHERE schemaname='public' ORDER BY tablename`,
	).Scan(&rows).Error; err == nil {
		names := make([]string, 0, len(rows))
		for _, r := range rows {
			names = append(names, r.Tablename)
		}
		log.Printf("migrated tables: %v", names)
	}
}
