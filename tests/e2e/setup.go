//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"genesis-storefront/cmd/bootstrap"
	"genesis-storefront/cmd/bootstrap/components"
	"genesis-storefront/internal/infra/kv"
	"genesis-storefront/internal/pkg/config"
	"genesis-storefront/internal/pkg/password"
	"genesis-storefront/tests/common/statetest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

// StaffPasscode is the back-office passcode every e2e app is configured with.
const StaffPasscode = "karibu-e2e"

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container
	redisContainerOnce    sync.Once
	redisTestContainer    testcontainers.Container

	staffHashOnce sync.Once
	staffHash     string

	testUser     = "test"
	testPassword = "testpass"
	testDB       = "genesis_e2e"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Store configuration per driver
// ------------------------------------------------------------

// NewTestConfig returns a config pointing at a running container for driver.
// Each call gets its own namespace so tests never see each other's documents.
func NewTestConfig(t *testing.T, driver kv.Driver) config.Config {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.Store.Driver = string(driver)
	cfg.Store.Namespace = "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	cfg.Staff.PasscodeHash = staffPasscodeHash(t)

	switch driver {
	case kv.DriverPostgres:
		info := startPostgres(t)
		cfg.DB = config.DBConfig{
			Host:     info.Host,
			Port:     info.Port.Port(),
			User:     testUser,
			Password: testPassword,
			DBName:   testDB,
			SSLMode:  "disable",
			TimeZone: "Africa/Nairobi",
		}
	case kv.DriverRedis:
		info := startRedis(t)
		cfg.Store.RedisAddr = fmt.Sprintf("%s:%s", info.Host, info.Port.Port())
	case kv.DriverFile:
		cfg.Store.Dir = t.TempDir()
	case kv.DriverSQLite:
		cfg.Store.SQLitePath = t.TempDir() + "/genesis.db"
	}
	return cfg
}

func staffPasscodeHash(t *testing.T) string {
	staffHashOnce.Do(func() {
		var err error
		staffHash, err = password.HashPassword(StaffPasscode)
		require.NoError(t, err, "failed to hash staff passcode")
	})
	return staffHash
}

// OpenBackend opens the backend selected by cfg and closes it with the test.
func OpenBackend(t *testing.T, cfg config.Config) kv.Backend {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	backend, cleanup, err := kv.Open(ctx, cfg, statetest.DiscardLogger())
	require.NoError(t, err, "failed to open %s backend", cfg.Store.Driver)
	t.Cleanup(cleanup)
	return backend
}

// ------------------------------------------------------------
// Application assembly
// ------------------------------------------------------------

// BuildApp starts the full fx graph against cfg and returns the router.
// The app is stopped when the test ends or when stop is called, whichever
// comes first.
func BuildApp(t *testing.T, cfg config.Config) (router *gin.Engine, stop func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()

	app := fx.New(
		fx.Module("testconfig",
			fx.Provide(func() config.Config { return cfg }),
		),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.StoreModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "router was not populated")

	var once sync.Once
	stop = func() {
		once.Do(func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer stopCancel()
			if err := app.Stop(stopCtx); err != nil {
				slog.Warn("failed to stop fx app", "error", err.Error())
			}
		})
	}
	t.Cleanup(stop)
	return router, stop
}

// ------------------------------------------------------------
// Containers
// ------------------------------------------------------------

func startPostgres(t *testing.T) ContainerInfo {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
					testUser, testPassword, host, port.Port(), testDB)
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start postgres container")
	})

	info, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to resolve postgres address")
	return info
}

func startRedis(t *testing.T) ContainerInfo {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start redis container")
	})

	info, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to resolve redis address")
	return info
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	// Containers are reaped by ryuk when the test binary exits.
	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite
// ------------------------------------------------------------

// SharedSuite runs every test method against a fresh app on its own
// namespace. Driver defaults to postgres.
type SharedSuite struct {
	suite.Suite
	Driver kv.Driver
	Router *gin.Engine
	Config config.Config

	stop func()
}

func (s *SharedSuite) SetupTest() {
	if s.Driver == "" {
		s.Driver = kv.DriverPostgres
	}
	s.Config = NewTestConfig(s.T(), s.Driver)
	s.Router, s.stop = BuildApp(s.T(), s.Config)
}

// Restart stops the running app and starts a new one on the same
// namespace, so only what reached the backend survives.
func (s *SharedSuite) Restart() {
	s.stop()
	s.Router, s.stop = BuildApp(s.T(), s.Config)
}
