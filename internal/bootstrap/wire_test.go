package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igrejaviva/comunidade-api/internal/config"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/router"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:              "test",
		HTTPAddr:         ":0",
		SessionSecret:    "test-secret",
		SessionTTL:       time.Hour,
		BcryptCost:       4,
		DBAddr:           "postgres://localhost/test",
		HTTPReadTimeout:  time.Second,
		HTTPWriteTimeout: time.Second,
		HTTPIdleTimeout:  time.Second,
	}
}

func testDeps(t *testing.T) Deps {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)

	return Deps{
		LoadConfig: func() (*config.Config, error) { return testConfig(), nil },
		NewDB: func(addr string, debug bool) (DBCloser, error) {
			return db, nil
		},
		Migrate: func(ctx context.Context, db *sql.DB) error { return nil },
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

func TestNewServer_ConfigLoadFails(t *testing.T) {
	deps := testDeps(t)
	deps.LoadConfig = func() (*config.Config, error) {
		return nil, errors.New("missing required env var: SESSION_SECRET")
	}

	srv, cleanup, err := NewServerWithDeps(deps)
	assert.Error(t, err)
	assert.Nil(t, srv)
	assert.Nil(t, cleanup)
}

func TestNewServer_DBConnectFails(t *testing.T) {
	deps := testDeps(t)
	deps.NewDB = func(addr string, debug bool) (DBCloser, error) {
		return nil, errors.New("connection refused")
	}

	srv, cleanup, err := NewServerWithDeps(deps)
	assert.Error(t, err)
	assert.Nil(t, srv)
	assert.Nil(t, cleanup)
}

func TestNewServer_MigrateFails_ClosesDB(t *testing.T) {
	deps := testDeps(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	deps.NewDB = func(addr string, debug bool) (DBCloser, error) { return db, nil }
	deps.Migrate = func(ctx context.Context, db *sql.DB) error {
		return errors.New("migration failed")
	}

	srv, _, err := NewServerWithDeps(deps)
	assert.Error(t, err)
	assert.Nil(t, srv)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewServer_WiresFullStack(t *testing.T) {
	srv, cleanup, err := NewServerWithDeps(testDeps(t))
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, ":0", srv.Addr)
	assert.NotNil(t, srv.Handler)
	assert.Equal(t, time.Second, srv.ReadTimeout)
}

func TestNewServer_RouterBuildFails(t *testing.T) {
	deps := testDeps(t)
	deps.NewRouter = func(d router.Deps) (http.Handler, error) {
		return nil, errors.New("bad router deps")
	}

	srv, _, err := NewServerWithDeps(deps)
	assert.Error(t, err)
	assert.Nil(t, srv)
}
