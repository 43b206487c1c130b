package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/igrejaviva/comunidade-api/internal/application/auth"
	"github.com/igrejaviva/comunidade-api/internal/application/community"
	"github.com/igrejaviva/comunidade-api/internal/application/panels"
	"github.com/igrejaviva/comunidade-api/internal/config"
	"github.com/igrejaviva/comunidade-api/internal/infrastructure/db/postgres"
	"github.com/igrejaviva/comunidade-api/internal/infrastructure/security"
	"github.com/igrejaviva/comunidade-api/internal/logger"
	http_handlers "github.com/igrejaviva/comunidade-api/internal/transport/http/handlers"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/middleware"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/response"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string, debug bool) (DBCloser, error)

	Migrate func(ctx context.Context, db *sql.DB) error

	NewRouter func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	sqlDB, ok := db.(*sql.DB)
	if !ok {
		runCleanup(cleanupFns)
		return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
	}

	// 2) schema
	if deps.Migrate != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := deps.Migrate(ctx, sqlDB); err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
	}

	// 3) repos
	userRepo := postgres.NewUserRepo(sqlDB)
	panelRepo := postgres.NewPanelRepo(sqlDB)

	// 4) security
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewSessionSigner(cfg.SessionSecret, "comunidade-api")

	// first-boot admin seed, opt-in via env
	if cfg.SeedAdminEmail != "" && cfg.SeedAdminPassword != "" {
		hash, err := hasher.Hash(cfg.SeedAdminPassword)
		if err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
		if err := postgres.SeedAdmin(context.Background(), sqlDB, cfg.SeedAdminEmail, hash); err != nil {
			logger.Logger.Warn().Err(err).Msg("admin seed failed")
		}
	}

	// 5) services
	authSvc := auth.NewService(userRepo, hasher)
	authSvc = authSvc.WithAudit(func(action string, fields map[string]string) {
		evt := logger.Logger.Info().
			Bool("audit", true).
			Str("action", action)
		for k, v := range fields {
			evt = evt.Str(k, v)
		}
		evt.Msg("audit")
	})

	panelSvc := panels.NewService(panelRepo)

	communitySvc := community.NewService(community.Repos{
		Visitors:      postgres.NewVisitorRepo(sqlDB),
		Prayers:       postgres.NewPrayerRepo(sqlDB),
		Raffles:       postgres.NewRaffleRepo(sqlDB),
		Announcements: postgres.NewAnnouncementRepo(sqlDB),
		Schedules:     postgres.NewScheduleRepo(sqlDB),
		Files:         postgres.NewFileRepo(sqlDB),
	})

	// 6) handlers + middleware
	secureCookies := cfg.Env != "dev"

	authH := http_handlers.NewAuthHandler(authSvc, signer, cfg.SessionTTL, secureCookies)
	panelH := http_handlers.NewPanelHandler(panelSvc)
	communityH := http_handlers.NewCommunityHandler(communitySvc)
	adminH := http_handlers.NewAdminHandler(authSvc)
	healthH := http_handlers.NewHealthHandler(sqlDB)

	sessionMW := middleware.Session(signer, userRepo)
	userMW := middleware.RequireUser(response.WriteError)
	adminMW := middleware.RequireAtLeast("admin", response.WriteError)

	// 7) router
	mux, err := deps.NewRouter(router.Deps{
		Health:    healthH,
		Auth:      authH,
		Panels:    panelH,
		Community: communityH,
		Admin:     adminH,

		RequestIDMW: middleware.RequestID,
		SessionMW:   sessionMW,
		UserMW:      userMW,
		AdminMW:     adminMW,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 8) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(addr string, debug bool) (DBCloser, error) {
			return config.NewDB(addr, debug)
		},
		Migrate: postgres.Migrate,
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
