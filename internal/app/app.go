package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/openslp/trialtrack-backend/internal/config"
	"github.com/openslp/trialtrack-backend/internal/kv"
	"github.com/openslp/trialtrack-backend/internal/observability"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/state"
)

type App struct {
	Log      *logger.Logger
	Cfg      *config.Config
	KV       kv.Store
	Mirror   *state.Mirror
	Stores   Stores
	Services Services

	server       *http.Server
	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	otelShutdown := observability.InitTracing(context.Background(), log, observability.OtelConfig{
		Enabled:     cfg.OtelEnabled,
		Endpoint:    cfg.OtelEndpoint,
		Environment: cfg.Env,
		SampleRatio: cfg.OtelSampleRatio,
	})

	kvs, err := kv.NewRedis(cfg.RedisAddr)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init redis: %w", err)
	}

	defaults, err := config.LoadSettingsDefaults(cfg.SettingsDefaultsPath)
	if err != nil {
		log.Sync()
		return nil, err
	}

	passcodeHash := []byte(cfg.PairPasscodeHash)
	if len(passcodeHash) == 0 {
		passcodeHash, err = bcrypt.GenerateFromPassword([]byte(cfg.PairPasscode), bcrypt.DefaultCost)
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("hash pairing passcode: %w", err)
		}
		log.Warn("PAIR_PASSCODE_HASH unset, using PAIR_PASSCODE (development only)")
	}

	storeset := wireStores(kvs, log, defaults)
	mirror := state.NewMirror()
	serviceset := wireServices(log, cfg, storeset, mirror, passcodeHash)

	ctx := context.Background()
	if cfg.ReconcileOnStart {
		report, err := serviceset.Reconcile.Run(ctx, false)
		if err != nil {
			log.Warn("startup reconcile failed", "error", err)
		} else if report.OrphanedGoals > 0 || report.OrphanedSessions > 0 {
			log.Info("startup reconcile dropped orphans",
				"orphaned_goals", report.OrphanedGoals,
				"orphaned_sessions", report.OrphanedSessions)
		}
	}

	if err := mirror.Reload(ctx, storeset.Clients, storeset.Goals, storeset.Sessions, storeset.Settings); err != nil {
		log.Sync()
		return nil, fmt.Errorf("load state mirror: %w", err)
	}

	handlerset := wireHandlers(serviceset)
	mw := wireMiddleware(log, serviceset)
	router := wireRouter(cfg, handlerset, mw)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	return &App{
		Log:          log,
		Cfg:          cfg,
		KV:           kvs,
		Mirror:       mirror,
		Stores:       storeset,
		Services:     serviceset,
		server:       srv,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	a.Log.Info("listening", "addr", a.Cfg.HTTPAddr)
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		_ = a.server.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.otelShutdown(ctx)
	}
	if a.KV != nil {
		_ = a.KV.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
