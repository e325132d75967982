package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/parakh-labs/parakh/internal/api"
	"github.com/parakh-labs/parakh/internal/catalog"
	"github.com/parakh-labs/parakh/internal/config"
	"github.com/parakh-labs/parakh/internal/db"
	"github.com/parakh-labs/parakh/internal/logger"
	"github.com/parakh-labs/parakh/internal/middleware"
	"github.com/parakh-labs/parakh/internal/services"
	"github.com/parakh-labs/parakh/internal/utils"
)

// Set at build time via -ldflags.
var (
	commit    = "dev"
	buildTime = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	log := logger.Setup(cfg.Log.Level)
	if err := run(cfg, log); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	set := catalog.Default()
	if err := set.Validate(); err != nil {
		return fmt.Errorf("question catalog: %w", err)
	}

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	engine := services.NewEngine(set)
	translit := services.NewTransliterationService(cfg.Translit.URL, cfg.Translit.Timeout, nil)
	wizard := services.NewWizardService(set, engine, store, translit, services.WizardConfig{
		SessionTTL:  cfg.Wizard.SessionTTL,
		SinkTimeout: cfg.Wizard.SinkTimeout,
		Logger:      log,
	})
	certs, err := services.NewCertificateService()
	if err != nil {
		return fmt.Errorf("certificate templates: %w", err)
	}

	router := api.NewRouter(api.RouterDeps{
		Set:            set,
		Store:          store,
		Wizard:         wizard,
		Certificates:   certs,
		Auth:           services.NewAuthService(store, middleware.SignToken),
		Export:         services.NewExportService(store),
		Analytics:      services.NewAnalyticsService(set, store),
		KeepaliveToken: cfg.Server.KeepaliveToken,
		Logger:         log,
	})

	mux := http.NewServeMux()
	router.Register(mux)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		locale := middleware.LocaleFromContext(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":         true,
			"name":       "Parakh API",
			"locale":     locale,
			"msg":        utils.T(locale, "health.ok"),
			"commit":     commit,
			"build_time": buildTime,
		})
	})
	mux.HandleFunc("GET /version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	registerFrontend(mux, cfg, log)

	handler := middleware.RequestLog(log)(
		middleware.NoStore(middleware.SecureHeaders(middleware.CORS(middleware.LocaleMiddleware(mux)))))

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.TimeoutRead,
		WriteTimeout: cfg.Server.TimeoutWrite,
		IdleTimeout:  cfg.Server.TimeoutIdle,
	}

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweepLoop(sweepCtx, wizard, cfg.Wizard.SweepInterval, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Server.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore picks the submission store: Postgres when a database URL is
// configured, the SQLite file when a path is, and process memory otherwise.
func openStore(cfg *config.Config, log *slog.Logger) (api.Store, func(), error) {
	switch {
	case cfg.Database.URL != "":
		sqlDB, err := db.OpenPostgres(cfg.Database.URL, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(sqlDB, db.DialectPostgres, cfg.Database.MigrationsDir); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("postgres migrations: %w", err)
		}
		store, err := db.NewPostgresStore(sqlDB)
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		log.Info("using postgres store")
		return store, func() { _ = sqlDB.Close() }, nil

	case cfg.Database.SQLitePath != "":
		sqlDB, err := db.OpenSQLite(cfg.Database.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(sqlDB, db.DialectSQLite, cfg.Database.MigrationsDir); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("sqlite migrations: %w", err)
		}
		store, err := db.NewSQLiteStore(sqlDB)
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		log.Info("using sqlite store", "path", cfg.Database.SQLitePath)
		return store, func() { _ = sqlDB.Close() }, nil

	default:
		log.Warn("no database configured, submissions are kept in memory only")
		return api.NewMemoryStore(), func() {}, nil
	}
}

// registerFrontend serves the built frontend when a static dir is
// configured, or proxies to the dev server so API and UI share an origin
// during development.
func registerFrontend(mux *http.ServeMux, cfg *config.Config, log *slog.Logger) {
	if cfg.Server.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.Server.StaticDir)))
		return
	}
	if cfg.Server.DevFrontendURL == "" {
		return
	}
	u, err := url.Parse(cfg.Server.DevFrontendURL)
	if err != nil {
		log.Warn("invalid dev frontend url", "url", cfg.Server.DevFrontendURL, "err", err)
		return
	}
	rp := httputil.NewSingleHostReverseProxy(u)
	rp.ModifyResponse = func(res *http.Response) error {
		res.Header.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		res.Header.Set("Pragma", "no-cache")
		res.Header.Set("Expires", "0")
		return nil
	}
	mux.Handle("/", rp)
}

func sweepLoop(ctx context.Context, wizard *services.WizardService, interval time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := wizard.Sweep(now.UTC()); n > 0 {
				log.Info("swept idle sessions", "removed", n, "active", wizard.ActiveSessions())
			}
		}
	}
}
