package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"slimcoach/internal/adapter/gemini"
	adapthttp "slimcoach/internal/adapter/http"
	"slimcoach/internal/adapter/memory"
	"slimcoach/internal/adapter/postgres"
	"slimcoach/internal/app"
	"slimcoach/internal/config"
	"slimcoach/internal/domain"
	"slimcoach/internal/i18n"
	"slimcoach/internal/logging"
	"slimcoach/internal/metrics"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"), env("ENV", "development"))
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.SetupParams{
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
		Environment:   cfg.Environment,
		SentryEnabled: cfg.SentryEnabled,
		SentryDSN:     cfg.SentryDSN,
	})

	var (
		profiles domain.ProfileRepository
		users    domain.UserRepository
		sessions domain.SessionRepository
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open: %s", err)
		}
		defer func() { _ = db.Close() }()
		profiles, users, sessions = db, db, postgres.NewSessionRepo(db)
		log.Info("using postgres storage")
	} else {
		db := memory.New()
		profiles, users, sessions = db, db, memory.NewSessionRepo(db)
		log.Warn("DATABASE_URL not set, using in-memory storage")
	}

	m := metrics.NewManager("slimcoach")

	tracker := app.NewTrackerService(profiles, m)
	report := app.NewReportService(profiles, i18n.Default)
	advice := app.NewAdviceService(
		gemini.NewClient(cfg.AdviceBaseURL, cfg.AdviceAPIKey, cfg.AdviceModel, http.DefaultClient),
		m, 0,
	)
	authSvc := app.NewAuthService(users, sessions)

	oidcConfig := adapthttp.OIDCConfig{}
	if cfg.OIDCEnabled {
		provider, err := oidc.NewProvider(context.Background(), cfg.OIDCIssuer)
		if err != nil {
			log.Fatalf("oidc provider: %s", err)
		}
		oidcConfig = adapthttp.OIDCConfig{
			Enabled:  true,
			Provider: provider,
			OAuth2Config: &oauth2.Config{
				ClientID:     cfg.OIDCClientID,
				ClientSecret: cfg.OIDCClientSecret,
				RedirectURL:  cfg.OIDCRedirectURL,
				Endpoint:     provider.Endpoint(),
				Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
			},
		}
	}

	c := cron.New()
	if err := c.AddFunc("@daily", func() {
		if err := authSvc.PurgeExpiredSessions(context.Background()); err != nil {
			log.Errorf("purge expired sessions: %s", err)
		}
	}); err != nil {
		log.Fatalf("cron: %s", err)
	}
	c.Start()
	defer c.Stop()

	srv := adapthttp.New(tracker, report, advice, authSvc, m, oidcConfig, cfg.WebDir)
	log.Infof("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
