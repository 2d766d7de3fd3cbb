package adapthttp

import (
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"slimcoach/internal/app"
	"slimcoach/internal/metrics"
)

// OIDCConfig carries the SSO provider wiring. Enabled false disables the
// SSO endpoints entirely.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	tracker *app.TrackerService
	report  *app.ReportService
	advice  *app.AdviceService
	authSvc *app.AuthService
	metrics *metrics.Manager

	oidcConfig  OIDCConfig
	disableAuth bool
	webDir      string
}

// New creates a Server wired to the given application services.
func New(tracker *app.TrackerService, report *app.ReportService, advice *app.AdviceService, authSvc *app.AuthService, m *metrics.Manager, oidcConfig OIDCConfig, webDir string) *Server {
	return &Server{
		tracker:    tracker,
		report:     report,
		advice:     advice,
		authSvc:    authSvc,
		metrics:    m,
		oidcConfig: oidcConfig,
		webDir:     webDir,
	}
}

// WithoutAuth disables session validation. Used by tests.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/setup", s.handleSetupUser)
	api.HandleFunc("/auth/config", s.handleConfig)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	protected := http.NewServeMux()
	protected.HandleFunc("/profile", s.handleProfile)
	protected.HandleFunc("/profile/target", s.handleProfileTarget)
	protected.HandleFunc("/weight", s.handleWeight)
	protected.HandleFunc("/weight/recent", s.handleWeightRecent)
	protected.HandleFunc("/day/diet", s.handleToggleDiet)
	protected.HandleFunc("/day/workout", s.handleToggleWorkout)
	protected.HandleFunc("/water/toggle", s.handleWaterToggle)
	protected.HandleFunc("/water/today", s.handleWaterToday)
	protected.HandleFunc("/dashboard", s.handleDashboard)
	protected.HandleFunc("/report/weekly", s.handleWeeklyReport)
	protected.HandleFunc("/advice", s.handleAdvice)
	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/metrics", s.metrics.Handler())
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
