package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/parakh-labs/parakh/internal/catalog"
	"github.com/parakh-labs/parakh/internal/middleware"
	"github.com/parakh-labs/parakh/internal/services"
	"github.com/parakh-labs/parakh/internal/utils"
)

// Router wires the HTTP surface to the services.
type Router struct {
	set            *catalog.Set
	store          Store
	wizard         *services.WizardService
	certs          *services.CertificateService
	auth           *services.AuthService
	export         *services.ExportService
	analytics      *services.AnalyticsService
	keepaliveToken string
	logger         *slog.Logger
}

// RouterDeps carries the services the router dispatches to.
type RouterDeps struct {
	Set            *catalog.Set
	Store          Store
	Wizard         *services.WizardService
	Certificates   *services.CertificateService
	Auth           *services.AuthService
	Export         *services.ExportService
	Analytics      *services.AnalyticsService
	KeepaliveToken string
	Logger         *slog.Logger
}

func NewRouter(d RouterDeps) *Router {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		set:            d.Set,
		store:          d.Store,
		wizard:         d.Wizard,
		certs:          d.Certificates,
		auth:           d.Auth,
		export:         d.Export,
		analytics:      d.Analytics,
		keepaliveToken: d.KeepaliveToken,
		logger:         logger,
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	// reference data for the form and question screens
	mux.HandleFunc("GET /api/catalog/questions", rt.handleCatalogQuestions)
	mux.HandleFunc("GET /api/meta/locations", rt.handleLocations)
	mux.HandleFunc("GET /api/meta/dial-codes", rt.handleDialCodes)
	mux.HandleFunc("GET /api/meta/genders", rt.handleGenders)

	// wizard sessions
	mux.HandleFunc("POST /api/sessions", rt.handleStartSession)
	mux.HandleFunc("GET /api/sessions/{id}", rt.handleSessionView)
	mux.HandleFunc("POST /api/sessions/{id}/language", rt.handleChooseLanguage)
	mux.HandleFunc("POST /api/sessions/{id}/transliterate", rt.handleTransliterate)
	mux.HandleFunc("POST /api/sessions/{id}/personal-info", rt.handlePersonalInfo)
	mux.HandleFunc("POST /api/sessions/{id}/instructions/ack", rt.handleAcknowledgeInstructions)
	mux.HandleFunc("POST /api/sessions/{id}/select", rt.handleSelectOption)
	mux.HandleFunc("POST /api/sessions/{id}/advance", rt.handleAdvance)
	mux.HandleFunc("GET /api/sessions/{id}/results", rt.handleResults)
	mux.HandleFunc("GET /api/sessions/{id}/certificate", rt.handleSessionCertificate)
	mux.HandleFunc("POST /api/sessions/{id}/restart", rt.handleRestart)

	// anti-pause ping for the hosted database
	mux.HandleFunc("GET /api/keepalive", rt.handleKeepalive)

	// operator surface
	mux.HandleFunc("POST /api/admin/register", rt.handleAdminRegister)
	mux.HandleFunc("POST /api/admin/login", rt.handleAdminLogin)
	mux.Handle("GET /api/admin/submissions", rt.admin(rt.handleAdminSubmissions))
	mux.Handle("GET /api/admin/submissions/{id}", rt.admin(rt.handleAdminSubmission))
	mux.Handle("GET /api/admin/submissions/{id}/certificate", rt.admin(rt.handleAdminSubmissionCertificate))
	mux.Handle("GET /api/admin/export", rt.admin(rt.handleAdminExport))
	mux.Handle("GET /api/admin/metrics/summary", rt.admin(rt.handleAdminMetricsSummary))
}

func (rt *Router) admin(h http.HandlerFunc) http.Handler {
	return middleware.WithAuth(middleware.RequireAuth(h))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

func statusFor(code services.ErrorCode) int {
	switch code {
	case services.ErrorInvalid:
		return http.StatusBadRequest
	case services.ErrorUnauthorized:
		return http.StatusUnauthorized
	case services.ErrorForbidden:
		return http.StatusForbidden
	case services.ErrorNotFound:
		return http.StatusNotFound
	case services.ErrorConflict:
		return http.StatusConflict
	case services.ErrorTooManyRequests:
		return http.StatusTooManyRequests
	case services.ErrorBadGateway:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (rt *Router) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if se, ok := services.AsServiceError(err); ok {
		writeJSON(w, statusFor(se.Code), errorBody{Error: se.Message, Code: string(se.Code), Fields: se.Fields})
		return
	}
	rt.logger.Error("request failed", "path", r.URL.Path, "err", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error", Code: "internal"})
}

// writeSessionError localizes the unknown-session case; service messages for
// live sessions already come localized.
func (rt *Router) writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	if se, ok := services.AsServiceError(err); ok && se.Code == services.ErrorNotFound {
		locale := middleware.LocaleFromContext(r.Context())
		writeJSON(w, http.StatusNotFound, errorBody{Error: utils.T(locale, "wizard.session_not_found"), Code: string(se.Code)})
		return
	}
	rt.writeError(w, r, err)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return services.NewInvalidError("invalid JSON body")
	}
	return nil
}
