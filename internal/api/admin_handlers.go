package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/parakh-labs/parakh/internal/services"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
}

func (rt *Router) handleAdminRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		rt.writeError(w, r, err)
		return
	}
	res, err := rt.auth.Register(req.Email, req.Password)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: res.Token, AdminID: res.AdminID, Email: res.Email})
}

func (rt *Router) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		rt.writeError(w, r, err)
		return
	}
	res, err := rt.auth.Login(req.Email, req.Password)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: res.Token, AdminID: res.AdminID, Email: res.Email})
}

func (rt *Router) handleAdminSubmissions(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)
	if limit < 0 || offset < 0 {
		rt.writeError(w, r, services.NewInvalidError("limit and offset must be non-negative"))
		return
	}
	recs, err := rt.store.ListSubmissions(r.Context(), limit, offset)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	total, err := rt.store.CountSubmissions(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"submissions": recs, "total": total})
}

func (rt *Router) handleAdminSubmission(w http.ResponseWriter, r *http.Request) {
	rec, err := rt.store.GetSubmission(r.Context(), r.PathValue("id"))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	if rec == nil {
		rt.writeError(w, r, services.NewNotFoundError("submission not found"))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (rt *Router) handleAdminSubmissionCertificate(w http.ResponseWriter, r *http.Request) {
	rec, err := rt.store.GetSubmission(r.Context(), r.PathValue("id"))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	if rec == nil {
		rt.writeError(w, r, services.NewNotFoundError("submission not found"))
		return
	}
	data := services.CertificateDataFromRecord(rt.set, rec)
	variant, err := services.ParseCertificateVariant(r.URL.Query().Get("variant"), data.Locale)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	page, err := rt.certs.Render(data, variant)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func (rt *Router) handleAdminExport(w http.ResponseWriter, r *http.Request) {
	res, err := rt.export.ExportCSV(r.Context(), r.URL.Query().Get("format"))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}

func (rt *Router) handleAdminMetricsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := rt.analytics.Summary(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// queryInt reads an integer query parameter, keeping def when the parameter
// is absent or malformed.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
