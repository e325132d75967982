package api

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/parakh-labs/parakh/internal/geo"
	"github.com/parakh-labs/parakh/internal/middleware"
	"github.com/parakh-labs/parakh/internal/models"
	"github.com/parakh-labs/parakh/internal/services"
)

type catalogOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

type catalogQuestion struct {
	ID         int             `json:"id"`
	Trait      string          `json:"trait"`
	TraitLabel string          `json:"trait_label"`
	Prompt     string          `json:"prompt"`
	Options    []catalogOption `json:"options"`
}

// handleCatalogQuestions returns the full question schedule in the request
// locale. Option scores are included: the content is a fixed public
// instrument, not a secret.
func (rt *Router) handleCatalogQuestions(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	qs := make([]catalogQuestion, 0, rt.set.N())
	for _, q := range rt.set.Questions {
		opts := make([]catalogOption, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, catalogOption{ID: o.ID, Label: o.Label.In(locale), Score: o.Score})
		}
		qs = append(qs, catalogQuestion{
			ID:         q.ID,
			Trait:      string(q.Trait),
			TraitLabel: q.Trait.Label().In(locale),
			Prompt:     q.Prompt.In(locale),
			Options:    opts,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"locale": locale, "questions": qs})
}

func (rt *Router) handleLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"states": geo.States()})
}

func (rt *Router) handleDialCodes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"dial_codes": geo.DialCodes(),
		"default":    geo.DefaultDialCode,
	})
}

func (rt *Router) handleGenders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"genders": models.Genders()})
}

func (rt *Router) handleStartSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rt.wizard.Start())
}

func (rt *Router) handleSessionView(w http.ResponseWriter, r *http.Request) {
	view, err := rt.wizard.View(r.PathValue("id"))
	if err != nil {
		rt.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (rt *Router) handleChooseLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Locale string `json:"locale"`
	}
	if err := decodeJSON(r, &req); err != nil {
		rt.writeError(w, r, err)
		return
	}
	view, err := rt.wizard.ChooseLanguage(r.PathValue("id"), req.Locale)
	if err != nil {
		rt.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (rt *Router) handleTransliterate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		rt.writeError(w, r, err)
		return
	}
	out, applied, err := rt.wizard.TransliterateName(r.Context(), r.PathValue("id"), req.Text)
	if err != nil {
		rt.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transliteration": out, "applied": applied})
}

func (rt *Router) handlePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var info models.PersonalInfo
	if err := decodeJSON(r, &info); err != nil {
		rt.writeError(w, r, err)
		return
	}
	view, err := rt.wizard.SubmitPersonalInfo(r.PathValue("id"), info)
	if err != nil {
		rt.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (rt *Router) handleAcknowledgeInstructions(w http.ResponseWriter, r *http.Request) {
	view, err := rt.wizard.AcknowledgeInstructions(r.PathValue("id"))
	if err != nil {
		rt.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (rt *Router) handleSelectOption(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OptionID string `json:"option_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		rt.writeError(w, r, err)
		return
	}
	view, err := rt.wizard.SelectOption(r.PathValue("id"), req.OptionID)
	if err != nil {
		rt.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (rt *Router) handleAdvance(w http.ResponseWriter, r *http.Request) {
	view, err := rt.wizard.Advance(r.Context(), r.PathValue("id"))
	if err != nil {
		rt.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (rt *Router) handleResults(w http.ResponseWriter, r *http.Request) {
	res, err := rt.wizard.Results(r.PathValue("id"))
	if err != nil {
		rt.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (rt *Router) handleSessionCertificate(w http.ResponseWriter, r *http.Request) {
	data, err := rt.wizard.CertificateData(r.PathValue("id"))
	if err != nil {
		rt.writeSessionError(w, r, err)
		return
	}
	// The session locale decides the default variant; ?variant= overrides.
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

func (rt *Router) handleRestart(w http.ResponseWriter, r *http.Request) {
	view, err := rt.wizard.Restart(r.PathValue("id"))
	if err != nil {
		rt.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleKeepalive pings the backing database so a hosted free-tier instance
// is not paused for inactivity. It is meant to be hit by an external cron
// and is disabled unless a token is configured.
func (rt *Router) handleKeepalive(w http.ResponseWriter, r *http.Request) {
	if rt.keepaliveToken == "" {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found", Code: string(services.ErrorNotFound)})
		return
	}
	token := r.URL.Query().Get("token")
	if subtle.ConstantTimeCompare([]byte(token), []byte(rt.keepaliveToken)) != 1 {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized", Code: string(services.ErrorUnauthorized)})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	if err := rt.store.Ping(ctx); err != nil {
		rt.logger.Warn("keepalive ping failed", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
