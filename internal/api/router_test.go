package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/parakh-labs/parakh/internal/catalog"
	"github.com/parakh-labs/parakh/internal/middleware"
	"github.com/parakh-labs/parakh/internal/models"
	"github.com/parakh-labs/parakh/internal/services"
	"github.com/parakh-labs/parakh/internal/utils"
)

type testEnv struct {
	set     *catalog.Set
	store   *MemoryStore
	handler http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvToken(t, "cron-secret")
}

func newTestEnvToken(t *testing.T, keepaliveToken string) *testEnv {
	t.Helper()
	set := catalog.Default()
	store := NewMemoryStore()
	engine := services.NewEngine(set)
	translit := services.NewTransliterationService("", 0, nil)
	wizard := services.NewWizardService(set, engine, store, translit, services.WizardConfig{})
	certs, err := services.NewCertificateService()
	if err != nil {
		t.Fatalf("NewCertificateService: %v", err)
	}
	rt := NewRouter(RouterDeps{
		Set:            set,
		Store:          store,
		Wizard:         wizard,
		Certificates:   certs,
		Auth:           services.NewAuthService(store, middleware.SignToken),
		Export:         services.NewExportService(store),
		Analytics:      services.NewAnalyticsService(set, store),
		KeepaliveToken: keepaliveToken,
	})
	mux := http.NewServeMux()
	rt.Register(mux)
	return &testEnv{set: set, store: store, handler: middleware.LocaleMiddleware(mux)}
}

func (e *testEnv) request(t *testing.T, method, path string, body any, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func mustStatus(t *testing.T, res *httptest.ResponseRecorder, want int) {
	t.Helper()
	if res.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", res.Code, want, res.Body.String())
	}
}

func decode(t *testing.T, res *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(res.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", res.Body.String(), err)
	}
}

// bestOptionID returns the score-3 option of the question at index.
func bestOptionID(t *testing.T, set *catalog.Set, index int) string {
	t.Helper()
	q, ok := set.QuestionAt(index)
	if !ok {
		t.Fatalf("no question at index %d", index)
	}
	for _, o := range q.Options {
		if o.Score == 3 {
			return o.ID
		}
	}
	t.Fatalf("question %d has no score-3 option", q.ID)
	return ""
}

func TestAssessmentJourneyOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	var view services.SessionView
	res := env.request(t, http.MethodPost, "/api/sessions", nil, "")
	mustStatus(t, res, http.StatusOK)
	decode(t, res, &view)
	if view.Step != "language_select" || view.ID == "" {
		t.Fatalf("fresh session = %+v", view)
	}
	base := "/api/sessions/" + view.ID

	res = env.request(t, http.MethodPost, base+"/language", map[string]string{"locale": "en"}, "")
	mustStatus(t, res, http.StatusOK)
	decode(t, res, &view)
	if view.Step != "personal_info" {
		t.Fatalf("after language: step = %q", view.Step)
	}

	info := map[string]any{
		"name":     "Asha Kumari",
		"age":      21,
		"mobile":   "9876543210",
		"state":    "Rajasthan",
		"district": "Jaipur",
	}
	res = env.request(t, http.MethodPost, base+"/personal-info", info, "")
	mustStatus(t, res, http.StatusOK)
	decode(t, res, &view)
	if view.Step != "instructions" || view.Instructions == nil {
		t.Fatalf("after personal info: %+v", view)
	}

	res = env.request(t, http.MethodPost, base+"/instructions/ack", nil, "")
	mustStatus(t, res, http.StatusOK)
	decode(t, res, &view)
	if view.Step != "question" || view.Question == nil || view.Question.Index != 0 {
		t.Fatalf("after ack: %+v", view)
	}

	for i := 0; i < env.set.N(); i++ {
		res = env.request(t, http.MethodPost, base+"/select", map[string]string{"option_id": bestOptionID(t, env.set, i)}, "")
		mustStatus(t, res, http.StatusOK)
		decode(t, res, &view)
		if view.Question == nil || view.Question.Feedback == "" {
			t.Fatalf("question %d: selecting showed no feedback: %+v", i, view)
		}
		res = env.request(t, http.MethodPost, base+"/advance", nil, "")
		mustStatus(t, res, http.StatusOK)
		decode(t, res, &view)
	}
	if view.Step != "results" {
		t.Fatalf("after last advance: step = %q", view.Step)
	}

	var results services.ResultsView
	res = env.request(t, http.MethodGet, base+"/results", nil, "")
	mustStatus(t, res, http.StatusOK)
	decode(t, res, &results)
	if results.TotalScore != env.set.MaxTotal() || results.MaxScore != env.set.MaxTotal() {
		t.Errorf("total = %d/%d, want %d", results.TotalScore, results.MaxScore, env.set.MaxTotal())
	}
	if len(results.Lines) != env.set.N() {
		t.Errorf("got %d result lines, want %d", len(results.Lines), env.set.N())
	}
	if len(results.TraitScores) != len(env.set.TraitOrder()) {
		t.Errorf("got %d trait scores, want %d", len(results.TraitScores), len(env.set.TraitOrder()))
	}
	if results.SubmissionID == "" {
		t.Error("results carry no submission id after a successful store")
	}
	if results.Notice != "" {
		t.Errorf("unexpected notice: %q", results.Notice)
	}

	count, err := env.store.CountSubmissions(context.Background())
	if err != nil || count != 1 {
		t.Fatalf("stored submissions = %d, %v; want 1", count, err)
	}

	res = env.request(t, http.MethodGet, base+"/certificate?variant=both", nil, "")
	mustStatus(t, res, http.StatusOK)
	if ct := res.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("certificate Content-Type = %q", ct)
	}
	if !strings.Contains(res.Body.String(), "Asha Kumari") {
		t.Error("certificate does not show the respondent's name")
	}

	res = env.request(t, http.MethodPost, base+"/restart", nil, "")
	mustStatus(t, res, http.StatusOK)
	decode(t, res, &view)
	if view.Step != "done" {
		t.Fatalf("after restart: step = %q", view.Step)
	}

	res = env.request(t, http.MethodGet, base, nil, "")
	mustStatus(t, res, http.StatusNotFound)
}

func TestPersonalInfoValidationOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	var view services.SessionView
	res := env.request(t, http.MethodPost, "/api/sessions", nil, "")
	mustStatus(t, res, http.StatusOK)
	decode(t, res, &view)
	base := "/api/sessions/" + view.ID

	res = env.request(t, http.MethodPost, base+"/language", map[string]string{"locale": "en"}, "")
	mustStatus(t, res, http.StatusOK)

	res = env.request(t, http.MethodPost, base+"/personal-info", map[string]any{"name": "A", "age": 0, "mobile": "12", "state": "Nowhere", "district": "Nowhere"}, "")
	mustStatus(t, res, http.StatusBadRequest)
	var body struct {
		Error  string            `json:"error"`
		Code   string            `json:"code"`
		Fields map[string]string `json:"fields"`
	}
	decode(t, res, &body)
	if body.Code != "invalid" {
		t.Errorf("code = %q, want invalid", body.Code)
	}
	if len(body.Fields) == 0 {
		t.Error("field errors missing from the response")
	}
}

func TestStepConflictMapsTo409(t *testing.T) {
	env := newTestEnv(t)

	var view services.SessionView
	res := env.request(t, http.MethodPost, "/api/sessions", nil, "")
	mustStatus(t, res, http.StatusOK)
	decode(t, res, &view)
	base := "/api/sessions/" + view.ID

	res = env.request(t, http.MethodPost, base+"/language", map[string]string{"locale": "en"}, "")
	mustStatus(t, res, http.StatusOK)
	info := map[string]any{"name": "Asha Kumari", "age": 21, "mobile": "9876543210", "state": "Rajasthan", "district": "Jaipur"}
	res = env.request(t, http.MethodPost, base+"/personal-info", info, "")
	mustStatus(t, res, http.StatusOK)

	res = env.request(t, http.MethodPost, base+"/personal-info", info, "")
	mustStatus(t, res, http.StatusConflict)
}

func TestUnknownSessionErrorIsLocalized(t *testing.T) {
	env := newTestEnv(t)

	res := env.request(t, http.MethodGet, "/api/sessions/nope?lang=hi", nil, "")
	mustStatus(t, res, http.StatusNotFound)
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	decode(t, res, &body)
	if body.Error != utils.T("hi", "wizard.session_not_found") {
		t.Errorf("error = %q, want the Hindi session-not-found message", body.Error)
	}
	if body.Code != "not_found" {
		t.Errorf("code = %q", body.Code)
	}
}

func TestCatalogQuestionsLocalized(t *testing.T) {
	env := newTestEnv(t)

	var body struct {
		Locale    string `json:"locale"`
		Questions []struct {
			ID      int    `json:"id"`
			Prompt  string `json:"prompt"`
			Options []struct {
				ID    string `json:"id"`
				Label string `json:"label"`
				Score int    `json:"score"`
			} `json:"options"`
		} `json:"questions"`
	}

	res := env.request(t, http.MethodGet, "/api/catalog/questions?lang=hi", nil, "")
	mustStatus(t, res, http.StatusOK)
	decode(t, res, &body)
	if body.Locale != "hi" {
		t.Fatalf("locale = %q, want hi", body.Locale)
	}
	if len(body.Questions) != env.set.N() {
		t.Fatalf("got %d questions, want %d", len(body.Questions), env.set.N())
	}
	if body.Questions[0].Prompt != env.set.Questions[0].Prompt.HI {
		t.Errorf("prompt = %q, want the Hindi text", body.Questions[0].Prompt)
	}
	scores := map[int]bool{}
	for _, o := range body.Questions[0].Options {
		scores[o.Score] = true
	}
	if !scores[1] || !scores[2] || !scores[3] {
		t.Errorf("option scores missing: %v", scores)
	}

	res = env.request(t, http.MethodGet, "/api/catalog/questions", nil, "")
	mustStatus(t, res, http.StatusOK)
	decode(t, res, &body)
	if body.Locale != "en" || body.Questions[0].Prompt != env.set.Questions[0].Prompt.EN {
		t.Errorf("default locale = %q, prompt = %q", body.Locale, body.Questions[0].Prompt)
	}
}

func TestMetaEndpoints(t *testing.T) {
	env := newTestEnv(t)

	res := env.request(t, http.MethodGet, "/api/meta/locations", nil, "")
	mustStatus(t, res, http.StatusOK)
	var locs struct {
		States []struct {
			Name      string   `json:"name"`
			Districts []string `json:"districts"`
		} `json:"states"`
	}
	decode(t, res, &locs)
	if len(locs.States) == 0 || len(locs.States[0].Districts) == 0 {
		t.Fatalf("locations payload empty: %+v", locs)
	}

	res = env.request(t, http.MethodGet, "/api/meta/dial-codes", nil, "")
	mustStatus(t, res, http.StatusOK)
	var codes struct {
		DialCodes []struct {
			Code    string `json:"code"`
			Country string `json:"country"`
		} `json:"dial_codes"`
		Default string `json:"default"`
	}
	decode(t, res, &codes)
	if codes.Default != "+91" || len(codes.DialCodes) == 0 {
		t.Fatalf("dial codes payload: %+v", codes)
	}

	res = env.request(t, http.MethodGet, "/api/meta/genders", nil, "")
	mustStatus(t, res, http.StatusOK)
	var genders struct {
		Genders []string `json:"genders"`
	}
	decode(t, res, &genders)
	if len(genders.Genders) != 4 || genders.Genders[3] != models.GenderDefault {
		t.Fatalf("genders payload: %+v", genders)
	}
}

func TestKeepalive(t *testing.T) {
	env := newTestEnv(t)

	res := env.request(t, http.MethodGet, "/api/keepalive", nil, "")
	mustStatus(t, res, http.StatusUnauthorized)

	res = env.request(t, http.MethodGet, "/api/keepalive?token=wrong", nil, "")
	mustStatus(t, res, http.StatusUnauthorized)

	res = env.request(t, http.MethodGet, "/api/keepalive?token=cron-secret", nil, "")
	mustStatus(t, res, http.StatusOK)
	var body struct {
		Status string `json:"status"`
	}
	decode(t, res, &body)
	if body.Status != "ok" {
		t.Fatalf("status = %q", body.Status)
	}
}

func TestKeepaliveDisabledWithoutToken(t *testing.T) {
	env := newTestEnvToken(t, "")

	res := env.request(t, http.MethodGet, "/api/keepalive?token=anything", nil, "")
	mustStatus(t, res, http.StatusNotFound)
}

func TestAdminEndpoints(t *testing.T) {
	env := newTestEnv(t)

	res := env.request(t, http.MethodGet, "/api/admin/submissions", nil, "")
	mustStatus(t, res, http.StatusUnauthorized)

	creds := map[string]string{"email": "ops@example.com", "password": "swordfish1"}
	res = env.request(t, http.MethodPost, "/api/admin/register", creds, "")
	mustStatus(t, res, http.StatusOK)
	var auth authResponse
	decode(t, res, &auth)
	if auth.Token == "" || auth.Email != "ops@example.com" {
		t.Fatalf("register response: %+v", auth)
	}

	// registration closes after the first account
	res = env.request(t, http.MethodPost, "/api/admin/register", map[string]string{"email": "two@example.com", "password": "swordfish1"}, "")
	mustStatus(t, res, http.StatusForbidden)

	res = env.request(t, http.MethodPost, "/api/admin/login", map[string]string{"email": "ops@example.com", "password": "wrong-pass"}, "")
	mustStatus(t, res, http.StatusUnauthorized)

	res = env.request(t, http.MethodPost, "/api/admin/login", creds, "")
	mustStatus(t, res, http.StatusOK)
	decode(t, res, &auth)
	if auth.Token == "" {
		t.Fatal("login returned no token")
	}

	id, err := env.store.AddSubmission(context.Background(), sampleRecord("Meera Devi"))
	if err != nil {
		t.Fatalf("seed submission: %v", err)
	}

	res = env.request(t, http.MethodGet, "/api/admin/submissions", nil, auth.Token)
	mustStatus(t, res, http.StatusOK)
	var list struct {
		Submissions []*models.SubmissionRecord `json:"submissions"`
		Total       int                        `json:"total"`
	}
	decode(t, res, &list)
	if list.Total != 1 || len(list.Submissions) != 1 || list.Submissions[0].ID != id {
		t.Fatalf("list = %+v", list)
	}

	res = env.request(t, http.MethodGet, "/api/admin/submissions/"+id, nil, auth.Token)
	mustStatus(t, res, http.StatusOK)
	var rec models.SubmissionRecord
	decode(t, res, &rec)
	if rec.Info.Name != "Meera Devi" {
		t.Errorf("record name = %q", rec.Info.Name)
	}

	res = env.request(t, http.MethodGet, "/api/admin/submissions/unknown-id", nil, auth.Token)
	mustStatus(t, res, http.StatusNotFound)

	res = env.request(t, http.MethodGet, "/api/admin/submissions/"+id+"/certificate", nil, auth.Token)
	mustStatus(t, res, http.StatusOK)
	if !strings.Contains(res.Body.String(), "Meera Devi") {
		t.Error("admin certificate does not show the respondent's name")
	}

	res = env.request(t, http.MethodGet, "/api/admin/export?format=score", nil, auth.Token)
	mustStatus(t, res, http.StatusOK)
	if cd := res.Header().Get("Content-Disposition"); !strings.Contains(cd, "submissions_score.csv") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.Contains(res.Body.String(), id) {
		t.Error("export does not include the stored submission")
	}

	res = env.request(t, http.MethodGet, "/api/admin/export?format=bogus", nil, auth.Token)
	mustStatus(t, res, http.StatusBadRequest)

	res = env.request(t, http.MethodGet, "/api/admin/metrics/summary", nil, auth.Token)
	mustStatus(t, res, http.StatusOK)
	var summary struct {
		TotalSubmissions int `json:"total_submissions"`
	}
	decode(t, res, &summary)
	if summary.TotalSubmissions != 1 {
		t.Errorf("total_submissions = %d, want 1", summary.TotalSubmissions)
	}
}

func TestTransliterateEndpointEchoesWhenDisabled(t *testing.T) {
	env := newTestEnv(t)

	var view services.SessionView
	res := env.request(t, http.MethodPost, "/api/sessions", nil, "")
	mustStatus(t, res, http.StatusOK)
	decode(t, res, &view)
	base := "/api/sessions/" + view.ID

	res = env.request(t, http.MethodPost, base+"/language", map[string]string{"locale": "hi"}, "")
	mustStatus(t, res, http.StatusOK)

	res = env.request(t, http.MethodPost, base+"/transliterate", map[string]string{"text": "Asha"}, "")
	mustStatus(t, res, http.StatusOK)
	var body struct {
		Transliteration string `json:"transliteration"`
		Applied         bool   `json:"applied"`
	}
	decode(t, res, &body)
	if body.Transliteration != "Asha" {
		t.Errorf("transliteration = %q, want the echoed input", body.Transliteration)
	}
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	env := newTestEnv(t)

	res := env.request(t, http.MethodGet, "/api/sessions", nil, "")
	mustStatus(t, res, http.StatusMethodNotAllowed)

	res = env.request(t, http.MethodPost, "/api/catalog/questions", nil, "")
	mustStatus(t, res, http.StatusMethodNotAllowed)
}
