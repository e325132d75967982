//go:build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL() string {
	if v := os.Getenv("PARAKH_TEST_BASE_URL"); strings.TrimSpace(v) != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://127.0.0.1:18080"
}

type sessionView struct {
	ID       string `json:"id"`
	Step     string `json:"step"`
	Answered int    `json:"answered"`
	Total    int    `json:"total"`
	Question *struct {
		Index    int    `json:"index"`
		ID       int    `json:"id"`
		Feedback string `json:"feedback"`
	} `json:"question"`
}

func TestAssessmentJourneyIntegration(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	base := baseURL()

	// The catalog carries option scores, so the test can walk a perfect run.
	var cat struct {
		Questions []struct {
			ID      int `json:"id"`
			Options []struct {
				ID    string `json:"id"`
				Score int    `json:"score"`
			} `json:"options"`
		} `json:"questions"`
	}
	doGet(t, client, base+"/api/catalog/questions", &cat)
	if len(cat.Questions) == 0 {
		t.Fatal("catalog returned no questions")
	}
	bestOption := map[int]string{}
	for _, q := range cat.Questions {
		for _, o := range q.Options {
			if o.Score == 3 {
				bestOption[q.ID] = o.ID
			}
		}
	}

	var view sessionView
	doPost(t, client, base+"/api/sessions", map[string]any{}, &view)
	if view.ID == "" || view.Step != "language_select" {
		t.Fatalf("unexpected fresh session: %+v", view)
	}
	sessionURL := base + "/api/sessions/" + view.ID

	doPost(t, client, sessionURL+"/language", map[string]string{"locale": "en"}, &view)
	if view.Step != "personal_info" {
		t.Fatalf("after language select: %+v", view)
	}

	doPost(t, client, sessionURL+"/personal-info", map[string]any{
		"name":     fmt.Sprintf("Integration %d", time.Now().UnixNano()),
		"age":      21,
		"mobile":   "9876543210",
		"state":    "Rajasthan",
		"district": "Jaipur",
	}, &view)
	if view.Step != "instructions" {
		t.Fatalf("after personal info: %+v", view)
	}

	doPost(t, client, sessionURL+"/instructions/ack", map[string]any{}, &view)
	if view.Step != "question" || view.Question == nil {
		t.Fatalf("after instructions: %+v", view)
	}

	for view.Step == "question" {
		optID := bestOption[view.Question.ID]
		if optID == "" {
			t.Fatalf("no score-3 option known for question %d", view.Question.ID)
		}
		doPost(t, client, sessionURL+"/select", map[string]string{"option_id": optID}, &view)
		if view.Question == nil || view.Question.Feedback == "" {
			t.Fatalf("selecting option showed no feedback: %+v", view)
		}
		doPost(t, client, sessionURL+"/advance", map[string]any{}, &view)
	}
	if view.Step != "results" {
		t.Fatalf("journey ended on step %q", view.Step)
	}

	var results struct {
		TotalScore   int    `json:"total_score"`
		MaxScore     int    `json:"max_score"`
		FinalTitle   string `json:"final_title"`
		SubmissionID string `json:"submission_id"`
	}
	doGet(t, client, sessionURL+"/results", &results)
	if results.TotalScore != results.MaxScore || results.TotalScore != 3*len(cat.Questions) {
		t.Fatalf("perfect run scored %d/%d", results.TotalScore, results.MaxScore)
	}
	if results.FinalTitle == "" {
		t.Fatal("results carry no final title")
	}
	if results.SubmissionID == "" {
		t.Fatal("results carry no submission id")
	}

	resp, err := client.Get(sessionURL + "/certificate?variant=both")
	if err != nil {
		t.Fatalf("certificate request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("certificate status %d body %s", resp.StatusCode, string(body))
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("certificate content type %q", ct)
	}

	doPost(t, client, sessionURL+"/restart", map[string]any{}, &view)
	if view.Step != "done" {
		t.Fatalf("after restart: %+v", view)
	}
}

func doPost(t *testing.T, client *http.Client, url string, body any, out any) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("http post %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}

func doGet(t *testing.T, client *http.Client, url string, out any) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("http get %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response from %s: %v", url, err)
	}
}
