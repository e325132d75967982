package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPClient is the outbound HTTP seam, satisfied by *http.Client and
// replaced with stubs in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransliterationService converts Latin-script names to Devanagari through
// an external collaborator. The collaborator is best-effort: an empty
// endpoint disables it, and callers fall back to echoing the input on any
// error, so a flaky collaborator never blocks the form.
type TransliterationService struct {
	endpoint string
	client   HTTPClient
	timeout  time.Duration
}

func NewTransliterationService(endpoint string, timeout time.Duration, client HTTPClient) *TransliterationService {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &TransliterationService{
		endpoint: strings.TrimSpace(endpoint),
		client:   client,
		timeout:  timeout,
	}
}

// Enabled reports whether a collaborator endpoint is configured.
func (s *TransliterationService) Enabled() bool { return s.endpoint != "" }

// Transliterate returns the Devanagari rendering of text. Blank input and a
// disabled collaborator echo the trimmed input without a network call.
func (s *TransliterationService) Transliterate(ctx context.Context, text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !s.Enabled() {
		return trimmed, nil
	}
	body, err := json.Marshal(map[string]string{"text": trimmed})
	if err != nil {
		return "", NewInvalidError(err.Error())
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", NewInvalidError(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return "", NewBadGatewayError(err.Error())
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", NewBadGatewayError(strings.TrimSpace(string(b)))
	}
	var out struct {
		Transliteration string `json:"transliteration"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", NewBadGatewayError(err.Error())
	}
	result := strings.TrimSpace(out.Transliteration)
	if result == "" {
		return "", NewBadGatewayError("empty transliteration")
	}
	return result, nil
}
