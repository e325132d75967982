package services

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/parakh-labs/parakh/internal/catalog"
	"github.com/parakh-labs/parakh/internal/models"
	"github.com/parakh-labs/parakh/internal/utils"
)

//go:embed templates/certificate.html.tmpl
var certificateTemplate string

// CertificateVariant selects which language blocks the certificate carries.
type CertificateVariant string

const (
	CertificateEN   CertificateVariant = "en"
	CertificateHI   CertificateVariant = "hi"
	CertificateBoth CertificateVariant = "both"
)

// ParseCertificateVariant maps a query value to a variant; empty falls back
// to the given default.
func ParseCertificateVariant(s, def string) (CertificateVariant, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		v = strings.ToLower(strings.TrimSpace(def))
	}
	switch CertificateVariant(v) {
	case CertificateEN, CertificateHI, CertificateBoth:
		return CertificateVariant(v), nil
	}
	return "", NewInvalidError(fmt.Sprintf("unknown certificate variant %q", s))
}

// CertificateData is the finished-session snapshot the renderer works from.
// It carries both languages so any variant renders without going back to
// the scoring engine.
type CertificateData struct {
	Name         string
	NameHI       string
	Age          int
	State        string
	District     string
	Locale       string
	TotalScore   int
	MaxScore     int
	TraitScores  []CertificateTraitScore
	FinalTitle   catalog.Text
	FinalBody    catalog.Text
	SubmissionID string
	SubmittedAt  time.Time
}

type CertificateTraitScore struct {
	Trait catalog.Trait
	Label catalog.Text
	Score int
	Max   int
}

type certTraitRow struct {
	Label string
	Score string
}

type certSection struct {
	Lang       string
	Heading    string
	Subheading string
	Awarded    string
	Name       string
	Meta       string
	Traits     []certTraitRow
	TotalLabel string
	Total      string
	FinalTitle string
	FinalBody  string
	Issued     string
}

type certPage struct {
	DocTitle     string
	Sections     []certSection
	SubmissionID string
}

// CertificateService renders a printable HTML certificate from finished
// session data.
type CertificateService struct {
	tmpl *template.Template
}

func NewCertificateService() (*CertificateService, error) {
	tmpl, err := template.New("certificate").Parse(certificateTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse certificate template: %w", err)
	}
	return &CertificateService{tmpl: tmpl}, nil
}

// Render produces the certificate HTML for the requested variant.
func (s *CertificateService) Render(data *CertificateData, variant CertificateVariant) ([]byte, error) {
	if data == nil {
		return nil, NewInvalidError("certificate data required")
	}
	var locales []string
	switch variant {
	case CertificateEN:
		locales = []string{catalog.LocaleEN}
	case CertificateHI:
		locales = []string{catalog.LocaleHI}
	case CertificateBoth:
		locales = []string{catalog.LocaleEN, catalog.LocaleHI}
	default:
		return nil, NewInvalidError(fmt.Sprintf("unknown certificate variant %q", variant))
	}
	page := certPage{
		DocTitle:     utils.T(locales[0], "cert.heading"),
		SubmissionID: data.SubmissionID,
	}
	for _, loc := range locales {
		page.Sections = append(page.Sections, buildCertSection(data, loc))
	}
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}
	return buf.Bytes(), nil
}

// CertificateDataFromRecord rebuilds renderer input from a stored submission.
// The bilingual final text comes from the bucket table, a deterministic
// lookup; no scoring happens here. A record whose total no longer matches a
// bucket renders with its stored English text only.
func CertificateDataFromRecord(set *catalog.Set, rec *models.SubmissionRecord) *CertificateData {
	data := &CertificateData{
		Name:         rec.Info.Name,
		NameHI:       rec.Info.NameHI,
		Age:          rec.Info.Age,
		State:        rec.Info.State,
		District:     rec.Info.District,
		Locale:       rec.Locale,
		TotalScore:   rec.TotalScore,
		MaxScore:     set.MaxTotal(),
		FinalTitle:   catalog.Text{EN: rec.FinalTitle},
		FinalBody:    catalog.Text{EN: rec.FinalAssessment},
		SubmissionID: rec.ID,
		SubmittedAt:  rec.SubmittedAt,
	}
	if b, ok := set.BucketFor(rec.TotalScore); ok && b.Title.EN == rec.FinalTitle {
		data.FinalTitle = b.Title
		data.FinalBody = b.Body
	}
	for _, tr := range set.TraitOrder() {
		data.TraitScores = append(data.TraitScores, CertificateTraitScore{
			Trait: tr,
			Label: tr.Label(),
			Score: rec.TraitScores[tr],
			Max:   3 * set.TraitQuestionCount(tr),
		})
	}
	return data
}

func buildCertSection(data *CertificateData, locale string) certSection {
	name := data.Name
	if locale == catalog.LocaleHI && strings.TrimSpace(data.NameHI) != "" {
		name = data.NameHI
	}
	meta := fmt.Sprintf("%s %d", utils.T(locale, "cert.age"), data.Age)
	if data.District != "" && data.State != "" {
		meta = fmt.Sprintf("%s · %s, %s", meta, data.District, data.State)
	}
	issued := data.SubmittedAt.Format("2 January 2006")
	if locale == catalog.LocaleHI {
		issued = data.SubmittedAt.Format("02/01/2006")
	}
	sec := certSection{
		Lang:       locale,
		Heading:    utils.T(locale, "cert.heading"),
		Subheading: utils.T(locale, "cert.subheading"),
		Awarded:    utils.T(locale, "cert.awarded"),
		Name:       name,
		Meta:       meta,
		TotalLabel: utils.T(locale, "cert.total"),
		Total:      fmt.Sprintf("%d / %d", data.TotalScore, data.MaxScore),
		FinalTitle: data.FinalTitle.In(locale),
		FinalBody:  data.FinalBody.In(locale),
		Issued:     fmt.Sprintf("%s: %s", utils.T(locale, "cert.issued"), issued),
	}
	for _, ts := range data.TraitScores {
		sec.Traits = append(sec.Traits, certTraitRow{
			Label: ts.Label.In(locale),
			Score: fmt.Sprintf("%d / %d", ts.Score, ts.Max),
		})
	}
	return sec
}
