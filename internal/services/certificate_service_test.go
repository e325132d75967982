package services

import (
	"strings"
	"testing"
	"time"

	"github.com/parakh-labs/parakh/internal/catalog"
	"github.com/parakh-labs/parakh/internal/models"
)

func sampleCertData() *CertificateData {
	return &CertificateData{
		Name:       "Asha Verma",
		NameHI:     "आशा वर्मा",
		Age:        15,
		State:      "Madhya Pradesh",
		District:   "Bhopal",
		Locale:     "hi",
		TotalScore: 18,
		MaxScore:   18,
		TraitScores: []CertificateTraitScore{
			{Trait: catalog.TraitGratitude, Label: catalog.TraitGratitude.Label(), Score: 3, Max: 3},
			{Trait: catalog.TraitCourage, Label: catalog.TraitCourage.Label(), Score: 3, Max: 3},
		},
		FinalTitle:   catalog.Text{EN: "Flourishing Character", HI: "खिलता हुआ व्यक्तित्व"},
		FinalBody:    catalog.Text{EN: "A strong result.", HI: "एक सशक्त परिणाम।"},
		SubmissionID: "sub-42",
		SubmittedAt:  time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestCertificateVariants(t *testing.T) {
	svc, err := NewCertificateService()
	if err != nil {
		t.Fatalf("NewCertificateService: %v", err)
	}
	data := sampleCertData()

	en, err := svc.Render(data, CertificateEN)
	if err != nil {
		t.Fatalf("Render(en): %v", err)
	}
	html := string(en)
	for _, want := range []string{"Asha Verma", "Certificate of Completion", "18 / 18", "Flourishing Character", "2 March 2026", "sub-42", "Gratitude"} {
		if !strings.Contains(html, want) {
			t.Fatalf("en certificate missing %q", want)
		}
	}
	if strings.Contains(html, "आशा") {
		t.Fatalf("en certificate contains Hindi name")
	}

	hi, err := svc.Render(data, CertificateHI)
	if err != nil {
		t.Fatalf("Render(hi): %v", err)
	}
	html = string(hi)
	for _, want := range []string{"आशा वर्मा", "पूर्णता प्रमाणपत्र", "खिलता हुआ व्यक्तित्व", "02/03/2026", "कृतज्ञता"} {
		if !strings.Contains(html, want) {
			t.Fatalf("hi certificate missing %q", want)
		}
	}

	both, err := svc.Render(data, CertificateBoth)
	if err != nil {
		t.Fatalf("Render(both): %v", err)
	}
	html = string(both)
	if !strings.Contains(html, "Asha Verma") || !strings.Contains(html, "आशा वर्मा") {
		t.Fatalf("both certificate missing one language block")
	}
	if got := strings.Count(html, "class=\"section\""); got != 2 {
		t.Fatalf("both certificate has %d sections, want 2", got)
	}
}

func TestCertificateHindiNameFallsBack(t *testing.T) {
	svc, err := NewCertificateService()
	if err != nil {
		t.Fatalf("NewCertificateService: %v", err)
	}
	data := sampleCertData()
	data.NameHI = ""

	hi, err := svc.Render(data, CertificateHI)
	if err != nil {
		t.Fatalf("Render(hi): %v", err)
	}
	if !strings.Contains(string(hi), "Asha Verma") {
		t.Fatalf("hi certificate did not fall back to the Latin name")
	}
}

func TestCertificateDataFromRecord(t *testing.T) {
	set := catalog.Default()
	rec := fullRecord("sub-9", 3, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	rec.Info = models.PersonalInfo{Name: "Asha Verma", NameHI: "आशा वर्मा", Age: 15, State: "Madhya Pradesh", District: "Bhopal"}
	rec.Locale = "hi"
	bucket, ok := set.BucketFor(rec.TotalScore)
	if !ok {
		t.Fatalf("no bucket for total %d", rec.TotalScore)
	}
	rec.FinalTitle = bucket.Title.EN
	rec.FinalAssessment = bucket.Body.EN

	data := CertificateDataFromRecord(set, rec)
	if data.SubmissionID != "sub-9" || data.MaxScore != set.MaxTotal() {
		t.Fatalf("data = %+v", data)
	}
	if data.FinalTitle != bucket.Title || data.FinalBody != bucket.Body {
		t.Fatalf("final text not rebuilt bilingually: %+v", data.FinalTitle)
	}
	if len(data.TraitScores) != 6 {
		t.Fatalf("trait scores = %d, want 6", len(data.TraitScores))
	}
	for _, ts := range data.TraitScores {
		if ts.Score != 3 || ts.Max != 3 {
			t.Fatalf("trait %s = %d/%d, want 3/3", ts.Trait, ts.Score, ts.Max)
		}
	}

	// a stored title that no longer matches the bucket table stays English
	rec.FinalTitle = "Legacy Title"
	data = CertificateDataFromRecord(set, rec)
	if data.FinalTitle.EN != "Legacy Title" || data.FinalTitle.HI != "" {
		t.Fatalf("legacy title = %+v, want English-only passthrough", data.FinalTitle)
	}
}

func TestParseCertificateVariant(t *testing.T) {
	cases := []struct {
		in, def string
		want    CertificateVariant
		wantErr bool
	}{
		{"en", "", CertificateEN, false},
		{" BOTH ", "", CertificateBoth, false},
		{"", "hi", CertificateHI, false},
		{"", "", "", true},
		{"fr", "en", "", true},
	}
	for _, c := range cases {
		got, err := ParseCertificateVariant(c.in, c.def)
		if c.wantErr {
			if err == nil {
				t.Fatalf("ParseCertificateVariant(%q,%q) accepted", c.in, c.def)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Fatalf("ParseCertificateVariant(%q,%q) = %q,%v, want %q", c.in, c.def, got, err, c.want)
		}
	}
}
