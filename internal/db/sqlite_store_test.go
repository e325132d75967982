package db

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/parakh-labs/parakh/internal/catalog"
	"github.com/parakh-labs/parakh/internal/models"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	sqlDB, err := sql.Open("sqlite3", "file:"+filepath.Join(t.TempDir(), "test.db")+"?cache=shared&_busy_timeout=5000")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := RunMigrations(sqlDB, DialectSQLite, ""); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	store, err := NewSQLiteStore(sqlDB)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	return store
}

func testRecord(name string, at time.Time) *models.SubmissionRecord {
	return &models.SubmissionRecord{
		Info: models.PersonalInfo{
			Name:     name,
			NameHI:   "आशा",
			Age:      21,
			Gender:   models.GenderDefault,
			DialCode: "+91",
			Mobile:   "9876543210",
			State:    "Rajasthan",
			District: "Jaipur",
		},
		Answers: []models.AnswerRecord{
			{QuestionID: 1, Trait: catalog.TraitGratitude, Score: 3, Feedback: "stored feedback"},
			{QuestionID: 2, Trait: catalog.TraitResilience, Score: 2, Feedback: "more feedback"},
		},
		TraitScores: map[catalog.Trait]int{
			catalog.TraitGratitude:  3,
			catalog.TraitResilience: 2,
		},
		TotalScore:      5,
		FinalTitle:      "Final Title",
		FinalAssessment: "Final body.",
		Locale:          catalog.LocaleHI,
		SubmittedAt:     at,
	}
}

func TestSQLiteSubmissionRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

	id, err := store.AddSubmission(ctx, testRecord("Asha Kumari", at))
	if err != nil {
		t.Fatalf("AddSubmission: %v", err)
	}
	if len(id) != 16 {
		t.Fatalf("id = %q, want 16 chars", id)
	}

	got, err := store.GetSubmission(ctx, id)
	if err != nil {
		t.Fatalf("GetSubmission: %v", err)
	}
	if got == nil {
		t.Fatal("stored submission not found")
	}
	if got.Info.Name != "Asha Kumari" || got.Info.NameHI != "आशा" {
		t.Errorf("names = %q / %q", got.Info.Name, got.Info.NameHI)
	}
	if got.Locale != catalog.LocaleHI || got.TotalScore != 5 {
		t.Errorf("locale %q total %d", got.Locale, got.TotalScore)
	}
	if len(got.Answers) != 2 || got.Answers[1].Feedback != "more feedback" {
		t.Errorf("answers = %+v", got.Answers)
	}
	if got.TraitScores[catalog.TraitGratitude] != 3 || got.TraitScores[catalog.TraitCourage] != 0 {
		t.Errorf("trait scores = %+v", got.TraitScores)
	}
	if !got.SubmittedAt.UTC().Equal(at) {
		t.Errorf("submitted_at = %v, want %v", got.SubmittedAt, at)
	}

	missing, err := store.GetSubmission(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("GetSubmission missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing id returned %+v", missing)
	}
}

func TestSQLiteListOrderAndPaging(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	names := []string{"One", "Two", "Three"}
	for i, n := range names {
		if _, err := store.AddSubmission(ctx, testRecord(n, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("AddSubmission %s: %v", n, err)
		}
	}

	all, err := store.ListSubmissions(ctx, 0, 0)
	if err != nil {
		t.Fatalf("ListSubmissions: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}
	for i, rec := range all {
		if rec.Info.Name != names[i] {
			t.Errorf("record %d = %q, want %q (submitted_at order)", i, rec.Info.Name, names[i])
		}
	}

	page, err := store.ListSubmissions(ctx, 1, 1)
	if err != nil {
		t.Fatalf("ListSubmissions: %v", err)
	}
	if len(page) != 1 || page[0].Info.Name != "Two" {
		t.Fatalf("limit 1 offset 1 = %+v", page)
	}

	total, err := store.CountSubmissions(ctx)
	if err != nil || total != 3 {
		t.Fatalf("CountSubmissions = %d, %v", total, err)
	}
}

func TestSQLiteAdmins(t *testing.T) {
	store := openTestStore(t)

	count, err := store.CountAdmins()
	if err != nil || count != 0 {
		t.Fatalf("CountAdmins = %d, %v; want 0", count, err)
	}

	admin := &models.AdminUser{
		ID:        "a1234567",
		Email:     "Ops@Example.com",
		PassHash:  []byte("bcrypt-hash"),
		CreatedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	if err := store.AddAdmin(admin); err != nil {
		t.Fatalf("AddAdmin: %v", err)
	}

	got, err := store.FindAdminByEmail("ops@example.com")
	if err != nil {
		t.Fatalf("FindAdminByEmail: %v", err)
	}
	if got == nil || got.ID != "a1234567" || string(got.PassHash) != "bcrypt-hash" {
		t.Fatalf("admin = %+v", got)
	}

	missing, err := store.FindAdminByEmail("nobody@example.com")
	if err != nil || missing != nil {
		t.Fatalf("unknown admin = %+v, %v", missing, err)
	}

	if err := store.AddAdmin(admin); err == nil {
		t.Fatal("duplicate email insert should fail")
	}
}

func TestLoadMigrationsDirOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	writeFile("002_second.sql", "-- second")
	writeFile("001_first.sql", "-- first")
	writeFile("notes.txt", "ignored")

	files, err := loadMigrations(DialectSQLite, dir)
	if err != nil {
		t.Fatalf("loadMigrations: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].name != "001_first.sql" || files[1].name != "002_second.sql" {
		t.Errorf("order = %s, %s", files[0].name, files[1].name)
	}
}

func TestLoadMigrationsEmbeddedPerDialect(t *testing.T) {
	for _, dialect := range []string{DialectSQLite, DialectPostgres} {
		files, err := loadMigrations(dialect, "")
		if err != nil {
			t.Fatalf("loadMigrations(%s): %v", dialect, err)
		}
		if len(files) == 0 {
			t.Fatalf("no embedded migrations for %s", dialect)
		}
	}
}
