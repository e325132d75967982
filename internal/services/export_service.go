package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"sort"
	"strconv"
	"time"

	"github.com/parakh-labs/parakh/internal/catalog"
	"github.com/parakh-labs/parakh/internal/models"
)

type ExportStore interface {
	// ListSubmissions with limit 0 returns every stored record.
	ListSubmissions(ctx context.Context, limit, offset int) ([]*models.SubmissionRecord, error)
}

type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders stored submissions as CSV for offline analysis.
type ExportService struct {
	store ExportStore
}

func NewExportService(store ExportStore) *ExportService {
	return &ExportService{store: store}
}

func (s *ExportService) ExportCSV(ctx context.Context, format string) (*ExportResult, error) {
	if format == "" {
		format = "long"
	}
	recs, err := s.store.ListSubmissions(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	var (
		data []byte
		name string
	)
	switch format {
	case "long":
		data, err = ExportLongCSV(recs)
		name = "submissions_long.csv"
	case "wide":
		data, err = ExportWideCSV(recs)
		name = "submissions_wide.csv"
	case "score":
		data, err = ExportScoreCSV(recs)
		name = "submissions_score.csv"
	default:
		return nil, NewInvalidError("unsupported format")
	}
	if err != nil {
		return nil, err
	}
	return &ExportResult{Filename: name, ContentType: "text/csv; charset=utf-8", Data: data}, nil
}

// ExportLongCSV writes one row per answered question.
func ExportLongCSV(recs []*models.SubmissionRecord) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"submission_id", "question_id", "trait", "score", "feedback", "submitted_at"})
	for _, rec := range recs {
		for _, a := range rec.Answers {
			row := []string{
				rec.ID,
				strconv.Itoa(a.QuestionID),
				string(a.Trait),
				strconv.Itoa(a.Score),
				a.Feedback,
				rec.SubmittedAt.Format(time.RFC3339),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportWideCSV writes one row per submission: respondent details, one
// column per question, per-trait totals, and the overall result. Column
// order is derived from the data and sorted for stable output.
func ExportWideCSV(recs []*models.SubmissionRecord) ([]byte, error) {
	qidSet := map[int]struct{}{}
	traitSet := map[string]struct{}{}
	for _, rec := range recs {
		for _, a := range rec.Answers {
			qidSet[a.QuestionID] = struct{}{}
		}
		for tr := range rec.TraitScores {
			traitSet[string(tr)] = struct{}{}
		}
	}
	qids := make([]int, 0, len(qidSet))
	for id := range qidSet {
		qids = append(qids, id)
	}
	sort.Ints(qids)
	traits := make([]string, 0, len(traitSet))
	for tr := range traitSet {
		traits = append(traits, tr)
	}
	sort.Strings(traits)

	header := []string{"submission_id", "submitted_at", "locale", "name", "name_hi", "age", "gender", "dial_code", "mobile", "email", "state", "district"}
	for _, id := range qids {
		header = append(header, "q"+strconv.Itoa(id))
	}
	for _, tr := range traits {
		header = append(header, "trait_"+tr)
	}
	header = append(header, "total_score", "final_title")

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write(header)
	for _, rec := range recs {
		scores := map[int]int{}
		for _, a := range rec.Answers {
			scores[a.QuestionID] = a.Score
		}
		row := []string{
			rec.ID,
			rec.SubmittedAt.Format(time.RFC3339),
			rec.Locale,
			rec.Info.Name,
			rec.Info.NameHI,
			strconv.Itoa(rec.Info.Age),
			rec.Info.Gender,
			rec.Info.DialCode,
			rec.Info.Mobile,
			rec.Info.Email,
			rec.Info.State,
			rec.Info.District,
		}
		for _, id := range qids {
			row = append(row, strconv.Itoa(scores[id]))
		}
		for _, tr := range traits {
			row = append(row, strconv.Itoa(rec.TraitScores[catalog.Trait(tr)]))
		}
		row = append(row, strconv.Itoa(rec.TotalScore), rec.FinalTitle)
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportScoreCSV writes the overall result per submission.
func ExportScoreCSV(recs []*models.SubmissionRecord) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"submission_id", "total_score", "final_title"})
	for _, rec := range recs {
		if err := w.Write([]string{rec.ID, strconv.Itoa(rec.TotalScore), rec.FinalTitle}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
