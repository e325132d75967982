package services

import (
	"context"
	"sort"

	"github.com/parakh-labs/parakh/internal/catalog"
	"github.com/parakh-labs/parakh/internal/models"
)

type AnalyticsStore interface {
	// ListSubmissions with limit 0 returns every stored record.
	ListSubmissions(ctx context.Context, limit, offset int) ([]*models.SubmissionRecord, error)
}

type AnalyticsTrait struct {
	Trait     string  `json:"trait"`
	Label     string  `json:"label"`
	Histogram []int   `json:"histogram"`
	Total     int     `json:"total"`
	Average   float64 `json:"average"`
}

type AnalyticsPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type BucketCount struct {
	Title string `json:"title"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Count int    `json:"count"`
}

type AnalyticsSummary struct {
	TotalSubmissions int              `json:"total_submissions"`
	AverageTotal     float64          `json:"average_total"`
	Traits           []AnalyticsTrait `json:"traits"`
	Buckets          []BucketCount    `json:"buckets"`
	Timeseries       []AnalyticsPoint `json:"timeseries"`
	Alpha            float64          `json:"alpha"`
	N                int              `json:"n"`
}

// AnalyticsService aggregates stored submissions for the admin dashboard.
// Labels are English; the dashboard is an operator surface.
type AnalyticsService struct {
	set   *catalog.Set
	store AnalyticsStore
}

func NewAnalyticsService(set *catalog.Set, store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{set: set, store: store}
}

func (s *AnalyticsService) Summary(ctx context.Context) (*AnalyticsSummary, error) {
	recs, err := s.store.ListSubmissions(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	summary := &AnalyticsSummary{TotalSubmissions: len(recs)}

	traitIndex := map[catalog.Trait]int{}
	for i, tr := range s.set.TraitOrder() {
		traitIndex[tr] = i
		summary.Traits = append(summary.Traits, AnalyticsTrait{
			Trait:     string(tr),
			Label:     tr.Label().EN,
			Histogram: make([]int, 3),
		})
	}

	countsByDay := map[string]int{}
	totalSum := 0
	for _, rec := range recs {
		totalSum += rec.TotalScore
		countsByDay[rec.SubmittedAt.UTC().Format("2006-01-02")]++
		for _, a := range rec.Answers {
			idx, ok := traitIndex[a.Trait]
			if !ok || a.Score < 1 || a.Score > 3 {
				continue
			}
			summary.Traits[idx].Histogram[a.Score-1]++
			summary.Traits[idx].Total += a.Score
		}
	}
	if len(recs) > 0 {
		summary.AverageTotal = float64(totalSum) / float64(len(recs))
		for i := range summary.Traits {
			summary.Traits[i].Average = float64(summary.Traits[i].Total) / float64(len(recs))
		}
	}

	for _, b := range s.set.Buckets {
		count := 0
		for _, rec := range recs {
			if rec.TotalScore >= b.Min && rec.TotalScore <= b.Max {
				count++
			}
		}
		summary.Buckets = append(summary.Buckets, BucketCount{Title: b.Title.EN, Min: b.Min, Max: b.Max, Count: count})
	}

	days := make([]string, 0, len(countsByDay))
	for d := range countsByDay {
		days = append(days, d)
	}
	sort.Strings(days)
	for _, d := range days {
		summary.Timeseries = append(summary.Timeseries, AnalyticsPoint{Date: d, Count: countsByDay[d]})
	}

	matrix, n := buildAlphaMatrix(s.set, recs)
	summary.Alpha = CronbachAlpha(matrix)
	summary.N = n
	return summary, nil
}

// buildAlphaMatrix keeps only submissions that answered every question, in
// question order.
func buildAlphaMatrix(set *catalog.Set, recs []*models.SubmissionRecord) ([][]float64, int) {
	matrix := make([][]float64, 0, len(recs))
	for _, rec := range recs {
		byQID := map[int]int{}
		for _, a := range rec.Answers {
			byQID[a.QuestionID] = a.Score
		}
		row := make([]float64, 0, set.N())
		complete := true
		for _, q := range set.Questions {
			v, ok := byQID[q.ID]
			if !ok {
				complete = false
				break
			}
			row = append(row, float64(v))
		}
		if complete {
			matrix = append(matrix, row)
		}
	}
	return matrix, len(matrix)
}
