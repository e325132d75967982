package services

import (
	"errors"
	"math/rand/v2"

	"github.com/parakh-labs/parakh/internal/catalog"
	"github.com/parakh-labs/parakh/internal/models"
)

var (
	// ErrUnknownTrait is returned when feedback is requested for a trait the
	// catalog does not carry.
	ErrUnknownTrait = errors.New("unknown trait")
	// ErrScoreOutOfRange is returned for option scores outside 1..3.
	ErrScoreOutOfRange = errors.New("score out of range")
	// ErrTotalOutOfRange is returned when no bucket covers a total score.
	ErrTotalOutOfRange = errors.New("total score out of range")
)

// Engine resolves feedback and final assessment texts from the static
// catalog. It holds no mutable state. pick selects among equally valid
// feedback phrasings and is overridden in tests.
type Engine struct {
	set  *catalog.Set
	pick func(n int) int
}

func NewEngine(set *catalog.Set) *Engine {
	return &Engine{
		set:  set,
		pick: rand.IntN,
	}
}

// ResolveFeedback picks the feedback text pair for one answered question.
// The returned pair serves both localized display and English storage, so
// the two never diverge when a cell has several phrasings.
func (e *Engine) ResolveFeedback(trait catalog.Trait, score int) (catalog.Text, error) {
	if score < 1 || score > 3 {
		return catalog.Text{}, ErrScoreOutOfRange
	}
	variants := e.set.FeedbackVariants(trait, score)
	if len(variants) == 0 {
		return catalog.Text{}, ErrUnknownTrait
	}
	if len(variants) == 1 {
		return variants[0], nil
	}
	return variants[e.pick(len(variants))], nil
}

// ResolveFinal returns the overall assessment bucket covering total.
func (e *Engine) ResolveFinal(total int) (*catalog.Bucket, error) {
	b, ok := e.set.BucketFor(total)
	if !ok {
		return nil, ErrTotalOutOfRange
	}
	return b, nil
}

// Tally sums answers into per-trait scores and a grand total.
func (e *Engine) Tally(answers []models.AnswerRecord) (map[catalog.Trait]int, int) {
	byTrait := make(map[catalog.Trait]int, len(answers))
	total := 0
	for _, a := range answers {
		byTrait[a.Trait] += a.Score
		total += a.Score
	}
	return byTrait, total
}
