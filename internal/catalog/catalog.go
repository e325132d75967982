package catalog

import (
	"fmt"
	"strings"
)

// Trait is one of the six fixed character dimensions measured by the
// assessment. The set is closed; an unknown trait is a catalog bug.
type Trait string

const (
	TraitGratitude       Trait = "gratitude"
	TraitResilience      Trait = "resilience"
	TraitEmpathy         Trait = "empathy"
	TraitSociability     Trait = "sociability"
	TraitSocialCognition Trait = "social_cognition"
	TraitCourage         Trait = "courage"
)

// Supported display locales.
const (
	LocaleEN = "en"
	LocaleHI = "hi"
)

// SupportedLocales returns the locales the catalog carries text for.
func SupportedLocales() []string { return []string{LocaleEN, LocaleHI} }

// Text is a bilingual string pair. English is the storage language; Hindi
// is display-only.
type Text struct {
	EN string `json:"en"`
	HI string `json:"hi"`
}

// In returns the text for locale, falling back to English.
func (t Text) In(locale string) string {
	if locale == LocaleHI && strings.TrimSpace(t.HI) != "" {
		return t.HI
	}
	return t.EN
}

var traitLabels = map[Trait]Text{
	TraitGratitude:       {EN: "Gratitude", HI: "कृतज्ञता"},
	TraitResilience:      {EN: "Resilience", HI: "लचीलापन"},
	TraitEmpathy:         {EN: "Empathy", HI: "सहानुभूति"},
	TraitSociability:     {EN: "Sociability", HI: "सामाजिकता"},
	TraitSocialCognition: {EN: "Social Cognition", HI: "सामाजिक समझ"},
	TraitCourage:         {EN: "Courage", HI: "साहस"},
}

// Label returns the display name of the trait. Unknown traits fall back to
// the raw value so a rendering bug never hides a score.
func (t Trait) Label() Text {
	if l, ok := traitLabels[t]; ok {
		return l
	}
	return Text{EN: string(t), HI: string(t)}
}

// Option is one of the three answer choices of a question. Score is 1, 2
// or 3; options are listed in presentation order, not score order.
type Option struct {
	ID    string `json:"id"`
	Label Text   `json:"label"`
	Score int    `json:"score"`
}

// Question is a situational-judgment item. IDs run 1..N in presentation
// order.
type Question struct {
	ID      int       `json:"id"`
	Trait   Trait     `json:"trait"`
	Prompt  Text      `json:"prompt"`
	Options [3]Option `json:"options"`
}

// Bucket maps a contiguous total-score range to an overall assessment
// text. Buckets are ordered and together cover [N, 3N] exactly.
type Bucket struct {
	Min   int  `json:"min"`
	Max   int  `json:"max"`
	Title Text `json:"title"`
	Body  Text `json:"body"`
}

// Set bundles the static content the engine and wizard operate on:
// the question schedule, the per-(trait, score) feedback variants, and
// the total-score buckets. A Set is immutable after construction.
type Set struct {
	Questions []Question
	Feedback  map[Trait]map[int][]Text
	Buckets   []Bucket
}

// N returns the number of questions in the schedule.
func (s *Set) N() int { return len(s.Questions) }

// MinTotal returns the lowest reachable total score (every answer scores 1).
func (s *Set) MinTotal() int { return s.N() }

// MaxTotal returns the highest reachable total score (every answer scores 3).
func (s *Set) MaxTotal() int { return 3 * s.N() }

// QuestionAt returns the question at zero-based index i.
func (s *Set) QuestionAt(i int) (*Question, bool) {
	if i < 0 || i >= len(s.Questions) {
		return nil, false
	}
	return &s.Questions[i], true
}

// FeedbackVariants returns the declared feedback texts for a (trait, score)
// pair. Multiple entries are equally valid phrasings; callers pick one.
func (s *Set) FeedbackVariants(trait Trait, score int) []Text {
	byScore, ok := s.Feedback[trait]
	if !ok {
		return nil
	}
	return byScore[score]
}

// BucketFor returns the bucket covering total, if any.
func (s *Set) BucketFor(total int) (*Bucket, bool) {
	for i := range s.Buckets {
		b := &s.Buckets[i]
		if total >= b.Min && total <= b.Max {
			return b, true
		}
	}
	return nil, false
}

// Traits returns the trait of each question in schedule order.
func (s *Set) Traits() []Trait {
	out := make([]Trait, 0, len(s.Questions))
	for _, q := range s.Questions {
		out = append(out, q.Trait)
	}
	return out
}

// TraitOrder returns the distinct traits in first-appearance order.
func (s *Set) TraitOrder() []Trait {
	seen := map[Trait]bool{}
	out := make([]Trait, 0, len(s.Questions))
	for _, q := range s.Questions {
		if !seen[q.Trait] {
			seen[q.Trait] = true
			out = append(out, q.Trait)
		}
	}
	return out
}

// TraitQuestionCount returns how many questions measure the trait.
func (s *Set) TraitQuestionCount(trait Trait) int {
	n := 0
	for _, q := range s.Questions {
		if q.Trait == trait {
			n++
		}
	}
	return n
}

// Validate checks the structural invariants of the set. It is called once
// at startup; any error means the shipped content is broken and the server
// must not come up.
func (s *Set) Validate() error {
	if len(s.Questions) == 0 {
		return fmt.Errorf("catalog: no questions")
	}
	for i := range s.Questions {
		q := &s.Questions[i]
		if q.ID != i+1 {
			return fmt.Errorf("catalog: question at index %d has id %d, want %d", i, q.ID, i+1)
		}
		if err := validateText("question prompt", q.ID, q.Prompt); err != nil {
			return err
		}
		seenIDs := map[string]bool{}
		seenScores := map[int]bool{}
		for _, opt := range q.Options {
			if strings.TrimSpace(opt.ID) == "" {
				return fmt.Errorf("catalog: question %d has an option without id", q.ID)
			}
			if seenIDs[opt.ID] {
				return fmt.Errorf("catalog: question %d repeats option id %q", q.ID, opt.ID)
			}
			seenIDs[opt.ID] = true
			if opt.Score < 1 || opt.Score > 3 {
				return fmt.Errorf("catalog: question %d option %q has score %d outside 1..3", q.ID, opt.ID, opt.Score)
			}
			if seenScores[opt.Score] {
				return fmt.Errorf("catalog: question %d has two options scoring %d", q.ID, opt.Score)
			}
			seenScores[opt.Score] = true
			if err := validateText("option label", q.ID, opt.Label); err != nil {
				return err
			}
		}
	}
	for _, trait := range s.Traits() {
		for score := 1; score <= 3; score++ {
			variants := s.FeedbackVariants(trait, score)
			if len(variants) == 0 {
				return fmt.Errorf("catalog: no feedback for trait %q score %d", trait, score)
			}
			for _, v := range variants {
				if strings.TrimSpace(v.EN) == "" || strings.TrimSpace(v.HI) == "" {
					return fmt.Errorf("catalog: empty feedback text for trait %q score %d", trait, score)
				}
			}
		}
	}
	return s.validateBuckets()
}

func (s *Set) validateBuckets() error {
	if len(s.Buckets) == 0 {
		return fmt.Errorf("catalog: no score buckets")
	}
	next := s.MinTotal()
	for i := range s.Buckets {
		b := &s.Buckets[i]
		if b.Min != next {
			return fmt.Errorf("catalog: bucket %d starts at %d, want %d (gap or overlap)", i, b.Min, next)
		}
		if b.Max < b.Min {
			return fmt.Errorf("catalog: bucket %d has max %d below min %d", i, b.Max, b.Min)
		}
		if strings.TrimSpace(b.Title.EN) == "" || strings.TrimSpace(b.Title.HI) == "" ||
			strings.TrimSpace(b.Body.EN) == "" || strings.TrimSpace(b.Body.HI) == "" {
			return fmt.Errorf("catalog: bucket %d has empty text", i)
		}
		next = b.Max + 1
	}
	if last := s.Buckets[len(s.Buckets)-1].Max; last != s.MaxTotal() {
		return fmt.Errorf("catalog: buckets end at %d, want %d", last, s.MaxTotal())
	}
	return nil
}

func validateText(what string, questionID int, t Text) error {
	if strings.TrimSpace(t.EN) == "" {
		return fmt.Errorf("catalog: question %d %s missing English text", questionID, what)
	}
	if strings.TrimSpace(t.HI) == "" {
		return fmt.Errorf("catalog: question %d %s missing Hindi text", questionID, what)
	}
	return nil
}
