package models

import (
	"strings"
	"time"

	"github.com/parakh-labs/parakh/internal/catalog"
)

// PersonalInfo holds the respondent details collected before the assessment
// starts. It is immutable once the first question is shown.
type PersonalInfo struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	NameHI   string `json:"name_hi,omitempty" validate:"omitempty,max=200"`
	Age      int    `json:"age" validate:"required,gte=1,lte=120"`
	Gender   string `json:"gender,omitempty"`
	DialCode string `json:"dial_code,omitempty"`
	Mobile   string `json:"mobile" validate:"required,numeric,min=6,max=15"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	State    string `json:"state" validate:"required"`
	District string `json:"district" validate:"required"`
}

// AnswerRecord is one answered question. Feedback is the stored English
// text; display text in the active locale is resolved separately.
type AnswerRecord struct {
	QuestionID int           `json:"question_id"`
	Trait      catalog.Trait `json:"trait"`
	Score      int           `json:"score"`
	Feedback   string        `json:"feedback"`
}

// SubmissionRecord is the finalized result of one completed session, handed
// to the submission sink exactly once. All free text is English; Locale
// records which display language the respondent used.
type SubmissionRecord struct {
	ID              string                `json:"id,omitempty"`
	Info            PersonalInfo          `json:"info"`
	Answers         []AnswerRecord        `json:"answers"`
	TraitScores     map[catalog.Trait]int `json:"trait_scores"`
	TotalScore      int                   `json:"total_score"`
	FinalTitle      string                `json:"final_title"`
	FinalAssessment string                `json:"final_assessment"`
	Locale          string                `json:"locale"`
	SubmittedAt     time.Time             `json:"submitted_at"`
}

// AdminUser can list and export stored submissions.
type AdminUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	PassHash  []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Gender options offered by the form. GenderDefault applies when the field
// is left empty.
const GenderDefault = "Prefer not to say"

var genders = []string{"Male", "Female", "Other", GenderDefault}

// Genders returns the gender options in form order.
func Genders() []string { return genders }

// NormalizeGender maps input to its canonical option, ignoring case. Empty
// input yields the default; unknown input is rejected.
func NormalizeGender(s string) (string, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return GenderDefault, true
	}
	for _, g := range genders {
		if strings.EqualFold(g, t) {
			return g, true
		}
	}
	return "", false
}
