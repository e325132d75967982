package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/parakh-labs/parakh/internal/catalog"
	"github.com/parakh-labs/parakh/internal/geo"
	"github.com/parakh-labs/parakh/internal/models"
	"github.com/parakh-labs/parakh/internal/utils"
)

// Step is the wizard position of a session. Transitions only move forward;
// Restart ends the session instead of rewinding it.
type Step int

const (
	StepLanguageSelect Step = iota
	StepPersonalInfo
	StepInstructions
	StepQuestion
	StepResults
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepLanguageSelect:
		return "language_select"
	case StepPersonalInfo:
		return "personal_info"
	case StepInstructions:
		return "instructions"
	case StepQuestion:
		return "question"
	case StepResults:
		return "results"
	case StepDone:
		return "done"
	}
	return "unknown"
}

// SubmissionSink stores finalized submission records and assigns their IDs.
type SubmissionSink interface {
	AddSubmission(ctx context.Context, rec *models.SubmissionRecord) (string, error)
}

type SessionView struct {
	ID           string            `json:"id"`
	Step         string            `json:"step"`
	Locale       string            `json:"locale"`
	Answered     int               `json:"answered"`
	Total        int               `json:"total"`
	Locales      []string          `json:"locales,omitempty"`
	Instructions *InstructionsView `json:"instructions,omitempty"`
	Question     *QuestionView     `json:"question,omitempty"`
}

type InstructionsView struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type QuestionView struct {
	Index      int          `json:"index"`
	ID         int          `json:"id"`
	Trait      string       `json:"trait"`
	TraitLabel string       `json:"trait_label"`
	Prompt     string       `json:"prompt"`
	Options    []OptionView `json:"options"`
	Selected   string       `json:"selected,omitempty"`
	Feedback   string       `json:"feedback,omitempty"`
}

type OptionView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type ResultLineView struct {
	QuestionID int    `json:"question_id"`
	Trait      string `json:"trait"`
	TraitLabel string `json:"trait_label"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
}

type TraitScoreView struct {
	Trait string `json:"trait"`
	Label string `json:"label"`
	Score int    `json:"score"`
	Max   int    `json:"max"`
}

type ResultsView struct {
	SessionID    string           `json:"session_id"`
	Name         string           `json:"name"`
	NameHI       string           `json:"name_hi,omitempty"`
	Lines        []ResultLineView `json:"lines"`
	TraitScores  []TraitScoreView `json:"trait_scores"`
	TotalScore   int              `json:"total_score"`
	MaxScore     int              `json:"max_score"`
	FinalTitle   string           `json:"final_title"`
	FinalBody    string           `json:"final_body"`
	SubmissionID string           `json:"submission_id,omitempty"`
	Notice       string           `json:"notice,omitempty"`
	SubmittedAt  time.Time        `json:"submitted_at"`
}

// session is the in-memory state of one respondent. All fields are guarded
// by the service mutex.
type session struct {
	id     string
	locale string
	step   Step
	qIndex int

	pendingOpt   string
	pendingScore int
	pendingText  catalog.Text

	info     *models.PersonalInfo
	answers  []models.AnswerRecord
	resolved []catalog.Text

	traitScores map[catalog.Trait]int
	total       int
	final       *catalog.Bucket
	record      *models.SubmissionRecord
	sinkID      string
	sinkFailed  bool

	translitSeq    int
	translitCancel context.CancelFunc
	translitHint   string

	createdAt time.Time
	touchedAt time.Time
}

// WizardConfig tunes the session registry. Zero values take the defaults.
type WizardConfig struct {
	SessionTTL  time.Duration
	SinkTimeout time.Duration
	Logger      *slog.Logger
}

const (
	defaultSessionTTL  = 45 * time.Minute
	defaultSinkTimeout = 5 * time.Second
)

// WizardService drives the assessment flow: one in-memory session per
// respondent, strict step ordering, and a single sink handoff when the
// final answer lands.
type WizardService struct {
	set      *catalog.Set
	engine   *Engine
	sink     SubmissionSink
	translit *TransliterationService
	validate *validator.Validate

	mu       sync.RWMutex
	sessions map[string]*session

	ttl         time.Duration
	sinkTimeout time.Duration
	logger      *slog.Logger
	now         func() time.Time
	idGenerator func() string
}

func NewWizardService(set *catalog.Set, engine *Engine, sink SubmissionSink, translit *TransliterationService, cfg WizardConfig) *WizardService {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.SinkTimeout <= 0 {
		cfg.SinkTimeout = defaultSinkTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &WizardService{
		set:         set,
		engine:      engine,
		sink:        sink,
		translit:    translit,
		validate:    validator.New(),
		sessions:    map[string]*session{},
		ttl:         cfg.SessionTTL,
		sinkTimeout: cfg.SinkTimeout,
		logger:      cfg.Logger,
		now:         func() time.Time { return time.Now().UTC() },
		idGenerator: func() string { return shortID(16) },
	}
}

// Start opens a fresh session at the language step.
func (s *WizardService) Start() *SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	sess := &session{
		id:        s.idGenerator(),
		locale:    catalog.LocaleEN,
		step:      StepLanguageSelect,
		createdAt: now,
		touchedAt: now,
	}
	s.sessions[sess.id] = sess
	return s.viewLocked(sess)
}

// View returns the current state of a session.
func (s *WizardService) View(id string) (*SessionView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, NewNotFoundError("session not found")
	}
	return s.viewLocked(sess), nil
}

// ChooseLanguage fixes the display locale and moves to the personal info
// step. The locale cannot be changed afterwards.
func (s *WizardService) ChooseLanguage(id, locale string) (*SessionView, error) {
	loc := strings.ToLower(strings.TrimSpace(locale))
	supported := false
	for _, l := range catalog.SupportedLocales() {
		if l == loc {
			supported = true
			break
		}
	}
	if !supported {
		return nil, NewInvalidError("unsupported language")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, NewNotFoundError("session not found")
	}
	if sess.step != StepLanguageSelect {
		return nil, NewConflictError("language already chosen")
	}
	sess.locale = loc
	sess.step = StepPersonalInfo
	sess.touchedAt = s.now()
	return s.viewLocked(sess), nil
}

// TransliterateName asks the collaborator for a Devanagari rendering of the
// typed name. Requests supersede each other: an answer is kept only if it
// belongs to the newest request and the session is still on the personal
// info step. Collaborator failures degrade to echoing the input. The second
// return reports whether the suggestion was kept as the session's name hint.
func (s *WizardService) TransliterateName(ctx context.Context, id, text string) (string, bool, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return "", false, NewNotFoundError("session not found")
	}
	if sess.step != StepPersonalInfo {
		s.mu.Unlock()
		return "", false, NewConflictError("name suggestions are only available on the personal info step")
	}
	if sess.translitCancel != nil {
		sess.translitCancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	sess.translitCancel = cancel
	sess.translitSeq++
	seq := sess.translitSeq
	sess.touchedAt = s.now()
	s.mu.Unlock()

	out, err := s.translit.Transliterate(callCtx, text)
	if err != nil {
		s.logger.Debug("transliteration fell back to echo", "session", id, "err", err)
		out = strings.TrimSpace(text)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	applied := false
	if cur, ok := s.sessions[id]; ok && cur.step == StepPersonalInfo && cur.translitSeq == seq {
		cur.translitHint = out
		applied = true
	}
	return out, applied, nil
}

// SubmitPersonalInfo validates and stores the respondent details, then
// moves to the instructions step. Any pending transliteration request is
// discarded; the form value wins.
func (s *WizardService) SubmitPersonalInfo(id string, in models.PersonalInfo) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, NewNotFoundError("session not found")
	}
	if sess.step != StepPersonalInfo {
		return nil, NewConflictError("personal info was already submitted")
	}
	info, fields := s.sanitizePersonalInfo(sess, in)
	if len(fields) > 0 {
		return nil, NewFieldsError("invalid personal info", fields)
	}
	sess.info = info
	sess.step = StepInstructions
	s.discardTranslitLocked(sess)
	sess.touchedAt = s.now()
	return s.viewLocked(sess), nil
}

// AcknowledgeInstructions moves to the first question.
func (s *WizardService) AcknowledgeInstructions(id string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, NewNotFoundError("session not found")
	}
	if sess.step != StepInstructions {
		return nil, NewConflictError("instructions already acknowledged")
	}
	sess.step = StepQuestion
	sess.qIndex = 0
	sess.touchedAt = s.now()
	return s.viewLocked(sess), nil
}

// SelectOption records the choice for the current question and resolves its
// feedback once, so what the respondent reads is exactly what gets stored.
// Re-selecting replaces the pending choice.
func (s *WizardService) SelectOption(id, optionID string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, NewNotFoundError("session not found")
	}
	if sess.step != StepQuestion {
		return nil, NewConflictError("no question is awaiting an answer")
	}
	q, okq := s.set.QuestionAt(sess.qIndex)
	if !okq {
		return nil, NewConflictError("no question is awaiting an answer")
	}
	var opt *catalog.Option
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			opt = &q.Options[i]
			break
		}
	}
	if opt == nil {
		return nil, NewInvalidError("unknown option")
	}
	text, err := s.engine.ResolveFeedback(q.Trait, opt.Score)
	if err != nil {
		return nil, NewInvalidError(err.Error())
	}
	sess.pendingOpt = opt.ID
	sess.pendingScore = opt.Score
	sess.pendingText = text
	sess.touchedAt = s.now()
	return s.viewLocked(sess), nil
}

// Advance commits the pending choice and moves on. On the last question it
// finalizes the session and hands the record to the sink; the step change
// and the handoff happen under one lock hold, so the sink sees each session
// exactly once. Advancing an already finished session is a no-op.
func (s *WizardService) Advance(ctx context.Context, id string) (*SessionView, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, NewNotFoundError("session not found")
	}
	switch sess.step {
	case StepResults:
		view := s.viewLocked(sess)
		s.mu.Unlock()
		return view, nil
	case StepQuestion:
	default:
		s.mu.Unlock()
		return nil, NewConflictError("no question to advance from")
	}
	if sess.pendingOpt == "" {
		msg := utils.T(sess.locale, "wizard.selection_required")
		s.mu.Unlock()
		return nil, NewInvalidError(msg)
	}
	q, okq := s.set.QuestionAt(sess.qIndex)
	if !okq {
		s.mu.Unlock()
		return nil, NewConflictError("no question to advance from")
	}
	answer := models.AnswerRecord{
		QuestionID: q.ID,
		Trait:      q.Trait,
		Score:      sess.pendingScore,
		Feedback:   sess.pendingText.EN,
	}

	if sess.qIndex+1 < s.set.N() {
		sess.answers = append(sess.answers, answer)
		sess.resolved = append(sess.resolved, sess.pendingText)
		sess.pendingOpt, sess.pendingScore, sess.pendingText = "", 0, catalog.Text{}
		sess.qIndex++
		sess.touchedAt = s.now()
		view := s.viewLocked(sess)
		s.mu.Unlock()
		return view, nil
	}

	answers := append(append([]models.AnswerRecord(nil), sess.answers...), answer)
	scores, total := s.engine.Tally(answers)
	final, err := s.engine.ResolveFinal(total)
	if err != nil {
		s.mu.Unlock()
		return nil, NewInvalidError(err.Error())
	}
	recScores := make(map[catalog.Trait]int, len(scores))
	for k, v := range scores {
		recScores[k] = v
	}
	rec := &models.SubmissionRecord{
		Info:            *sess.info,
		Answers:         append([]models.AnswerRecord(nil), answers...),
		TraitScores:     recScores,
		TotalScore:      total,
		FinalTitle:      final.Title.EN,
		FinalAssessment: final.Body.EN,
		Locale:          sess.locale,
		SubmittedAt:     s.now(),
	}
	sess.answers = answers
	sess.resolved = append(sess.resolved, sess.pendingText)
	sess.pendingOpt, sess.pendingScore, sess.pendingText = "", 0, catalog.Text{}
	sess.traitScores = scores
	sess.total = total
	sess.final = final
	sess.record = rec
	sess.step = StepResults
	sess.touchedAt = s.now()
	s.mu.Unlock()

	sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.sinkTimeout)
	sinkID, sinkErr := s.sink.AddSubmission(sinkCtx, rec)
	cancel()
	if sinkErr != nil {
		s.logger.Error("submission sink failed", "session", id, "err", sinkErr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cur, still := s.sessions[id]
	if !still {
		// swept while the sink call ran; the record was still handed off
		return &SessionView{ID: id, Step: StepResults.String(), Locale: rec.Locale, Answered: len(rec.Answers), Total: s.set.N()}, nil
	}
	if sinkErr != nil {
		cur.sinkFailed = true
	} else {
		cur.sinkID = sinkID
		cur.record.ID = sinkID
	}
	return s.viewLocked(cur), nil
}

// Results returns the full localized results of a finished session.
func (s *WizardService) Results(id string) (*ResultsView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, NewNotFoundError("session not found")
	}
	if sess.step != StepResults {
		return nil, NewConflictError("the assessment is not finished")
	}
	rv := &ResultsView{
		SessionID:    sess.id,
		Name:         sess.info.Name,
		NameHI:       sess.info.NameHI,
		TotalScore:   sess.total,
		MaxScore:     s.set.MaxTotal(),
		FinalTitle:   sess.final.Title.In(sess.locale),
		FinalBody:    sess.final.Body.In(sess.locale),
		SubmissionID: sess.sinkID,
		SubmittedAt:  sess.record.SubmittedAt,
	}
	for i, a := range sess.answers {
		rv.Lines = append(rv.Lines, ResultLineView{
			QuestionID: a.QuestionID,
			Trait:      string(a.Trait),
			TraitLabel: a.Trait.Label().In(sess.locale),
			Score:      a.Score,
			Feedback:   sess.resolved[i].In(sess.locale),
		})
	}
	for _, tr := range s.set.TraitOrder() {
		rv.TraitScores = append(rv.TraitScores, TraitScoreView{
			Trait: string(tr),
			Label: tr.Label().In(sess.locale),
			Score: sess.traitScores[tr],
			Max:   3 * s.set.TraitQuestionCount(tr),
		})
	}
	if sess.sinkFailed {
		rv.Notice = utils.T(sess.locale, "notice.sink_failed")
	}
	return rv, nil
}

// CertificateData assembles the bilingual payload the certificate renderer
// works from. Available once the session reached results.
func (s *WizardService) CertificateData(id string) (*CertificateData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, NewNotFoundError("session not found")
	}
	if sess.step != StepResults {
		return nil, NewConflictError("the certificate is only available from the results step")
	}
	data := &CertificateData{
		Name:         sess.info.Name,
		NameHI:       sess.info.NameHI,
		Age:          sess.info.Age,
		State:        sess.info.State,
		District:     sess.info.District,
		Locale:       sess.locale,
		TotalScore:   sess.total,
		MaxScore:     s.set.MaxTotal(),
		FinalTitle:   sess.final.Title,
		FinalBody:    sess.final.Body,
		SubmissionID: sess.sinkID,
		SubmittedAt:  sess.record.SubmittedAt,
	}
	for _, tr := range s.set.TraitOrder() {
		data.TraitScores = append(data.TraitScores, CertificateTraitScore{
			Trait: tr,
			Label: tr.Label(),
			Score: sess.traitScores[tr],
			Max:   3 * s.set.TraitQuestionCount(tr),
		})
	}
	return data, nil
}

// Instructions returns the localized instructions copy for a session.
func (s *WizardService) Instructions(id string) (*InstructionsView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, NewNotFoundError("session not found")
	}
	return &InstructionsView{
		Title: utils.T(sess.locale, "instructions.title"),
		Body:  utils.T(sess.locale, "instructions.body"),
	}, nil
}

// Restart ends a finished session and frees its state. The next assessment
// starts from a fresh session.
func (s *WizardService) Restart(id string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, NewNotFoundError("session not found")
	}
	if sess.step != StepResults {
		return nil, NewConflictError("restart is only available from the results step")
	}
	s.discardTranslitLocked(sess)
	sess.step = StepDone
	delete(s.sessions, id)
	return s.viewLocked(sess), nil
}

// Sweep drops sessions idle longer than the TTL and returns how many were
// removed. The caller drives it on a ticker.
func (s *WizardService) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.touchedAt) > s.ttl {
			s.discardTranslitLocked(sess)
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// ActiveSessions returns the number of live sessions.
func (s *WizardService) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *WizardService) discardTranslitLocked(sess *session) {
	if sess.translitCancel != nil {
		sess.translitCancel()
		sess.translitCancel = nil
	}
	sess.translitSeq++
	sess.translitHint = ""
}

func (s *WizardService) viewLocked(sess *session) *SessionView {
	v := &SessionView{
		ID:       sess.id,
		Step:     sess.step.String(),
		Locale:   sess.locale,
		Answered: len(sess.answers),
		Total:    s.set.N(),
	}
	switch sess.step {
	case StepLanguageSelect:
		v.Locales = catalog.SupportedLocales()
	case StepInstructions:
		v.Instructions = &InstructionsView{
			Title: utils.T(sess.locale, "instructions.title"),
			Body:  utils.T(sess.locale, "instructions.body"),
		}
	case StepQuestion:
		q, ok := s.set.QuestionAt(sess.qIndex)
		if !ok {
			return v
		}
		qv := &QuestionView{
			Index:      sess.qIndex,
			ID:         q.ID,
			Trait:      string(q.Trait),
			TraitLabel: q.Trait.Label().In(sess.locale),
			Prompt:     q.Prompt.In(sess.locale),
		}
		for _, opt := range q.Options {
			qv.Options = append(qv.Options, OptionView{ID: opt.ID, Label: opt.Label.In(sess.locale)})
		}
		if sess.pendingOpt != "" {
			qv.Selected = sess.pendingOpt
			qv.Feedback = sess.pendingText.In(sess.locale)
		}
		v.Question = qv
	}
	return v
}

// sanitizePersonalInfo trims, validates and canonicalizes the form input.
// It returns localized per-field messages on failure.
func (s *WizardService) sanitizePersonalInfo(sess *session, in models.PersonalInfo) (*models.PersonalInfo, map[string]string) {
	locale := sess.locale
	info := in
	info.Name = strings.TrimSpace(in.Name)
	info.NameHI = strings.TrimSpace(in.NameHI)
	info.Gender = strings.TrimSpace(in.Gender)
	info.DialCode = strings.TrimSpace(in.DialCode)
	info.Mobile = strings.TrimSpace(in.Mobile)
	info.Email = strings.TrimSpace(in.Email)
	info.State = strings.TrimSpace(in.State)
	info.District = strings.TrimSpace(in.District)

	fields := map[string]string{}
	if err := s.validate.Struct(&info); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				name, key := personalInfoFieldKey(fe.StructField(), fe.Tag())
				if _, seen := fields[name]; !seen {
					fields[name] = utils.T(locale, key)
				}
			}
		} else {
			fields["form"] = err.Error()
		}
	}

	if g, ok := models.NormalizeGender(info.Gender); ok {
		info.Gender = g
	} else {
		fields["gender"] = utils.T(locale, "validate.gender.unknown")
	}

	if info.DialCode == "" {
		info.DialCode = geo.DefaultDialCode
	} else if !geo.ValidDialCode(info.DialCode) {
		fields["dial_code"] = utils.T(locale, "validate.dial_code.invalid")
	}

	if _, seen := fields["state"]; !seen && info.State != "" {
		st, ok := geo.FindState(info.State)
		if !ok {
			fields["state"] = utils.T(locale, "validate.state.unknown")
		} else {
			info.State = st.Name
			if _, dseen := fields["district"]; !dseen {
				d, ok := geo.FindDistrict(info.State, info.District)
				if !ok {
					fields["district"] = utils.T(locale, "validate.district.mismatch")
				} else {
					info.District = d
				}
			}
		}
	}

	if info.NameHI == "" {
		info.NameHI = sess.translitHint
	}
	if len(fields) > 0 {
		return nil, fields
	}
	return &info, nil
}

func personalInfoFieldKey(field, tag string) (string, string) {
	switch field {
	case "Name":
		if tag == "required" {
			return "name", "validate.name.required"
		}
		return "name", "validate.name.length"
	case "NameHI":
		return "name_hi", "validate.name.length"
	case "Age":
		return "age", "validate.age.range"
	case "Mobile":
		return "mobile", "validate.mobile.invalid"
	case "Email":
		return "email", "validate.email.invalid"
	case "State":
		return "state", "validate.state.unknown"
	case "District":
		return "district", "validate.district.required"
	}
	return strings.ToLower(field), "validate." + strings.ToLower(field) + ".invalid"
}
