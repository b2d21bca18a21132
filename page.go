package learningassistant

import "context"

// Page is the state behind one learning assistant view. All mutations go
// through its methods so the reset and loading rules hold for every caller.
type Page struct {
	Mode Mode

	// Drafts survive mode switches
	URLDraft        string
	TranscriptDraft string
	TitleDraft      string

	Loading bool
	Error   string
	Result  *LearningResult
	Quiz    QuizState
}

// NewPage returns a page in transcript mode with nothing submitted
func NewPage() *Page {
	return &Page{
		Mode: ModeTranscript,
		Quiz: NewQuizState(),
	}
}

// SetMode switches the active form. Drafts of the other mode are kept.
func (p *Page) SetMode(m Mode) {
	p.Mode = m
}

// Submission builds the payload for the active mode from the drafts
func (p *Page) Submission() Submission {
	if p.Mode == ModeURL {
		return Submission{Kind: ModeURL, URL: p.URLDraft}
	}
	return Submission{Kind: ModeTranscript, Text: p.TranscriptDraft, Title: p.TitleDraft}
}

// Begin starts a submission: it clears the previous error, result and quiz
// state, then validates. On success Loading is set and the Submission is
// returned for dispatch; the caller must call Settle exactly once afterwards.
// ErrBusy is returned without touching any state while Loading is set.
func (p *Page) Begin() (Submission, error) {
	if p.Loading {
		return Submission{}, ErrBusy
	}

	p.Error = ""
	p.Result = nil
	p.Quiz.Reset()

	sub := p.Submission()
	if err := sub.Validate(); err != nil {
		p.Error = DisplayMessage(err)
		return Submission{}, err
	}

	p.Loading = true
	return sub, nil
}

// Settle records the outcome of the request started by Begin and always
// clears Loading.
func (p *Page) Settle(result *LearningResult, err error) {
	p.Loading = false
	if err != nil {
		p.Result = nil
		p.Error = DisplayMessage(err)
		return
	}
	p.Result = result
	p.Error = ""
}

// Run performs a whole submission against d while the caller holds p.
// Callers that share p between goroutines use Begin and Settle directly so
// the dispatch happens outside their lock.
func (p *Page) Run(ctx context.Context, d Dispatcher) error {
	sub, err := p.Begin()
	if err != nil {
		return err
	}

	var (
		result *LearningResult
		derr   error
	)
	defer func() { p.Settle(result, derr) }()

	result, derr = d.Dispatch(ctx, sub)
	return derr
}

// ToggleAnswer flips the reveal flag of question index
func (p *Page) ToggleAnswer(index int) {
	p.Quiz.ToggleAnswer(index)
}

// SelectOption records the user's choice for question index
func (p *Page) SelectOption(index int, option string) {
	p.Quiz.SelectOption(index, option)
}
