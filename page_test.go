package learningassistant

import (
	"context"
	"errors"
	"testing"
)

// fakeDispatcher returns a canned outcome and records the page's loading
// flag as observed during the call
type fakeDispatcher struct {
	page        *Page
	result      *LearningResult
	err         error
	calls       int
	loadingSeen bool
	got         Submission
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, sub Submission) (*LearningResult, error) {
	f.calls++
	f.got = sub
	if f.page != nil {
		f.loadingSeen = f.page.Loading
	}
	return f.result, f.err
}

func sampleLearningResult() *LearningResult {
	return &LearningResult{
		Summary:   "s",
		KeyPoints: []string{"k"},
		QuizQuestions: []QuizQuestion{
			{Question: "q", Options: []string{"A", "B"}, CorrectAnswer: "B"},
		},
	}
}

func TestNewPageDefaults(t *testing.T) {
	p := NewPage()
	if p.Mode != ModeTranscript {
		t.Errorf("mode = %q, want transcript", p.Mode)
	}
	if p.Loading || p.Error != "" || p.Result != nil {
		t.Errorf("unexpected initial state: %+v", p)
	}
}

func TestSetModeKeepsDrafts(t *testing.T) {
	p := NewPage()
	p.TranscriptDraft = "draft transcript"
	p.TitleDraft = "draft title"
	p.SetMode(ModeURL)
	p.URLDraft = "https://youtu.be/x"
	p.SetMode(ModeTranscript)

	if p.TranscriptDraft != "draft transcript" || p.TitleDraft != "draft title" {
		t.Errorf("transcript drafts lost: %+v", p)
	}
	if p.URLDraft != "https://youtu.be/x" {
		t.Errorf("url draft lost: %q", p.URLDraft)
	}
	if got := p.Submission(); got.Kind != ModeTranscript || got.Text != "draft transcript" || got.URL != "" {
		t.Errorf("submission = %+v", got)
	}
}

func TestRun_ValidationFailureMakesNoCall(t *testing.T) {
	p := NewPage()
	p.Result = sampleLearningResult()
	p.Error = "old error"
	p.Quiz.SelectOption(0, "A")
	p.Quiz.ToggleAnswer(0)
	p.TranscriptDraft = "too short"

	d := &fakeDispatcher{page: p}
	err := p.Run(context.Background(), d)

	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if d.calls != 0 {
		t.Errorf("dispatcher called %d times", d.calls)
	}
	if p.Error != MsgShortTranscript {
		t.Errorf("error = %q", p.Error)
	}
	if p.Result != nil || p.Loading {
		t.Errorf("result/loading not reset: %+v", p)
	}
	if len(p.Quiz.Revealed) != 0 || len(p.Quiz.Selected) != 0 {
		t.Errorf("quiz state not reset: %+v", p.Quiz)
	}
}

func TestRun_URLValidation(t *testing.T) {
	p := NewPage()
	p.SetMode(ModeURL)
	p.URLDraft = "   "

	d := &fakeDispatcher{page: p}
	if err := p.Run(context.Background(), d); KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if p.Error != MsgEmptyURL || d.calls != 0 {
		t.Errorf("error = %q, calls = %d", p.Error, d.calls)
	}
}

func TestRun_Success(t *testing.T) {
	p := NewPage()
	p.SetMode(ModeURL)
	p.URLDraft = "https://youtu.be/x"
	p.Error = "previous"
	p.Quiz.SelectOption(3, "old")

	want := sampleLearningResult()
	d := &fakeDispatcher{page: p, result: want}
	if err := p.Run(context.Background(), d); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if !d.loadingSeen {
		t.Error("loading should be set while the request is in flight")
	}
	if p.Loading {
		t.Error("loading should be cleared after settlement")
	}
	if p.Result != want {
		t.Error("result not stored as returned")
	}
	if p.Error != "" {
		t.Errorf("error = %q", p.Error)
	}
	if len(p.Quiz.Selected) != 0 {
		t.Error("quiz state should have been reset when the submission began")
	}
	if d.got.Kind != ModeURL || d.got.URL != "https://youtu.be/x" {
		t.Errorf("dispatched %+v", d.got)
	}
}

func TestRun_FailuresClearLoading(t *testing.T) {
	errs := []error{
		newError(KindMalformed, MsgMalformedResponse, nil),
		&Error{Kind: KindAPI, Message: "bad video", Status: 422},
		newError(KindTransport, "connection refused", errors.New("connection refused")),
		errors.New("plain failure"),
	}

	for _, derr := range errs {
		p := NewPage()
		p.TranscriptDraft = validTranscript()
		d := &fakeDispatcher{page: p, err: derr}

		err := p.Run(context.Background(), d)
		if err != derr {
			t.Errorf("Run returned %v, want %v", err, derr)
		}
		if !d.loadingSeen {
			t.Error("loading not set during dispatch")
		}
		if p.Loading {
			t.Errorf("loading left set after %v", derr)
		}
		if p.Result != nil {
			t.Error("result should stay unset on failure")
		}
		if p.Error != derr.Error() {
			t.Errorf("error = %q, want %q", p.Error, derr.Error())
		}
	}
}

func TestBegin_BusyWhileLoading(t *testing.T) {
	p := NewPage()
	p.TranscriptDraft = validTranscript()

	if _, err := p.Begin(); err != nil {
		t.Fatalf("first Begin: %v", err)
	}
	p.Quiz.SelectOption(0, "A")

	if _, err := p.Begin(); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Begin = %v, want ErrBusy", err)
	}
	if !p.Loading {
		t.Error("busy Begin must not clear loading")
	}
	if _, ok := p.Quiz.SelectedOption(0); !ok {
		t.Error("busy Begin must not reset state")
	}

	p.Settle(nil, nil)
	if _, err := p.Begin(); err != nil {
		t.Errorf("Begin after Settle: %v", err)
	}
}

func TestPageQuizOperations(t *testing.T) {
	p := NewPage()
	p.Result = sampleLearningResult()
	p.SelectOption(0, "A")
	p.ToggleAnswer(0)

	if got := p.Quiz.OptionClasses(0, "A", "B"); len(got) != 2 {
		t.Errorf("classes for A = %v", got)
	}
	if got := p.Quiz.OptionClasses(0, "B", "B"); len(got) != 1 || got[0] != ClassCorrect {
		t.Errorf("classes for B = %v", got)
	}
}
