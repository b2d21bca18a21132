package learningassistant

import (
	"reflect"
	"testing"
)

func TestRenderResult_Nil(t *testing.T) {
	if v := RenderResult(nil, NewQuizState()); v != nil {
		t.Errorf("expected nil view, got %+v", v)
	}
}

func TestRenderResult_MissingSections(t *testing.T) {
	v := RenderResult(&LearningResult{Summary: "only a summary"}, NewQuizState())

	if v.Title != "" {
		t.Errorf("title = %q", v.Title)
	}
	if v.KeyPoints == nil || len(v.KeyPoints) != 0 {
		t.Errorf("key points should render empty, got %#v", v.KeyPoints)
	}
	if v.QuestionCount != 0 || len(v.Questions) != 0 {
		t.Errorf("questions = %d / %v", v.QuestionCount, v.Questions)
	}
}

func TestRenderResult_Quiz(t *testing.T) {
	r := &LearningResult{
		Title:   "T",
		Summary: "S",
		QuizQuestions: []QuizQuestion{
			{Question: "first", Options: []string{"A", "B"}, CorrectAnswer: "B"},
			{Question: "second", Options: []string{"x", "y", "z"}, CorrectAnswer: "x"},
		},
	}
	qs := NewQuizState()
	qs.SelectOption(0, "A")
	qs.ToggleAnswer(0)

	v := RenderResult(r, qs)
	if v.QuestionCount != 2 {
		t.Fatalf("count = %d", v.QuestionCount)
	}

	q0 := v.Questions[0]
	if q0.Number != 1 || q0.Prompt != "first" || !q0.Revealed || q0.ToggleLabel != LabelHideAnswer {
		t.Errorf("question 0 = %+v", q0)
	}
	if got := q0.Options[0].Class(); got != "selected incorrect" {
		t.Errorf("option A class = %q", got)
	}
	if got := q0.Options[1].Class(); got != "correct" {
		t.Errorf("option B class = %q", got)
	}
	if !q0.Options[0].Has(ClassIncorrect) || q0.Options[1].Has(ClassSelected) {
		t.Errorf("Has mismatch: %+v", q0.Options)
	}

	q1 := v.Questions[1]
	if q1.Revealed || q1.ToggleLabel != LabelShowAnswer {
		t.Errorf("question 1 = %+v", q1)
	}
	letters := []string{q1.Options[0].Letter, q1.Options[1].Letter, q1.Options[2].Letter}
	if !reflect.DeepEqual(letters, []string{"A", "B", "C"}) {
		t.Errorf("letters = %v", letters)
	}
	for _, o := range q1.Options {
		if o.Class() != "" {
			t.Errorf("option %q should have no class, got %q", o.Text, o.Class())
		}
	}
}

func TestRenderResult_DoesNotMutateState(t *testing.T) {
	r := &LearningResult{QuizQuestions: []QuizQuestion{{Question: "q", Options: []string{"A"}, CorrectAnswer: "A"}}}
	qs := NewQuizState()
	RenderResult(r, qs)

	if len(qs.Revealed) != 0 || len(qs.Selected) != 0 {
		t.Errorf("render wrote quiz state: %+v", qs)
	}
}
