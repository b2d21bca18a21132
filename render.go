package learningassistant

import "strings"

// OptionView is one selectable option of a rendered question
type OptionView struct {
	Text    string
	Classes []string
	// Letter labels the option in text front ends (A, B, ...)
	Letter string
}

// Class joins Classes for an HTML class attribute
func (o OptionView) Class() string {
	return strings.Join(o.Classes, " ")
}

// Has reports whether the option carries class c
func (o OptionView) Has(c string) bool {
	for _, x := range o.Classes {
		if x == c {
			return true
		}
	}
	return false
}

// QuestionView is one rendered quiz question
type QuestionView struct {
	Index         int
	Number        int
	Prompt        string
	Options       []OptionView
	Revealed      bool
	CorrectAnswer string
	ToggleLabel   string
}

// ResultView is the read-only projection of a LearningResult and its quiz state
type ResultView struct {
	Title         string
	Summary       string
	KeyPoints     []string
	QuestionCount int
	Questions     []QuestionView
}

// Toggle button labels
const (
	LabelShowAnswer = "Show Answer"
	LabelHideAnswer = "Hide Answer"
)

// RenderResult projects r into a view. It only reads qs. A nil result renders
// as nil.
func RenderResult(r *LearningResult, qs QuizState) *ResultView {
	if r == nil {
		return nil
	}

	view := &ResultView{
		Title:         r.Title,
		Summary:       r.Summary,
		KeyPoints:     r.KeyPoints,
		QuestionCount: len(r.QuizQuestions),
		Questions:     make([]QuestionView, 0, len(r.QuizQuestions)),
	}
	if view.KeyPoints == nil {
		view.KeyPoints = []string{}
	}

	for i, q := range r.QuizQuestions {
		qv := QuestionView{
			Index:         i,
			Number:        i + 1,
			Prompt:        q.Question,
			Revealed:      qs.IsRevealed(i),
			CorrectAnswer: q.CorrectAnswer,
			ToggleLabel:   LabelShowAnswer,
			Options:       make([]OptionView, 0, len(q.Options)),
		}
		if qv.Revealed {
			qv.ToggleLabel = LabelHideAnswer
		}
		for j, opt := range q.Options {
			qv.Options = append(qv.Options, OptionView{
				Text:    opt,
				Classes: qs.OptionClasses(i, opt, q.CorrectAnswer),
				Letter:  optionLetter(j),
			})
		}
		view.Questions = append(view.Questions, qv)
	}
	return view
}

func optionLetter(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return string(rune('A'+i%26)) + strings.Repeat("'", i/26)
}
