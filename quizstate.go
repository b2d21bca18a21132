package learningassistant

// Option classes applied by the result view
const (
	ClassSelected  = "selected"
	ClassCorrect   = "correct"
	ClassIncorrect = "incorrect"
)

// QuizState tracks per question whether the answer is revealed and which
// option the user picked. Keys are question indexes into the current
// result's QuizQuestions.
type QuizState struct {
	Revealed map[int]bool
	Selected map[int]string
}

// NewQuizState returns an empty state
func NewQuizState() QuizState {
	return QuizState{
		Revealed: make(map[int]bool),
		Selected: make(map[int]string),
	}
}

// Reset forgets every reveal and selection
func (qs *QuizState) Reset() {
	qs.Revealed = make(map[int]bool)
	qs.Selected = make(map[int]string)
}

// ToggleAnswer flips the reveal flag of question index. Selection is untouched.
func (qs *QuizState) ToggleAnswer(index int) {
	if qs.Revealed == nil {
		qs.Revealed = make(map[int]bool)
	}
	qs.Revealed[index] = !qs.Revealed[index]
}

// SelectOption records option as the answer to question index, replacing
// any earlier choice. It may be called before or after a reveal.
func (qs *QuizState) SelectOption(index int, option string) {
	if qs.Selected == nil {
		qs.Selected = make(map[int]string)
	}
	qs.Selected[index] = option
}

// IsRevealed reports whether the answer to question index is shown
func (qs QuizState) IsRevealed(index int) bool {
	return qs.Revealed[index]
}

// SelectedOption returns the chosen option for question index
func (qs QuizState) SelectedOption(index int) (string, bool) {
	opt, ok := qs.Selected[index]
	return opt, ok
}

// OptionClasses derives the classes for one option of question index whose
// correct answer is correctAnswer. The result may hold more than one class,
// e.g. an option can be both selected and correct. Matching is exact string
// equality.
func (qs QuizState) OptionClasses(index int, option, correctAnswer string) []string {
	var classes []string
	selected, hasSelection := qs.Selected[index]
	isSelected := hasSelection && selected == option
	revealed := qs.Revealed[index]

	if isSelected {
		classes = append(classes, ClassSelected)
	}
	if revealed && option == correctAnswer {
		classes = append(classes, ClassCorrect)
	}
	if revealed && isSelected && option != correctAnswer {
		classes = append(classes, ClassIncorrect)
	}
	return classes
}
