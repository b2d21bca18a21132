package learningassistant

import "encoding/json"

// Mode selects which input form is active
type Mode string

const (
	ModeTranscript Mode = "transcript"
	ModeURL        Mode = "url"
)

// ParseMode returns the mode named by s, or false for anything else
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeTranscript, ModeURL:
		return Mode(s), true
	}
	return "", false
}

// QuizQuestion is a single multiple choice question returned by the backend.
// CorrectAnswer is expected to equal one of Options exactly.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// LearningResult is the artifact bundle produced by the backend for one video
type LearningResult struct {
	Title         string         `json:"title,omitempty"`
	Summary       string         `json:"summary"`
	KeyPoints     []string       `json:"keyPoints"`
	QuizQuestions []QuizQuestion `json:"quizQuestions"`

	// Raw holds the response body exactly as received
	Raw json.RawMessage `json:"-"`
}

// Submission is the payload built from the active form. Kind decides which
// of URL or Text/Title is meaningful.
type Submission struct {
	Kind  Mode
	URL   string
	Text  string
	Title string
}

// processVideoRequest is the body of POST /videos/process
type processVideoRequest struct {
	YoutubeURL string `json:"youtubeUrl"`
}

// transcriptRequest is the body of POST /videos/transcript
type transcriptRequest struct {
	Transcript string `json:"transcript"`
	Title      string `json:"title"`
}

// errorBody is the failure shape of both endpoints
type errorBody struct {
	Error json.RawMessage `json:"error"`
}
