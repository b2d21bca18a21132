package learningassistant

import (
	"strings"
	"unicode/utf16"
)

// MinTranscriptChars is the shortest trimmed transcript accepted for submission
const MinTranscriptChars = 50

// DefaultTitle is sent when a transcript is submitted without a title
const DefaultTitle = "My Video"

// Validate checks the only preconditions the client enforces before a
// network call. The URL format is not checked.
func (s Submission) Validate() error {
	switch s.Kind {
	case ModeURL:
		if strings.TrimSpace(s.URL) == "" {
			return newError(KindValidation, MsgEmptyURL, nil)
		}
	case ModeTranscript:
		if transcriptLength(s.Text) < MinTranscriptChars {
			return newError(KindValidation, MsgShortTranscript, nil)
		}
	default:
		return newError(KindValidation, "Unknown input mode: "+string(s.Kind), nil)
	}
	return nil
}

// transcriptLength counts UTF-16 code units of the trimmed text, so a
// character outside the BMP counts twice as it does in a browser
func transcriptLength(text string) int {
	return len(utf16.Encode([]rune(strings.TrimSpace(text))))
}

// endpoint returns the path under the API base and the request body for s.
// Values are sent as typed, untrimmed.
func (s Submission) endpoint() (string, any) {
	if s.Kind == ModeURL {
		return "/videos/process", processVideoRequest{YoutubeURL: s.URL}
	}
	title := s.Title
	if title == "" {
		title = DefaultTitle
	}
	return "/videos/transcript", transcriptRequest{Transcript: s.Text, Title: title}
}

// fallbackMessage is shown for a non-2xx response without an error field
func (s Submission) fallbackMessage() string {
	if s.Kind == ModeURL {
		return MsgVideoFailed
	}
	return MsgTranscriptFailed
}
