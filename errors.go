package learningassistant

import "errors"

// ErrorKind classifies failures the user can see
type ErrorKind string

const (
	KindValidation ErrorKind = "ValidationError"
	KindMalformed  ErrorKind = "MalformedResponse"
	KindAPI        ErrorKind = "ApiError"
	KindTransport  ErrorKind = "TransportError"
)

// User facing messages
const (
	MsgEmptyURL          = "Please enter a YouTube URL"
	MsgShortTranscript   = "Please enter a transcript with at least 50 characters"
	MsgMalformedResponse = "Invalid JSON response from server"
	MsgVideoFailed       = "Failed to process video"
	MsgTranscriptFailed  = "Failed to process transcript"
)

// ErrBusy is returned when a submission is attempted while another is in flight
var ErrBusy = errors.New("a submission is already in progress")

// Error is a failure surfaced to the user as a single message string
type Error struct {
	Kind    ErrorKind
	Message string
	// Status is the HTTP status for KindAPI, zero otherwise
	Status int
	// Err is the underlying cause, if any. It is never displayed.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

// KindOf reports the kind of err, or "" when err is not an *Error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// DisplayMessage converts any error into the one string the page shows
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
