package waveform

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a waveform error kind. Codes are stable and safe to
// surface across the API boundary.
type ErrorCode int

const (
	CodeRecordingFailed      ErrorCode = 1000
	CodePlaybackFailed       ErrorCode = 1001
	CodeMicrophoneDenied     ErrorCode = 1002
	CodeInvalidConfiguration ErrorCode = 1003
	CodeFileNotFound         ErrorCode = 1004
)

// Error carries a stable code alongside a human-readable message. The engine
// itself only produces CodeInvalidConfiguration; the remaining kinds classify
// failures from audio collaborators (capture, playback, file sources).
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (code %d): %v", e.Message, e.Code, e.Err)
	}
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error with the given code and message.
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates an Error that wraps an underlying cause.
func WrapError(code ErrorCode, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf extracts the error code from err, if it carries one.
func CodeOf(err error) (ErrorCode, bool) {
	var we *Error
	if errors.As(err, &we) {
		return we.Code, true
	}
	return 0, false
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}
