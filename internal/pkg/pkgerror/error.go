package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates that the requested resource could not be found.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict indicates that a unique attribute is already taken.
	ErrConflict = errors.New("resource already exists")
)

const (
	// CodeFileTooLarge marks an uploaded file that exceeded the configured size limit.
	CodeFileTooLarge = "LIMIT_FILE_SIZE"
	// CodeBodyTooLarge marks a request body that exceeded the decoder limit.
	CodeBodyTooLarge = "entity.too.large"
	// CodeParseFailed marks a request body that could not be decoded.
	CodeParseFailed = "entity.parse.failed"
)

// Error is a failure surfaced while handling a request.
//
// Every field is optional: a zero status means "unspecified" and an empty
// message means the caller gets a generic one.
type Error struct {
	err    error
	msg    string
	status int
	code   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	if e.status != 0 {
		return http.StatusText(e.status)
	}

	return "Unknown error"
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Status: %d, Code: %q, Message: %s, Underlying Error: %v",
		e.status,
		e.code,
		e.msg,
		e.err,
	)
}

// Msg returns the user-facing error message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Status returns the HTTP status carried by the failure, or 0 when unspecified.
func (e *Error) Status() int {
	return e.status
}

// Code returns the classifier code, if set.
func (e *Error) Code() string {
	return e.code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// WithCode returns a copy of the failure tagged with a classifier code.
func (e *Error) WithCode(code string) *Error {
	cp := *e
	cp.code = code
	return &cp
}

func new(err error, msg string, status int, code string) *Error {
	return &Error{err: err, msg: msg, status: status, code: code}
}

// New creates a failure with an explicit status and message.
func New(status int, msg string) error {
	return new(nil, msg, status, "")
}

// NewServer wraps an unexpected error. It carries no status and no message,
// so clients only ever see the generic internal error.
func NewServer(err error) error {
	return new(err, "", 0, "")
}

// NewBusiness creates a failure for a domain rule violation.
func NewBusiness(msg string, status int) error {
	return new(nil, msg, status, "")
}

// NewNotFound creates a 404 failure with the given message.
func NewNotFound(msg string) error {
	return new(nil, msg, http.StatusNotFound, "")
}

// NewInvalidInput creates a 400 failure whose message is the cause's text.
func NewInvalidInput(err error) error {
	return new(err, err.Error(), http.StatusBadRequest, "")
}

// NewInvalidFormat creates a failure for a request body that could not be decoded.
func NewInvalidFormat() error {
	return new(nil, "invalid request body", http.StatusBadRequest, CodeParseFailed)
}

// NewBodyTooLarge creates a failure for a request body over the decoder limit.
func NewBodyTooLarge() error {
	return new(nil, "request entity too large", http.StatusRequestEntityTooLarge, CodeBodyTooLarge)
}

// NewFileTooLarge creates a failure for an uploaded file over the size limit.
func NewFileTooLarge() error {
	return new(nil, "File too large", http.StatusRequestEntityTooLarge, CodeFileTooLarge)
}
