package pkgrouter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
)

const (
	// GenericErrorMessage is sent whenever a failure carries no message.
	GenericErrorMessage = "Internal server error"
	// NotFoundMessage is the message of the failure produced when no route matched.
	NotFoundMessage = "this route does not exist"
)

// ErrorDetail is the inner object of the error wire format.
type ErrorDetail struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the error wire format: {"error":{"status":..,"message":..}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// Normalize derives the effective status and response body for err.
//
// An oversized upload (code LIMIT_FILE_SIZE) is always 400, whatever status it
// carries. Otherwise the failure status is used when set, else 500. Errors
// that are not *pkgerror.Error never leak their text to the client.
func Normalize(err error) (int, ErrorResponse) {
	status := http.StatusInternalServerError
	msg := ""

	var ferr *pkgerror.Error
	if errors.As(err, &ferr) {
		switch {
		case ferr.Code() == pkgerror.CodeFileTooLarge:
			status = http.StatusBadRequest
		case validStatus(ferr.Status()):
			status = ferr.Status()
		}
		msg = ferr.Msg()
	}

	if msg == "" {
		msg = GenericErrorMessage
	}

	return status, ErrorResponse{Error: ErrorDetail{Status: status, Message: msg}}
}

// WriteHeader panics outside this range.
func validStatus(code int) bool {
	return code >= 100 && code <= 999
}

// fail is the terminal stage: it writes exactly one error response for err.
//
//nolint:contextcheck // logging uses the request context
func (r *Router) fail(w http.ResponseWriter, req *http.Request, err error) {
	ctx := req.Context()
	if ctx.Err() != nil {
		slog.WarnContext(ctx, "client gone before error response", "error", err, "because", ctx.Err())
		return
	}

	status, body := Normalize(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "status", status, "error", err)
	} else {
		slog.WarnContext(ctx, "request rejected", "status", status, "error", err)
	}

	writeJSON(w, body, status)
}
