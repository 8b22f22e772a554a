package pkgrouter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
)

func TestNormalizeFileTooLargeForcesBadRequest(t *testing.T) {
	status, body := Normalize(pkgerror.NewFileTooLarge())
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body.Error.Status != http.StatusBadRequest || body.Error.Message != "File too large" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestNormalizeFileTooLargeOverridesAnyStatus(t *testing.T) {
	err := pkgerror.New(http.StatusForbidden, "nope").(*pkgerror.Error).WithCode(pkgerror.CodeFileTooLarge)
	status, _ := Normalize(err)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestNormalizeUnspecifiedFailure(t *testing.T) {
	status, body := Normalize(pkgerror.NewServer(nil))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body.Error.Message != GenericErrorMessage {
		t.Fatalf("expected generic message, got %q", body.Error.Message)
	}
}

func TestNormalizePlainErrorHidesDetail(t *testing.T) {
	status, body := Normalize(errors.New("sql: connection refused"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body.Error.Message != GenericErrorMessage {
		t.Fatalf("expected generic message, got %q", body.Error.Message)
	}
}

func TestNormalizePassesStatusAndMessage(t *testing.T) {
	status, body := Normalize(pkgerror.New(http.StatusForbidden, "Forbidden"))
	if status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
	if body.Error.Status != http.StatusForbidden || body.Error.Message != "Forbidden" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestNormalizeStatusWithoutMessage(t *testing.T) {
	status, body := Normalize(pkgerror.New(http.StatusConflict, ""))
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
	if body.Error.Message != GenericErrorMessage {
		t.Fatalf("expected generic message, got %q", body.Error.Message)
	}
}

func TestNormalizeWrappedFailure(t *testing.T) {
	wrapped := errors.Join(errors.New("ctx"), pkgerror.NewNotFound("user not found"))
	status, body := Normalize(wrapped)
	if status != http.StatusNotFound || body.Error.Message != "user not found" {
		t.Fatalf("unexpected normalize result: %d %+v", status, body)
	}
}

func TestNormalizeInvalidStatusFallsBack(t *testing.T) {
	status, _ := Normalize(pkgerror.New(42, "odd"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
}

func TestFailWritesWireFormat(t *testing.T) {
	ro := NewRouter(nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	ro.fail(rec, req, pkgerror.New(http.StatusForbidden, "Forbidden"))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"error":{"status":403,"message":"Forbidden"}}` {
		t.Fatalf("unexpected body: %s", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("unexpected content type: %q", got)
	}
}

func TestFailSkipsWriteWhenClientGone(t *testing.T) {
	ro := NewRouter(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	ro.fail(rec, req, pkgerror.NewNotFound(NotFoundMessage))

	if rec.Body.Len() != 0 {
		t.Fatalf("expected no body, got %s", rec.Body.String())
	}
}
