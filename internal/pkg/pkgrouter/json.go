package pkgrouter

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

//nolint:gochecknoglobals // frozen codec, safe for concurrent use
var codec = sonic.ConfigStd

func writeJSON(w http.ResponseWriter, data any, code int) {
	body, err := codec.Marshal(data)
	if err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
		code = http.StatusInternalServerError
		body = []byte(`{"error":{"status":500,"message":"` + GenericErrorMessage + `"}}`)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		slog.Warn("server: failed to write response", "error", err)
	}
}
