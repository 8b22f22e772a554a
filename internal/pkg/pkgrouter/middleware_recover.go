package pkgrouter

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
)

// ErrPanic wraps the value recovered from a panicking handler.
var ErrPanic = errors.New("panic on the server")

type failFunc func(w http.ResponseWriter, r *http.Request, err error)

// writeTracker remembers whether a response was started so a recovered panic
// never produces a second response.
type writeTracker struct {
	http.ResponseWriter
	wrote bool
}

func (w *writeTracker) WriteHeader(code int) {
	w.wrote = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *writeTracker) Write(p []byte) (int, error) {
	w.wrote = true
	return w.ResponseWriter.Write(p)
}

func (w *writeTracker) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		w.wrote = true
		f.Flush()
	}
}

//nolint:err113 // it use dynamic error
func (w *writeTracker) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}
	w.wrote = true
	return h.Hijack()
}

func (w *writeTracker) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

//nolint:contextcheck // ignore error
func middlewareRecoverer(fail failFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tw := &writeTracker{ResponseWriter: w}

			defer func() {
				if rvr := recover(); rvr != nil {
					//nolint:err113,errorlint // this must compare directly
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}

					slog.ErrorContext(r.Context(), "panic on the server", "because", rvr)

					lines := strings.Split(string(debug.Stack()), "\n")
					printStackTrace(lines)

					if tw.wrote || r.Header.Get("Connection") == "Upgrade" {
						return
					}

					fail(w, r, pkgerror.NewServer(fmt.Errorf("%w: %v", ErrPanic, rvr)))
				}
			}()

			next.ServeHTTP(tw, r)
		})
	}
}

func printStackTrace(lines []string) {
	fmt.Fprintln(os.Stderr, "===== ===== START ===== =====")
	for i := 0; i < len(lines)-1; i++ {
		line := strings.TrimSpace(lines[i+1])
		if !strings.Contains(line, "/internal/") || !strings.Contains(line, ".go") {
			continue
		}
		idx := strings.Index(line, ".go:")
		if idx == -1 {
			continue
		}
		end := strings.Index(line[idx:], " ")
		if end == -1 {
			end = len(line)
		} else {
			end += idx
		}
		shortPath := line[:end]
		if internalIdx := strings.Index(shortPath, "/internal/"); internalIdx != -1 {
			fmt.Fprintln(os.Stderr, "stack trace: ", shortPath[internalIdx+1:])
		}
	}
	fmt.Fprintln(os.Stderr, "===== ===== END ===== =====")
}
