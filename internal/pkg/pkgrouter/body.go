package pkgrouter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
)

// DefaultBodyLimit matches the usual 100kb cap of JSON and form decoders.
const DefaultBodyLimit int64 = 100 << 10

type bodyContextKey struct{}

type decodedBody struct {
	value any
}

// Body returns the decoded request body stored by the decoder stage.
//
// JSON bodies decode to the usual any-tree; urlencoded bodies decode to a
// map[string]any whose values are strings or []any for repeated keys. It is
// nil for empty bodies and for content types the decoder does not handle.
func Body(ctx context.Context) any {
	b, ok := ctx.Value(bodyContextKey{}).(decodedBody)
	if !ok {
		return nil
	}
	return b.value
}

// Bind decodes the request body stored by the decoder stage into dst.
//
// A request without a decoded body leaves dst untouched.
func Bind(r *http.Request, dst any) error {
	v := Body(r.Context())
	if v == nil {
		return nil
	}

	raw, err := codec.Marshal(v)
	if err != nil {
		return pkgerror.NewServer(err)
	}

	if err := codec.Unmarshal(raw, dst); err != nil {
		return pkgerror.NewInvalidFormat()
	}

	return nil
}

func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return strings.ToLower(mt)
}

func isJSON(mt string) bool {
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// decodeBody is the body decoder stage. It never writes a response: it either
// returns the request enriched with the decoded body or a failure.
func decodeBody(r *http.Request, limit int64) (*http.Request, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return r, nil
	}

	mt := mediaType(r)
	if !isJSON(mt) && mt != "application/x-www-form-urlencoded" {
		return r, nil
	}

	raw, err := readLimited(r, limit)
	if err != nil {
		return r, err
	}

	var value any
	if len(bytes.TrimSpace(raw)) > 0 {
		if isJSON(mt) {
			if err := codec.Unmarshal(raw, &value); err != nil {
				return r, pkgerror.NewInvalidFormat()
			}
		} else {
			values, err := url.ParseQuery(string(raw))
			if err != nil {
				return r, pkgerror.NewInvalidFormat()
			}
			value = formToMap(values)
		}
	}

	out := r.WithContext(context.WithValue(r.Context(), bodyContextKey{}, decodedBody{value: value}))
	out.Body = io.NopCloser(bytes.NewReader(raw))

	return out, nil
}

func readLimited(r *http.Request, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}

	if r.ContentLength > limit {
		return nil, pkgerror.NewBodyTooLarge()
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, pkgerror.New(http.StatusBadRequest, "request aborted")
	}

	if int64(len(raw)) > limit {
		return nil, pkgerror.NewBodyTooLarge()
	}

	return raw, nil
}

func formToMap(values url.Values) map[string]any {
	m := make(map[string]any, len(values))
	for k, v := range values {
		if len(v) == 1 {
			m[k] = v[0]
			continue
		}
		list := make([]any, len(v))
		for i, item := range v {
			list[i] = item
		}
		m[k] = list
	}
	return m
}
