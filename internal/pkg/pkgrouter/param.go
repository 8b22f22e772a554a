package pkgrouter

import (
	"context"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// GetParam reads a path parameter from the request context (as stored by httprouter).
//
// Catch-all parameters keep their leading slash, e.g. "/a/b.png".
func GetParam(ctx context.Context, key string) string {
	return httprouter.ParamsFromContext(ctx).ByName(key)
}

// GetTrimmedParam is GetParam without surrounding whitespace.
func GetTrimmedParam(ctx context.Context, key string) string {
	return strings.TrimSpace(GetParam(ctx, key))
}
