package pkglog

import "context"

const invalidCorrelationID = "[invalid_chain_id]"

type correlationIDKey struct{}

// GetCorrelationID returns the correlation ID stored in the context, or a
// placeholder when the request never went through the correlation middleware.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return invalidCorrelationID
	}
	cid, ok := ctx.Value(correlationIDKey{}).(string)
	if !ok {
		return invalidCorrelationID
	}
	return cid
}

// SetCorrelationID stores a correlation ID into the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}

// HasCorrelationID reports whether ctx carries a usable correlation ID.
func HasCorrelationID(ctx context.Context) bool {
	cid := GetCorrelationID(ctx)
	return cid != "" && cid != invalidCorrelationID
}
