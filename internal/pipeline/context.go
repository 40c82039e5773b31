package pipeline

import (
	"context"
	"net/http"
)

type contextKey int

var bodyKey = contextKey(0)

func contextWithBody(ctx context.Context, body map[string]any) context.Context {
	return context.WithValue(ctx, bodyKey, body)
}

// Body returns the JSON object parsed from the request body, or nil if the
// request carried none.
func Body(r *http.Request) map[string]any {
	if body, ok := r.Context().Value(bodyKey).(map[string]any); ok {
		return body
	}

	return nil
}
