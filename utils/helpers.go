package utils

import (
	"context"
	"net/http"
	"strconv"

	"github.com/andrewpaige1/flashdeck/store"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID attaches a request id to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func GetRequestID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDKey).(string)
	return id, ok && id != ""
}

// ParseID reads a decimal id path segment. Anything else becomes
// store.InvalidID, which the store reports as not found.
func ParseID(r *http.Request, name string) uint {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 64)
	if err != nil {
		return store.InvalidID
	}
	return uint(id)
}
