package http

import (
	"context"
	"net/http"

	apperrors "github.com/Nwachukwuchinedu/Creative-Stitches/pkg/errors"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/httputil"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/logger"
)

// SessionHeader identifies the anonymous browser session that owns cart and
// wishlist state.
const SessionHeader = "X-Session-ID"

type sessionIDKey struct{}

// RequireSession extracts the session ID from the X-Session-ID header and
// stores it in the request context. Requests without one are rejected; the
// storefront cannot attribute cart state to anyone otherwise.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := r.Header.Get(SessionHeader)
		if sid == "" {
			httputil.WriteError(w, r, apperrors.Unauthorized("missing "+SessionHeader+" header"), logger.FromContext(r.Context()))
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey{}, sid)
		ctx = logger.WithSessionID(ctx, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session ID placed in the context by RequireSession.
func SessionID(ctx context.Context) string {
	if sid, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return sid
	}
	return ""
}
