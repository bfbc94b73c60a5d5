package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/hlog"

	"github.com/samiksha-ambastha1205/round2-mechatron/internal/api/respond"
)

// Message is the body message sent after a recovered panic.
const Message = "Internal server error."

// Middleware intercepts panics from downstream handlers, logs them on the
// request logger, and answers 500 in the login response shape.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			hlog.FromRequest(r).Error().
				Interface("panic", rec).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			respond.WriteResult(w, http.StatusInternalServerError, false, Message)
		}()
		next.ServeHTTP(w, r)
	})
}
