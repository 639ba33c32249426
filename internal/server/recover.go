package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/osse101/LoveSim_Go/internal/handler"
	"github.com/osse101/LoveSim_Go/internal/logger"
)

// RecoverMiddleware turns a handler panic into a generic JSON 500 and logs the
// stack with the request ID. http.ErrAbortHandler is re-raised.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error(LogMsgPanicRecovered,
				"panic", rec,
				logger.AttrKeyMethod, r.Method,
				logger.AttrKeyPath, r.URL.Path,
				"stack", string(debug.Stack()))
			handler.RespondError(w, http.StatusInternalServerError, handler.ErrMsgInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
