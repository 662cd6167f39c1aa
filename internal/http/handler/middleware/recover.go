package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

type RecoverMiddleware struct {
	logs *zap.SugaredLogger
}

func NewRecoverMiddleware(logger *zap.SugaredLogger) *RecoverMiddleware {
	return &RecoverMiddleware{
		logs: logger,
	}
}

// Recover turns a handler panic into a 500 response.
func (m *RecoverMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			m.logs.Errorw("handler panicked",
				"panic", rec,
				"path", r.URL.Path,
				"request_id", RequestIDFrom(r.Context()))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"internal server error"}` + "\n"))
		}()

		next.ServeHTTP(w, r)
	})
}
