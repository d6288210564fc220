package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/vfg2006/media-planner-api/pkg/apiErrors"
	"github.com/vfg2006/media-planner-api/pkg/log"
)

const stackBufferSize = 4096

// LogPanicMiddleware transforma panics em 500 JSON; o detalhe só aparece em desenvolvimento
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, stackBufferSize)
				stack = stack[:runtime.Stack(stack, false)]

				log.ForContext(r.Context()).WithFields(log.Fields{
					"error":       fmt.Sprint(recovered),
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(stack),
				}).Error("http: panic recovered")

				var details any
				if log.IsDevelopment() {
					details = fmt.Sprint(recovered)
				}
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", details)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
