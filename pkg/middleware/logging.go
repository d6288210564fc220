package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/media-planner-api/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o ID de correlação da requisição
const CorrelationIDHeader = "X-Correlation-ID"

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra cada requisição HTTP com o ID de correlação, status e duração
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			if !log.IsDevelopment() {
				logger = logger.WithFields(log.Fields{
					"query":       r.URL.RawQuery,
					"remote_addr": r.RemoteAddr,
					"user_agent":  r.UserAgent(),
				})
			}

			logger.Debug("http: request started")

			next.ServeHTTP(sw, r)

			elapsed := time.Since(start)
			logger = logger.WithFields(log.Fields{
				"status_code": sw.status,
				"duration_ms": elapsed.Milliseconds(),
			})

			switch {
			case sw.status >= http.StatusInternalServerError:
				logger.Error("http: request failed")
			case sw.status >= http.StatusBadRequest:
				logger.Warn("http: request rejected")
			default:
				logger.Info("http: request completed")
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("http: slow request (%s)", elapsed)
			}
		})
	}
}

// statusWriter guarda o status enviado ao cliente; só o primeiro WriteHeader vale
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.status = code
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
