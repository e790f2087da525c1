package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"hospital-management/pkg/response"

	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

type LoggingMiddleware struct {
	log *logrus.Logger
}

func NewLoggingMiddleware(log *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{log: log}
}

// Handle writes one access log entry per request and turns panics into 500s.
func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			fields := logrus.Fields{
				"request_id": GetRequestIDFromContext(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"remote_ip":  r.RemoteAddr,
			}

			if p := recover(); p != nil {
				fields["panic"] = p
				fields["stack"] = string(debug.Stack())
				m.log.WithFields(fields).Error("panic recovered")
				response.InternalServerError(rec, "")
			}

			fields["status"] = rec.status
			fields["latency"] = time.Since(start).String()

			entry := m.log.WithFields(fields)
			if rec.status >= http.StatusInternalServerError {
				entry.Error("request")
			} else {
				entry.Info("request")
			}
		}()

		next.ServeHTTP(rec, r)
	})
}
