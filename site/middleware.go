package site

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"portfolio/templates"
)

const requestIDKey = contextKey("request_id")

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}

// RequestLoggerMiddleware tags each request with an id and logs it once the
// response is written.
func (s *Server) RequestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)

		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		entry := s.log.WithFields(logrus.Fields{
			"request_id":  id,
			"http_method": r.Method,
			"uri":         r.RequestURI,
			"status_code": status,
			"latency_ms":  time.Since(start).Milliseconds(),
			"client_ip":   r.RemoteAddr,
			"user_agent":  r.UserAgent(),
		})

		switch {
		case status >= 500:
			entry.Error("request completed with server error")
		case status >= 400:
			entry.Warn("request completed with client error")
		default:
			entry.Info("request completed")
		}
	})
}

// MaintenanceMiddleware answers public pages with 503 while maintenance mode
// is on. Signed in admins still see the site.
func (s *Server) MaintenanceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAdmin(r) {
			next.ServeHTTP(w, r)
			return
		}

		settings, err := s.store.GetSettings(r.Context())
		if err != nil {
			s.requestLog(r).WithError(err).Error("failed to read settings")
			next.ServeHTTP(w, r)
			return
		}
		if !settings.MaintenanceMode {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Retry-After", "3600")
		props := s.publicProps(w, r, settings, "Maintenance")
		s.render(w, r, http.StatusServiceUnavailable, templates.MaintenancePage(props, settings))
	})
}
