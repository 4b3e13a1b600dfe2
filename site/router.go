package site

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"portfolio/constants"
)

// Router builds the HTTP handler: JSON API under /api, admin screens under
// /admin, uploaded files under /files and the public pages.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	CORSMiddleware := cors.New(cors.Options{
		AllowedOrigins:   s.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(CORSMiddleware.Handler)
	r.Use(middleware.RealIP)
	r.Use(s.RequestLoggerMiddleware)
	if perMinute := s.cfg.RateLimit.PerMinute; perMinute > 0 {
		r.Use(httprate.LimitByIP(perMinute, time.Minute)) // shared across all routes
	}
	r.Use(middleware.Recoverer)
	r.Use(s.TryPutUserInContextMiddleware)

	r.Route("/api", s.mountAPI)
	s.mountAdmin(r)

	fileServer := http.FileServer(http.Dir(s.uploads.Dir()))
	r.Handle(constants.UPLOADS_URL_PREFIX+"/*", http.StripPrefix(constants.UPLOADS_URL_PREFIX, fileServer))
	r.Get("/sitemap.xml", s.sitemap)

	r.Group(func(r chi.Router) {
		r.Use(s.MaintenanceMiddleware)

		r.Get("/", s.homePage)
		r.Get("/about", s.aboutPage)
		r.Get("/projects", s.projectsPage)
		r.Get("/skills", s.skillsPage)
		r.Get("/certifications", s.certificationsPage)
		r.Get("/blog", s.blogIndexPage)
		r.Get("/blog/{slug}", s.blogPostPage)
		r.Get("/contact", s.contactPage)
		r.With(s.strictRateLimit()).Post("/contact", s.submitContactPage)
		r.Get("/gists", s.gistsPage)
	})

	r.NotFound(s.notFoundPage)

	return r
}

// strictRateLimit guards the login and contact endpoints.
func (s *Server) strictRateLimit() func(http.Handler) http.Handler {
	perMinute := s.cfg.RateLimit.LoginPerMinute
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.LimitByIP(perMinute, time.Minute)
}
