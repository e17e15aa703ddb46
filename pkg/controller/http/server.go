package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/secmon-lab/coachnote/pkg/usecase"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
)

type Server struct {
	router      *chi.Mux
	handler     http.Handler
	uc          *usecase.UseCases
	corsOrigins []string
}

type Options func(*Server)

// WithCORS allows browser front ends served from origins to call the API
func WithCORS(origins []string) Options {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Get("/", s.getSession)
			r.Post("/reset", s.resetSession)
			r.Post("/action-steps", s.addActionStep)
			r.Put("/action-steps/{index}", s.setActionStep)
			r.Delete("/action-steps/{index}", s.removeActionStep)
			r.Put("/{section}/{field}", s.updateSessionField)
		})

		r.Route("/labels", func(r chi.Router) {
			r.Get("/", s.getLabels)
			r.Put("/{section}/{key}", s.updateLabel)
			r.Post("/{section}/reset", s.resetLabels)
		})

		r.Get("/preferences", s.getPreferences)
		r.Put("/preferences", s.updatePreferences)

		r.Get("/profile/export", s.exportProfile)
		r.Post("/profile/import", s.importProfile)

		r.Get("/notes", s.downloadNotes)

		r.Route("/summary", func(r chi.Router) {
			r.Get("/", s.getSummary)
			r.Put("/", s.setSummary)
			r.Post("/", s.startSummary)
			r.Get("/download", s.downloadSummary)
		})

		r.Post("/question", s.generateQuestion)
		r.Get("/calendar", s.getCalendar)

		r.Route("/view", func(r chi.Router) {
			r.Get("/", s.getView)
			r.Put("/", s.jumpView)
			r.Post("/next", s.nextView)
			r.Post("/back", s.backView)
			r.Post("/finish", s.finishView)
		})
	})

	s.handler = r
	if len(s.corsOrigins) > 0 {
		s.handler = cors.New(cors.Options{
			AllowedOrigins: s.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders: []string{"Content-Type"},
			ExposedHeaders: []string{"Content-Disposition"},
		}).Handler(r)
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// requestLogger binds the request ID to the logger carried by the request context
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.From(ctx).With("request_id", middleware.GetReqID(ctx))
		next.ServeHTTP(w, r.WithContext(logging.With(ctx, logger)))
	})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
