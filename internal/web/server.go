package web

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/hvillega/mantenimiento-api/internal/mediastore"
	"github.com/hvillega/mantenimiento-api/internal/service"
	"github.com/hvillega/mantenimiento-api/internal/store"
)

type Server struct {
	clients        *store.ClientStore
	locations      *store.LocationStore
	campaigns      *store.CampaignStore
	equipment      *store.EquipmentStore
	photos         *store.PhotoStore
	photoSvc       *service.PhotoService
	media          mediastore.MediaStore
	maxUploadBytes int64
	logger         *slog.Logger
	router         chi.Router
}

func NewServer(database *sql.DB, media mediastore.MediaStore, maxUploadBytes int64, logger *slog.Logger) *Server {
	photos := store.NewPhotoStore(database)
	s := &Server{
		clients:        store.NewClientStore(database),
		locations:      store.NewLocationStore(database),
		campaigns:      store.NewCampaignStore(database),
		equipment:      store.NewEquipmentStore(database),
		photos:         photos,
		photoSvc:       service.NewPhotoService(photos, media, logger),
		media:          media,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cliente", func(r chi.Router) {
			r.Get("/", s.handleListClientes)
			r.Post("/", s.handleCreateCliente)
			r.Get("/{id}", s.handleGetCliente)
			r.Put("/{id}", s.handleUpdateCliente)
			r.Delete("/{id}", s.handleDeleteCliente)
		})
		r.Route("/ubicacion", func(r chi.Router) {
			r.Get("/", s.handleListUbicaciones)
			r.Post("/", s.handleCreateUbicacion)
			r.Get("/{id}", s.handleGetUbicacion)
			r.Put("/{id}", s.handleUpdateUbicacion)
			r.Delete("/{id}", s.handleDeleteUbicacion)
		})
		r.Route("/mantenimiento_general", func(r chi.Router) {
			r.Get("/", s.handleListMantenimientos)
			r.Post("/", s.handleCreateMantenimiento)
			r.Get("/{id}", s.handleGetMantenimiento)
			r.Put("/{id}", s.handleUpdateMantenimiento)
			r.Delete("/{id}", s.handleDeleteMantenimiento)
		})
		r.Route("/equipo_mantenimiento", func(r chi.Router) {
			r.Get("/", s.handleListEquipos)
			r.Post("/", s.handleCreateEquipo)
			r.Get("/{id}", s.handleGetEquipo)
			r.Put("/{id}", s.handleUpdateEquipo)
			r.Delete("/{id}", s.handleDeleteEquipo)
		})
		r.Route("/foto_mantenimiento", func(r chi.Router) {
			r.Get("/", s.handleListFotos)
			r.Post("/", s.handleCreateFoto)
			r.Get("/{id}", s.handleGetFoto)
			r.Put("/{id}", s.handleUpdateFoto)
			r.Delete("/{id}", s.handleDeleteFoto)
			r.With(httprate.Limit(
				20,
				time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
			)).Post("/upload", s.handleUploadFoto)
		})
	})

	r.Get("/media/{categoria}/{nombre}", s.handleGetMedia)

	return r
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}
