// Package httpapi exposes a planner over HTTP with a chi router.
//
// Endpoints:
//
//	GET /health
//	GET /api/lines
//	GET /api/lines/{lineID}
//	GET /api/stops/{stopID}
//	GET /api/stops/{stopID}/travel-times?within=
//	GET /api/stops/{stopID}/unreachable
//	GET /api/islands
//	GET /api/routes/min-transfer?from=&to=&avoid=
//	GET /api/routes/fastest?from=&to=&avoid=
package httpapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/katalvlaran/metroroute/planner"
)

// RequestIDHeader carries the per-request ID.
const RequestIDHeader = "X-Request-ID"

// Options configures the router.
type Options struct {
	AllowedOrigins []string
	// RequestTimeout bounds every search; 0 disables the bound.
	RequestTimeout time.Duration
}

// NewRouter builds the API router over p.
func NewRouter(p *planner.Planner, opts Options) http.Handler {
	h := &Handler{planner: p}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
	}))
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.Get("/health", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/lines", h.GetLines)
		r.Get("/lines/{lineID}", h.GetLine)
		r.Get("/stops/{stopID}", h.GetStop)
		r.Get("/stops/{stopID}/travel-times", h.GetTravelTimes)
		r.Get("/stops/{stopID}/unreachable", h.GetUnreachable)
		r.Get("/islands", h.GetIslands)
		r.Get("/routes/min-transfer", h.GetMinTransferRoute)
		r.Get("/routes/fastest", h.GetFastestRoute)
	})

	return r
}

// Serve runs the API on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("API server starting on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Println("API server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestID keeps a caller-supplied X-Request-ID or assigns a new UUID. The
// ID is stored under middleware.RequestIDKey so middleware.GetReqID sees it.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Printf("%s %s %d %s [%s]", r.Method, r.URL.RequestURI(), status,
			time.Since(start).Round(time.Microsecond), middleware.GetReqID(r.Context()))
	})
}
