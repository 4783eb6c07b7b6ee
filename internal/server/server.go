package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/matheuskafuri/grid7/internal/browse"
	"github.com/matheuskafuri/grid7/internal/classify"
	"github.com/matheuskafuri/grid7/internal/news"
	"github.com/matheuskafuri/grid7/internal/refresh"
	"github.com/matheuskafuri/grid7/internal/store"
	"github.com/matheuskafuri/grid7/internal/subscribe"
	"github.com/matheuskafuri/grid7/internal/timeline"
)

// Deps are the components the API serves.
type Deps struct {
	Store     *store.Store
	Refresher *refresh.Coordinator
	Launches  []news.LaunchEvent
	// NewFlow returns a fresh subscription flow per request.
	NewFlow  func() *subscribe.Flow
	PageSize int
	Logger   *log.Logger
	Now      func() time.Time
}

type Server struct {
	deps   Deps
	logger *log.Logger
	router chi.Router
}

func New(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.PageSize < 1 {
		deps.PageSize = browse.DefaultPageSize
	}
	s := &Server{deps: deps, logger: deps.Logger.WithPrefix("http")}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/articles", s.handleArticles)
		r.Post("/refresh", s.handleRefresh)
		r.Get("/refresh", s.handleRefreshStatus)
		r.Get("/launches", s.handleLaunches)
		r.Post("/subscribe", s.handleSubscribe)
	})
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start).Round(time.Microsecond),
			"id", middleware.GetReqID(r.Context()),
		)
	})
}

type articlesResponse struct {
	Category news.Category  `json:"category"`
	Total    int            `json:"total"`
	HasMore  bool           `json:"hasMore"`
	Articles []news.Article `json:"articles"`
}

// GET /api/articles?category=&limit=
func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	category := news.All
	if q := r.URL.Query().Get("category"); q != "" {
		c, err := classify.ResolveAlias(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		category = c
	}

	limit := s.deps.PageSize
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	filtered := browse.Filter(s.deps.Store.Articles(), category)
	window, more := browse.Window(filtered, limit)
	// The window aliases the store snapshot.
	visible := make([]news.Article, len(window))
	for i, a := range window {
		a.ImageURL = news.ResolveImage(a, false)
		visible[i] = a
	}
	writeJSON(w, http.StatusOK, articlesResponse{
		Category: category,
		Total:    len(filtered),
		HasMore:  more,
		Articles: visible,
	})
}

type refreshResponse struct {
	Refreshing bool           `json:"refreshing"`
	Last       *outcomeReport `json:"last,omitempty"`
}

type outcomeReport struct {
	Status  string    `json:"status"`
	Fetched int       `json:"fetched"`
	Added   int       `json:"added"`
	Errors  []string  `json:"errors,omitempty"`
	Started time.Time `json:"started"`
}

// POST /api/refresh
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	// The fetch outlives the request.
	if _, err := s.deps.Refresher.Start(context.WithoutCancel(r.Context())); err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, refreshResponse{Refreshing: true})
}

// GET /api/refresh
func (s *Server) handleRefreshStatus(w http.ResponseWriter, r *http.Request) {
	resp := refreshResponse{Refreshing: s.deps.Refresher.Refreshing()}
	if last, ok := s.deps.Refresher.Last(); ok {
		rep := &outcomeReport{
			Status:  last.Status.String(),
			Fetched: last.Fetched,
			Added:   last.Added,
			Started: last.Started,
		}
		for _, err := range last.Errors {
			rep.Errors = append(rep.Errors, err.Error())
		}
		resp.Last = rep
	}
	writeJSON(w, http.StatusOK, resp)
}

type launchReport struct {
	news.LaunchEvent
	Countdown string `json:"countdown"`
}

// GET /api/launches
func (s *Server) handleLaunches(w http.ResponseWriter, r *http.Request) {
	now := s.deps.Now()
	upcoming := timeline.Upcoming(s.deps.Launches, now)
	out := make([]launchReport, len(upcoming))
	for i, e := range upcoming {
		out[i] = launchReport{LaunchEvent: e, Countdown: timeline.Countdown(e, now)}
	}
	writeJSON(w, http.StatusOK, out)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

type subscribeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// POST /api/subscribe
func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	flow := s.deps.NewFlow()
	err := flow.Submit(r.Context(), req.Email, s.deps.Store.Articles())
	st := flow.Status()
	switch {
	case errors.Is(err, subscribe.ErrInvalidAddress):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		writeJSON(w, http.StatusBadGateway, subscribeResponse{Status: st.Phase.String(), Message: st.Message})
	default:
		writeJSON(w, http.StatusOK, subscribeResponse{Status: st.Phase.String(), Message: st.Message})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"articles": s.deps.Store.Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
