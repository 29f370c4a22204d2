package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	pcapi "github.com/williamsiker/pc-api"
)

// Server is the JSON API server for pc-api.
type Server struct {
	router chi.Router

	contests pcapi.ContestService
	problems pcapi.ProblemService
	scraper  pcapi.ScrapeService
	log      *slog.Logger
}

// NewServer creates and configures the API server.
func NewServer(contests pcapi.ContestService, problems pcapi.ProblemService, scraper pcapi.ScrapeService, log *slog.Logger) *Server {
	s := &Server{
		contests: contests,
		problems: problems,
		scraper:  scraper,
		log:      log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Post("/sync", s.handleSync)
	r.Get("/contests", s.handleListContests)
	r.Get("/contests/{contestID}", s.handleGetContest)
	r.Get("/contests/{contestID}/problems/{problemID}", s.handleGetProblem)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	summary, err := s.scraper.SyncContests(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "success",
		"contests":    summary.Contests,
		"problems":    summary.Problems,
		"lastUpdated": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleListContests(w http.ResponseWriter, r *http.Request) {
	contests, err := s.contests.FindContests(r.Context(), pcapi.ContestFilter{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contests": contests})
}

func (s *Server) handleGetContest(w http.ResponseWriter, r *http.Request) {
	contestID := chi.URLParam(r, "contestID")

	contest, err := s.contests.FindContestByID(r.Context(), contestID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contest)
}

func (s *Server) handleGetProblem(w http.ResponseWriter, r *http.Request) {
	contestID := chi.URLParam(r, "contestID")
	problemID := chi.URLParam(r, "problemID")
	// Accepts the usual boolean spellings (true, True, 1, ...).
	forceRefresh, _ := strconv.ParseBool(r.URL.Query().Get("force_refresh"))

	if !forceRefresh {
		problem, err := s.problems.FindProblem(r.Context(), contestID, problemID)
		if err == nil {
			writeJSON(w, http.StatusOK, problem)
			return
		}
		if pcapi.ErrorCode(err) != pcapi.ENOTFOUND {
			s.writeError(w, r, err)
			return
		}
	}

	problem, err := s.scraper.FetchProblem(r.Context(), contestID, problemID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, problem)
}

// writeError translates application error codes into HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := pcapi.ErrorCode(err)
	status := errorStatus(code)

	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "path", r.URL.Path, "error", err)
	}

	writeJSON(w, status, map[string]string{
		"error": pcapi.ErrorMessage(err),
		"code":  code,
	})
}

func errorStatus(code string) int {
	switch code {
	case pcapi.EINVALID:
		return http.StatusBadRequest
	case pcapi.ENOTFOUND:
		return http.StatusNotFound
	case pcapi.ECONFLICT:
		return http.StatusConflict
	case pcapi.EUNPROCESSABLE:
		return http.StatusUnprocessableEntity
	case pcapi.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestLogger logs one line per request at info level.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(begin),
			)
		})
	}
}
