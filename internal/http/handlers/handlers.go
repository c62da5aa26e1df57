package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/fantasy-football-service/internal/app/teamdata"
	"github.com/preston-bernstein/fantasy-football-service/internal/domain/fantasy"
	"github.com/preston-bernstein/fantasy-football-service/internal/logging"
)

// WelcomeMessage is the body of the root endpoint.
const WelcomeMessage = "Welcome to the Fantasy Football Prediction API!"

// TeamData is the application surface the handlers serve.
type TeamData interface {
	AllTeams(ctx context.Context) ([]string, error)
	TeamStats(ctx context.Context, team string, season int) (fantasy.TeamStats, error)
}

// Handler wires HTTP routes to the team data service.
type Handler struct {
	svc    TeamData
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc TeamData, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Root greets API clients.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": WelcomeMessage}, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// AllTeams lists the league's team names.
func (h *Handler) AllTeams(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	names, err := h.svc.AllTeams(r.Context())
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}

	logging.Info(logger, "served team list", slog.Int(logging.FieldCount, len(names)))
	writeJSON(w, http.StatusOK, names, h.logger)
}

// TeamStats returns one team's fantasy stats for a season.
func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	team := chi.URLParam(r, "team")

	season, err := teamdata.ParseSeason(chi.URLParam(r, "season"))
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}

	result, err := h.svc.TeamStats(r.Context(), team, season)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}

	logging.Info(logger, "served team stats",
		slog.String(logging.FieldTeam, team),
		slog.Int(logging.FieldSeason, season),
	)
	writeJSON(w, http.StatusOK, result, h.logger)
}
