package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/fantasy-football-service/internal/app/teamdata"
	"github.com/preston-bernstein/fantasy-football-service/internal/http/middleware"
	"github.com/preston-bernstein/fantasy-football-service/internal/http/requestutil"
	"github.com/preston-bernstein/fantasy-football-service/internal/logging"
	"github.com/preston-bernstein/fantasy-football-service/internal/providers"
)

const (
	msgUpstreamError = "Upstream API error"
	msgInternalError = "internal error"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps a team data failure onto a status code. Upstream
// details are logged and never echoed to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	var unknown *teamdata.UnknownTeamError
	switch {
	case errors.As(err, &unknown):
		writeError(w, r, http.StatusBadRequest, "Unknown team: "+unknown.Name, logger)
	case errors.Is(err, teamdata.ErrInvalidSeason):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	case providers.IsUpstreamFailure(err):
		logging.Warn(logger, "upstream request failed", "error", err)
		writeError(w, r, http.StatusBadGateway, msgUpstreamError, logger)
	default:
		logging.Error(logger, "team data request failed", err)
		writeError(w, r, http.StatusInternalServerError, msgInternalError, logger)
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
