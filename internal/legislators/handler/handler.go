package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rollcall/internal/legislators/roles"
	"rollcall/internal/legislators/service"
	dErrors "rollcall/pkg/domain-errors"
	"rollcall/pkg/platform/httputil"
	"rollcall/pkg/requestcontext"
)

// Service defines the legislator operations the handler exposes.
type Service interface {
	Legislator(ctx context.Context, legID string) (*roles.Legislator, error)
	OldRoles(ctx context.Context, legID string) ([]service.TermGroup, error)
	SessionsServed(ctx context.Context, legID string) (service.Sessions, error)
	VoteRole(ctx context.Context, legID, voteID string) (roles.Resolution, error)
	SessionsFor(ctx context.Context, abbr, term string) ([]string, error)
}

// Handler serves legislator and jurisdiction lookups as JSON.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the read-only routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/legislators/{legID}", h.handleGetLegislator)
	r.Get("/legislators/{legID}/sessions", h.handleGetSessionsServed)
	r.Get("/legislators/{legID}/old-roles", h.handleGetOldRoles)
	r.Get("/legislators/{legID}/votes/{voteID}/role", h.handleGetVoteRole)
	r.Get("/metadata/{abbr}/terms/{term}/sessions", h.handleGetTermSessions)
}

func (h *Handler) handleGetLegislator(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	legID := chi.URLParam(r, "legID")

	leg, err := h.service.Legislator(ctx, legID)
	if err != nil {
		h.writeError(ctx, w, "get legislator", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toLegislatorResponse(leg))
}

func (h *Handler) handleGetOldRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	legID := chi.URLParam(r, "legID")

	groups, err := h.service.OldRoles(ctx, legID)
	if err != nil {
		h.writeError(ctx, w, "get old roles", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toOldRolesResponse(legID, groups))
}

func (h *Handler) handleGetSessionsServed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	legID := chi.URLParam(r, "legID")

	sessions, err := h.service.SessionsServed(ctx, legID)
	if err != nil {
		h.writeError(ctx, w, "get sessions served", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SessionsServedResponse{
		ID:                legID,
		SessionsServed:    sessions.Current,
		OldSessionsServed: sessions.Old,
	})
}

func (h *Handler) handleGetVoteRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	legID := chi.URLParam(r, "legID")
	voteID := chi.URLParam(r, "voteID")

	res, err := h.service.VoteRole(ctx, legID, voteID)
	if err != nil {
		h.writeError(ctx, w, "get vote role", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toVoteRoleResponse(legID, voteID, res))
}

func (h *Handler) handleGetTermSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	abbr := chi.URLParam(r, "abbr")
	term := chi.URLParam(r, "term")

	names, err := h.service.SessionsFor(ctx, abbr, term)
	if err != nil {
		h.writeError(ctx, w, "get term sessions", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, TermSessionsResponse{Jurisdiction: abbr, Term: term, Sessions: names})
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	level := slog.LevelWarn
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, op+" failed",
		"request_id", requestcontext.RequestID(ctx),
		"error", err.Error(),
	)
	httputil.WriteError(w, err)
}
