package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gamedex/gamedex-api/internal/api/shared"
	"github.com/gamedex/gamedex-api/internal/domain"
	"github.com/gamedex/gamedex-api/internal/platform/logger"
	"github.com/gamedex/gamedex-api/internal/store"
)

// VideoGameRequest defines the payload for create and update requests.
// All four text fields are optional; the ID is only meaningful on
// update, where it must match the path.
type VideoGameRequest struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Platform  string `json:"platform"`
	Developer string `json:"developer"`
	Publisher string `json:"publisher"`
}

// VideoGameResponse represents the response data for a video game.
type VideoGameResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Platform  string `json:"platform"`
	Developer string `json:"developer"`
	Publisher string `json:"publisher"`
}

// VideoGameHandler handles video-game-related HTTP requests.
// Each handler performs exactly one store operation and maps its
// outcome to a status code; there is no intermediate service layer.
type VideoGameHandler struct {
	gameStore store.VideoGameStore
	logger    *slog.Logger
}

// NewVideoGameHandler creates a new VideoGameHandler.
func NewVideoGameHandler(gameStore store.VideoGameStore, logger *slog.Logger) *VideoGameHandler {
	if gameStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("gameStore cannot be nil for VideoGameHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for VideoGameHandler")
	}

	return &VideoGameHandler{
		gameStore: gameStore,
		logger:    logger.With(slog.String("component", "videogame_handler")),
	}
}

// RegisterRoutes mounts all video game routes on the given router,
// relative to the /api/videogame prefix.
func (h *VideoGameHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListVideoGames)
	r.Get("/titles", h.ListTitles)
	r.Get("/developer", h.ListDevelopers)
	r.Get("/publisher", h.ListPublishers)
	r.Get("/developers/{name}", h.FindByDeveloper)
	r.Get("/platform/{name}", h.FindByPlatform)
	r.Get("/{id}", h.GetVideoGame)
	r.Post("/", h.CreateVideoGame)
	r.Put("/{id}", h.UpdateVideoGame)
	r.Delete("/{id}", h.DeleteVideoGame)
}

// ListVideoGames handles GET / requests.
// It returns every record, unfiltered, in storage default order.
func (h *VideoGameHandler) ListVideoGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, gamesToResponse(games))
}

// GetVideoGame handles GET /{id} requests.
func (h *VideoGameHandler) GetVideoGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := h.pathID(r)
	if err != nil {
		log.Warn("invalid game ID in URL path", slog.String("id", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return
	}

	game, err := h.gameStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, gameToResponse(game))
}

// ListTitles handles GET /titles requests.
// The projection includes duplicates; it is intentionally not
// deduplicated.
func (h *VideoGameHandler) ListTitles(w http.ResponseWriter, r *http.Request) {
	h.respondProjection(w, r, h.gameStore.Titles)
}

// ListDevelopers handles GET /developer requests.
func (h *VideoGameHandler) ListDevelopers(w http.ResponseWriter, r *http.Request) {
	h.respondProjection(w, r, h.gameStore.Developers)
}

// ListPublishers handles GET /publisher requests.
func (h *VideoGameHandler) ListPublishers(w http.ResponseWriter, r *http.Request) {
	h.respondProjection(w, r, h.gameStore.Publishers)
}

// FindByDeveloper handles GET /developers/{name} requests.
// The match is case-insensitive; an empty result is a 404.
func (h *VideoGameHandler) FindByDeveloper(w http.ResponseWriter, r *http.Request) {
	h.respondFilter(w, r, h.gameStore.FindByDeveloper, "No games found for developer")
}

// FindByPlatform handles GET /platform/{name} requests.
// The match is case-insensitive; an empty result is a 404.
func (h *VideoGameHandler) FindByPlatform(w http.ResponseWriter, r *http.Request) {
	h.respondFilter(w, r, h.gameStore.FindByPlatform, "No games found for platform")
}

// CreateVideoGame handles POST / requests.
// A missing or malformed body is a 400; otherwise the store assigns the
// next ID and the response carries the created record plus its location.
func (h *VideoGameHandler) CreateVideoGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req VideoGameRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid create request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Request body is required")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("create request failed validation", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error")
		return
	}

	// Any client-supplied ID is ignored; storage assigns the next one.
	game := domain.NewVideoGame(req.Title, req.Platform, req.Developer, req.Publisher)

	if err := h.gameStore.Create(r.Context(), game); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("video game created",
		slog.Int64("game_id", game.ID),
		slog.String("title", game.Title))

	w.Header().Set("Location", fmt.Sprintf("/api/videogame/%d", game.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, gameToResponse(game))
}

// UpdateVideoGame handles PUT /{id} requests.
// The payload ID must match the path ID (400 otherwise), the record
// must exist (404 otherwise), and all four text fields are overwritten
// unconditionally. Success is a 204 with no body.
func (h *VideoGameHandler) UpdateVideoGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := h.pathID(r)
	if err != nil {
		log.Warn("invalid game ID in URL path", slog.String("id", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var req VideoGameRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid update request body",
			slog.String("error", err.Error()),
			slog.Int64("game_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Request body is required")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("update request failed validation",
			slog.String("error", err.Error()),
			slog.Int64("game_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error")
		return
	}

	// The mismatch check applies regardless of whether the path ID exists.
	if req.ID != id {
		log.Warn("payload ID does not match path ID",
			slog.Int64("path_id", id),
			slog.Int64("payload_id", req.ID))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			GetSafeErrorMessage(domain.ErrIDMismatch))
		return
	}

	game := &domain.VideoGame{
		ID:        id,
		Title:     req.Title,
		Platform:  req.Platform,
		Developer: req.Developer,
		Publisher: req.Publisher,
	}

	if err := h.gameStore.Update(r.Context(), game); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("video game updated", slog.Int64("game_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// DeleteVideoGame handles DELETE /{id} requests.
// The contract is a 200 carrying the deleted record; a missing record
// is a 404. Removal is idempotent in effect: a second delete of the
// same ID finds nothing.
func (h *VideoGameHandler) DeleteVideoGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := h.pathID(r)
	if err != nil {
		log.Warn("invalid game ID in URL path", slog.String("id", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return
	}

	game, err := h.gameStore.Delete(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("video game deleted", slog.Int64("game_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, gameToResponse(game))
}

// pathID parses the {id} URL parameter.
func (h *VideoGameHandler) pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	return id, nil
}

// respondProjection runs a field projection and returns it as a string list.
func (h *VideoGameHandler) respondProjection(
	w http.ResponseWriter,
	r *http.Request,
	project func(ctx context.Context) ([]string, error),
) {
	values, err := project(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, values)
}

// respondFilter runs a name filter and maps an empty result to a 404.
func (h *VideoGameHandler) respondFilter(
	w http.ResponseWriter,
	r *http.Request,
	find func(ctx context.Context, name string) ([]*domain.VideoGame, error),
	emptyMessage string,
) {
	name := chi.URLParam(r, "name")

	games, err := find(r.Context(), name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if len(games) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, emptyMessage)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, gamesToResponse(games))
}

// gameToResponse converts a domain.VideoGame to a VideoGameResponse.
func gameToResponse(game *domain.VideoGame) VideoGameResponse {
	return VideoGameResponse{
		ID:        game.ID,
		Title:     game.Title,
		Platform:  game.Platform,
		Developer: game.Developer,
		Publisher: game.Publisher,
	}
}

// gamesToResponse converts a slice of domain records, always returning
// a non-nil slice so empty lists serialize as [] rather than null.
func gamesToResponse(games []*domain.VideoGame) []VideoGameResponse {
	responses := make([]VideoGameResponse, 0, len(games))
	for _, game := range games {
		responses = append(responses, gameToResponse(game))
	}
	return responses
}
