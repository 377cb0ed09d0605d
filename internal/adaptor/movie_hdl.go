package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-reservations/internal/dto/request"
	"cinema-reservations/internal/usecase"
	"cinema-reservations/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// CreateMovie handles POST /api/movies (admin)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "success", movie)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		writeServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// GetAllMovies handles GET /api/movies
func (h *MovieHandler) GetAllMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	var titleFilter *string
	if title := query.Get("title"); title != "" {
		titleFilter = &title
	}

	movies, err := h.service.GetAllMovies(r.Context(), req, titleFilter)
	if err != nil {
		writeServiceError(w, h.log, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// UpdateMovie handles PUT /api/movies/{id} (admin)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// DeleteMovie handles DELETE /api/movies/{id} (admin)
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		writeServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateCategory handles POST /api/categories (admin)
func (h *MovieHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create category")
		return
	}

	utils.ResponseCreated(w, "success", category)
}

// GetAllCategories handles GET /api/categories
func (h *MovieHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAllCategories(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}

// UpdateCategory handles PUT /api/categories/{id} (admin)
func (h *MovieHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	var req request.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), categoryID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "success", category)
}

// DeleteCategory handles DELETE /api/categories/{id} (admin)
func (h *MovieHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		writeServiceError(w, h.log, err, "delete category")
		return
	}

	utils.ResponseNoContent(w)
}

// CreateActor handles POST /api/actors (admin)
func (h *MovieHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create actor")
		return
	}

	utils.ResponseCreated(w, "success", actor)
}

// GetAllActors handles GET /api/actors
func (h *MovieHandler) GetAllActors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	actors, err := h.service.GetAllActors(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "list actors")
		return
	}

	utils.ResponseSuccess(w, "success", actors)
}

// UpdateActor handles PUT /api/actors/{id} (admin)
func (h *MovieHandler) UpdateActor(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "id")

	var req request.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	actor, err := h.service.UpdateActor(r.Context(), actorID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update actor")
		return
	}

	utils.ResponseSuccess(w, "success", actor)
}

// DeleteActor handles DELETE /api/actors/{id} (admin)
func (h *MovieHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "id")

	if err := h.service.DeleteActor(r.Context(), actorID); err != nil {
		writeServiceError(w, h.log, err, "delete actor")
		return
	}

	utils.ResponseNoContent(w)
}

// AttachCategory handles POST /api/movies/{id}/categories/{categoryID} (admin)
func (h *MovieHandler) AttachCategory(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	categoryID := chi.URLParam(r, "categoryID")

	if err := h.service.AttachCategory(r.Context(), movieID, categoryID); err != nil {
		writeServiceError(w, h.log, err, "attach category")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// DetachCategory handles DELETE /api/movies/{id}/categories/{categoryID} (admin)
func (h *MovieHandler) DetachCategory(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	categoryID := chi.URLParam(r, "categoryID")

	if err := h.service.DetachCategory(r.Context(), movieID, categoryID); err != nil {
		writeServiceError(w, h.log, err, "detach category")
		return
	}

	utils.ResponseNoContent(w)
}

// AttachActor handles POST /api/movies/{id}/actors/{actorID} (admin)
func (h *MovieHandler) AttachActor(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	actorID := chi.URLParam(r, "actorID")

	if err := h.service.AttachActor(r.Context(), movieID, actorID); err != nil {
		writeServiceError(w, h.log, err, "attach actor")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// DetachActor handles DELETE /api/movies/{id}/actors/{actorID} (admin)
func (h *MovieHandler) DetachActor(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	actorID := chi.URLParam(r, "actorID")

	if err := h.service.DetachActor(r.Context(), movieID, actorID); err != nil {
		writeServiceError(w, h.log, err, "detach actor")
		return
	}

	utils.ResponseNoContent(w)
}
