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

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema")),
	}
}

// CreateCinema handles POST /api/cinemas (admin)
func (h *CinemaHandler) CreateCinema(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cinema, err := h.service.CreateCinema(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create cinema")
		return
	}

	utils.ResponseCreated(w, "success", cinema)
}

// GetCinemaByID handles GET /api/cinemas/{id}
func (h *CinemaHandler) GetCinemaByID(w http.ResponseWriter, r *http.Request) {
	cinemaID := chi.URLParam(r, "id")

	cinema, err := h.service.GetCinemaByID(r.Context(), cinemaID)
	if err != nil {
		writeServiceError(w, h.log, err, "get cinema")
		return
	}

	utils.ResponseSuccess(w, "success", cinema)
}

// GetAllCinemas handles GET /api/cinemas
func (h *CinemaHandler) GetAllCinemas(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
	activeOnly := query.Get("include_inactive") == ""

	cinemas, err := h.service.GetAllCinemas(r.Context(), req, activeOnly)
	if err != nil {
		writeServiceError(w, h.log, err, "list cinemas")
		return
	}

	utils.ResponseSuccess(w, "success", cinemas)
}

// UpdateCinema handles PUT /api/cinemas/{id} (admin)
func (h *CinemaHandler) UpdateCinema(w http.ResponseWriter, r *http.Request) {
	cinemaID := chi.URLParam(r, "id")

	var req request.CinemaUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cinema, err := h.service.UpdateCinema(r.Context(), cinemaID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update cinema")
		return
	}

	utils.ResponseSuccess(w, "success", cinema)
}

// DeactivateCinema handles DELETE /api/cinemas/{id} (admin)
func (h *CinemaHandler) DeactivateCinema(w http.ResponseWriter, r *http.Request) {
	cinemaID := chi.URLParam(r, "id")

	if err := h.service.DeactivateCinema(r.Context(), cinemaID); err != nil {
		writeServiceError(w, h.log, err, "deactivate cinema")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateRoom handles POST /api/cinemas/{id}/rooms (admin)
func (h *CinemaHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	cinemaID := chi.URLParam(r, "id")

	var req request.RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), cinemaID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// UpdateRoom handles PUT /api/rooms/{id} (admin)
func (h *CinemaHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	var req request.RoomUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// DeleteRoom handles DELETE /api/rooms/{id} (admin)
func (h *CinemaHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		writeServiceError(w, h.log, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
