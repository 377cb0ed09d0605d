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

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// CreateShowtime handles POST /api/showtimes (admin)
func (h *ShowtimeHandler) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.ShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create showtime")
		return
	}

	utils.ResponseCreated(w, "success", showtime)
}

// GetShowtimeByID handles GET /api/showtimes/{id}
func (h *ShowtimeHandler) GetShowtimeByID(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")

	showtime, err := h.service.GetShowtimeByID(r.Context(), showtimeID)
	if err != nil {
		writeServiceError(w, h.log, err, "get showtime")
		return
	}

	utils.ResponseSuccess(w, "success", showtime)
}

// GetAllShowtimes handles GET /api/showtimes
func (h *ShowtimeHandler) GetAllShowtimes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if movieID := query.Get("movie_id"); movieID != "" {
		showtimes, err := h.service.GetShowtimesByMovie(r.Context(), movieID)
		if err != nil {
			writeServiceError(w, h.log, err, "list showtimes by movie")
			return
		}
		utils.ResponseSuccess(w, "success", showtimes)
		return
	}

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	showtimes, err := h.service.GetAllShowtimes(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "list showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// UpdateShowtime handles PUT /api/showtimes/{id} (admin)
func (h *ShowtimeHandler) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")

	var req request.ShowtimeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.UpdateShowtime(r.Context(), showtimeID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update showtime")
		return
	}

	utils.ResponseSuccess(w, "success", showtime)
}

// DeactivateShowtime handles DELETE /api/showtimes/{id} (admin)
func (h *ShowtimeHandler) DeactivateShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")

	if err := h.service.DeactivateShowtime(r.Context(), showtimeID); err != nil {
		writeServiceError(w, h.log, err, "deactivate showtime")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetSeatMap handles GET /api/map?showtime_id=
func (h *ShowtimeHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	showtimeID := r.URL.Query().Get("showtime_id")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "showtime_id query parameter is required", nil)
		return
	}

	seatMap, err := h.service.GetSeatMap(r.Context(), showtimeID)
	if err != nil {
		writeServiceError(w, h.log, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}
