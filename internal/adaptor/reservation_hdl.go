package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-reservations/internal/data/entity"
	"cinema-reservations/internal/dto/request"
	"cinema-reservations/internal/usecase"
	"cinema-reservations/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

func callerRole(r *http.Request) entity.UserRole {
	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		return entity.RoleCustomer
	}
	return entity.UserRole(role)
}

// CreateReservation handles POST /api/reservations (protected)
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	group, err := h.service.CreateReservation(r.Context(), userID.String(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", group)
}

// GetUserReservations handles GET /api/reservations (protected)
func (h *ReservationHandler) GetUserReservations(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	groups, err := h.service.GetUserReservations(r.Context(), userID.String(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", groups)
}

// GetReservationByID handles GET /api/reservations/{id} (protected)
func (h *ReservationHandler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	groupID := chi.URLParam(r, "id")

	group, err := h.service.GetReservationByID(r.Context(), userID.String(), callerRole(r), groupID)
	if err != nil {
		writeServiceError(w, h.log, err, "get reservation")
		return
	}

	utils.ResponseSuccess(w, "success", group)
}

// UpdateReservation handles PUT /api/reservations/{id} (protected)
func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	groupID := chi.URLParam(r, "id")

	var req request.UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	group, err := h.service.UpdateReservation(r.Context(), userID.String(), callerRole(r), groupID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update reservation")
		return
	}

	utils.ResponseSuccess(w, "success", group)
}

// CancelReservation handles DELETE /api/reservations/{id} (protected)
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	groupID := chi.URLParam(r, "id")

	if _, err := h.service.CancelReservation(r.Context(), userID.String(), callerRole(r), groupID); err != nil {
		writeServiceError(w, h.log, err, "cancel reservation")
		return
	}

	utils.ResponseNoContent(w)
}
