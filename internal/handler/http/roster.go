package http

import (
	"encoding/json"
	"net/http"

	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RosterHandler interface {
	// Staff
	CreateStaff(w http.ResponseWriter, r *http.Request)
	GetStaff(w http.ResponseWriter, r *http.Request)
	ListStaff(w http.ResponseWriter, r *http.Request)
	UpdateStaff(w http.ResponseWriter, r *http.Request)
	DeleteStaff(w http.ResponseWriter, r *http.Request)

	// Cinemas
	ListCinemas(w http.ResponseWriter, r *http.Request)
	RenameCinema(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.Service
}

func NewRosterHandler(rosterService roster.Service) RosterHandler {
	return &rosterHandlerImpl{
		rosterService: rosterService,
	}
}

// CreateStaff implements RosterHandler.
func (h *rosterHandlerImpl) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req roster.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.rosterService.CreateStaff(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff member created successfully", roster.ToStaffResponse(created))
}

// GetStaff implements RosterHandler.
func (h *rosterHandlerImpl) GetStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	staff, err := h.rosterService.GetStaff(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, roster.ToStaffResponse(staff))
}

// ListStaff implements RosterHandler.
func (h *rosterHandlerImpl) ListStaff(w http.ResponseWriter, r *http.Request) {
	members, err := h.rosterService.ListStaff(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]roster.StaffResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, roster.ToStaffResponse(m))
	}

	response.Success(w, resp)
}

// UpdateStaff implements RosterHandler.
func (h *rosterHandlerImpl) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	var req roster.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.rosterService.UpdateStaff(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member updated successfully", roster.ToStaffResponse(updated))
}

// DeleteStaff implements RosterHandler.
func (h *rosterHandlerImpl) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.rosterService.DeleteStaff(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member deleted successfully", nil)
}

// ListCinemas implements RosterHandler.
func (h *rosterHandlerImpl) ListCinemas(w http.ResponseWriter, r *http.Request) {
	cinemas, err := h.rosterService.ListCinemas(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]roster.CinemaResponse, 0, len(cinemas))
	for _, c := range cinemas {
		resp = append(resp, roster.ToCinemaResponse(c))
	}

	response.Success(w, resp)
}

// RenameCinema implements RosterHandler.
func (h *rosterHandlerImpl) RenameCinema(w http.ResponseWriter, r *http.Request) {
	var req roster.UpdateCinemaNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.rosterService.RenameCinema(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cinema renamed successfully", nil)
}
