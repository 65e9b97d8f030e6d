package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/cineworks/roster-backend-go/internal/handler/http/response"
	"github.com/cineworks/roster-backend-go/internal/pkg/dates"
)

type ScheduleHandler interface {
	// Generation and clearing
	Generate(w http.ResponseWriter, r *http.Request)
	ClearAutomatic(w http.ResponseWriter, r *http.Request)
	ClearManual(w http.ResponseWriter, r *http.Request)
	ClearWeekAutomatic(w http.ResponseWriter, r *http.Request)
	ClearWeekManual(w http.ResponseWriter, r *http.Request)

	// Manual assignments
	SaveManual(w http.ResponseWriter, r *http.Request)
	DeleteManual(w http.ResponseWriter, r *http.Request)

	// Read side
	GetMonth(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetShortages(w http.ResponseWriter, r *http.Request)

	// Shift catalog
	ListShiftKinds(w http.ResponseWriter, r *http.Request)
	AddShiftKind(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// Generate implements ScheduleHandler.
func (h *scheduleHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req schedule.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.scheduleService.Generate(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule generated successfully", nil)
}

// ClearAutomatic implements ScheduleHandler.
func (h *scheduleHandlerImpl) ClearAutomatic(w http.ResponseWriter, r *http.Request) {
	h.clearMonth(w, r, h.scheduleService.ClearAutomatic, "Automatic assignments cleared")
}

// ClearManual implements ScheduleHandler.
func (h *scheduleHandlerImpl) ClearManual(w http.ResponseWriter, r *http.Request) {
	h.clearMonth(w, r, h.scheduleService.ClearManual, "Manual assignments cleared")
}

func (h *scheduleHandlerImpl) clearMonth(
	w http.ResponseWriter,
	r *http.Request,
	clear func(ctx context.Context, req schedule.ClearMonthRequest) error,
	message string,
) {
	var req schedule.ClearMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := clear(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, nil)
}

// ClearWeekAutomatic implements ScheduleHandler.
func (h *scheduleHandlerImpl) ClearWeekAutomatic(w http.ResponseWriter, r *http.Request) {
	h.clearWeek(w, r, h.scheduleService.ClearWeekAutomatic, "Automatic assignments cleared for the week")
}

// ClearWeekManual implements ScheduleHandler.
func (h *scheduleHandlerImpl) ClearWeekManual(w http.ResponseWriter, r *http.Request) {
	h.clearWeek(w, r, h.scheduleService.ClearWeekManual, "Manual assignments cleared for the week")
}

func (h *scheduleHandlerImpl) clearWeek(
	w http.ResponseWriter,
	r *http.Request,
	clear func(ctx context.Context, req schedule.ClearWeekRequest) error,
	message string,
) {
	var req schedule.ClearWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := clear(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, nil)
}

// SaveManual implements ScheduleHandler.
func (h *scheduleHandlerImpl) SaveManual(w http.ResponseWriter, r *http.Request) {
	var req schedule.ManualAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.scheduleService.SaveManual(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment saved", nil)
}

// DeleteManual implements ScheduleHandler.
func (h *scheduleHandlerImpl) DeleteManual(w http.ResponseWriter, r *http.Request) {
	req := schedule.ManualDeleteRequest{
		Date:    r.URL.Query().Get("date"),
		StaffID: r.URL.Query().Get("staff_id"),
	}

	if err := h.scheduleService.DeleteManual(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment deleted", nil)
}

// GetMonth implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	response.Success(w, h.scheduleService.MonthTable(r.Context(), month))
}

// GetStats implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	stats, err := h.scheduleService.Stats(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// GetShortages implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetShortages(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	alerts, err := h.scheduleService.Shortages(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, alerts)
}

// ListShiftKinds implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListShiftKinds(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.scheduleService.ShiftKinds(r.Context()))
}

// AddShiftKind implements ScheduleHandler.
func (h *scheduleHandlerImpl) AddShiftKind(w http.ResponseWriter, r *http.Request) {
	var req schedule.AddShiftKindRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	info, err := h.scheduleService.AddShiftKind(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift kind added", info)
}

func monthParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("month")
	month, err := time.Parse(dates.MonthLayout, raw)
	if err != nil {
		response.BadRequest(w, "month must use the YYYY-MM format", nil)
		return time.Time{}, false
	}
	return month, true
}
