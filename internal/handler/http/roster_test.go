package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/handler/http/response"
)

type fakeRosterService struct {
	staff   map[string]roster.Staff
	renamed map[roster.CinemaID]string
}

func newFakeRosterService() *fakeRosterService {
	return &fakeRosterService{
		staff: map[string]roster.Staff{
			"buwon-1": {ID: "buwon-1", Name: "Kim Miso", Cinema: roster.CinemaBuwon, Position: "Store Manager"},
		},
		renamed: make(map[roster.CinemaID]string),
	}
}

func (f *fakeRosterService) CreateStaff(_ context.Context, req roster.CreateStaffRequest) (roster.Staff, error) {
	if err := req.Validate(); err != nil {
		return roster.Staff{}, err
	}
	created := roster.Staff{ID: "new-1", Name: req.Name, Cinema: roster.CinemaID(req.Cinema), Position: req.Position}
	f.staff[created.ID] = created
	return created, nil
}

func (f *fakeRosterService) GetStaff(_ context.Context, id string) (roster.Staff, error) {
	staff, ok := f.staff[id]
	if !ok {
		return roster.Staff{}, roster.ErrStaffNotFound
	}
	return staff, nil
}

func (f *fakeRosterService) ListStaff(_ context.Context) ([]roster.Staff, error) {
	out := make([]roster.Staff, 0, len(f.staff))
	for _, s := range f.staff {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRosterService) UpdateStaff(_ context.Context, req roster.UpdateStaffRequest) (roster.Staff, error) {
	staff, ok := f.staff[req.ID]
	if !ok {
		return roster.Staff{}, roster.ErrStaffNotFound
	}
	if req.Name != nil {
		staff.Name = *req.Name
	}
	f.staff[req.ID] = staff
	return staff, nil
}

func (f *fakeRosterService) DeleteStaff(_ context.Context, id string) error {
	if _, ok := f.staff[id]; !ok {
		return roster.ErrStaffNotFound
	}
	delete(f.staff, id)
	return nil
}

func (f *fakeRosterService) ListCinemas(_ context.Context) ([]roster.Cinema, error) {
	return []roster.Cinema{
		{ID: roster.CinemaBuwon, Name: "Buwon Cinema", ColorTag: "#3B82F6"},
		{ID: roster.CinemaOutlet, Name: "Outlet Cinema", ColorTag: "#F97316"},
	}, nil
}

func (f *fakeRosterService) RenameCinema(_ context.Context, req roster.UpdateCinemaNameRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	f.renamed[roster.CinemaID(req.ID)] = req.Name
	return nil
}

func (f *fakeRosterService) SeedDefaults(_ context.Context, _ []roster.Cinema, _ []roster.Staff) error {
	return nil
}

func newRosterRouter(svc roster.Service) *chi.Mux {
	h := NewRosterHandler(svc)
	r := chi.NewRouter()
	r.Route("/roster", func(r chi.Router) {
		r.Route("/staff", func(r chi.Router) {
			r.Get("/", h.ListStaff)
			r.Post("/", h.CreateStaff)
			r.Get("/{id}", h.GetStaff)
			r.Put("/{id}", h.UpdateStaff)
			r.Delete("/{id}", h.DeleteStaff)
		})
		r.Route("/cinemas", func(r chi.Router) {
			r.Get("/", h.ListCinemas)
			r.Put("/{id}", h.RenameCinema)
		})
	})
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRosterHandler_GetStaff(t *testing.T) {
	router := newRosterRouter(newFakeRosterService())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/roster/staff/buwon-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Kim Miso", data["name"])
	assert.Equal(t, "BUWON", data["cinema"])
}

func TestRosterHandler_GetStaff_NotFound(t *testing.T) {
	router := newRosterRouter(newFakeRosterService())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/roster/staff/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestRosterHandler_CreateStaff(t *testing.T) {
	router := newRosterRouter(newFakeRosterService())

	body := `{"name":"Han Seongsil","cinema":"OUTLET","position":"Operations Manager"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/roster/staff", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Han Seongsil", data["name"])
	assert.NotEmpty(t, data["id"])
}

func TestRosterHandler_CreateStaff_ValidationError(t *testing.T) {
	router := newRosterRouter(newFakeRosterService())

	body := `{"name":"","cinema":"MARS"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/roster/staff", strings.NewReader(body)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "name")
	assert.Contains(t, resp.Error.Details, "cinema")
}

func TestRosterHandler_CreateStaff_MalformedBody(t *testing.T) {
	router := newRosterRouter(newFakeRosterService())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/roster/staff", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRosterHandler_DeleteStaff(t *testing.T) {
	svc := newFakeRosterService()
	router := newRosterRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/roster/staff/buwon-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.staff)
}

func TestRosterHandler_ListCinemas(t *testing.T) {
	router := newRosterRouter(newFakeRosterService())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/roster/cinemas", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)

	list := resp.Data.([]interface{})
	require.Len(t, list, 2)
	first := list[0].(map[string]interface{})
	assert.Equal(t, "BUWON", first["id"])
}

func TestRosterHandler_RenameCinema(t *testing.T) {
	svc := newFakeRosterService()
	router := newRosterRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/roster/cinemas/OUTLET", strings.NewReader(`{"name":"Outlet Megaplex"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Outlet Megaplex", svc.renamed[roster.CinemaOutlet])
}

func TestRosterHandler_RenameCinema_UnknownID(t *testing.T) {
	router := newRosterRouter(newFakeRosterService())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/roster/cinemas/MARS", strings.NewReader(`{"name":"Mars Cinema"}`)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Details, "id")
}