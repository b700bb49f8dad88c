package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eventdesk/server/internal/domain/events"
)

func newEventsHandler() (*EventsHandler, *events.Service) {
	service := events.NewService(newFakeEventRepo())
	return NewEventsHandler(service, testEnv), service
}

func createEventBody(title string) string {
	return fmt.Sprintf(`{
		"title": %q,
		"description": "A description",
		"location": "Main Hall",
		"event_date": "2026-09-12",
		"event_time": "18:30"
	}`, title)
}

func TestEventCreate(t *testing.T) {
	handler, _ := newEventsHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(createEventBody("Launch Party")))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var event struct {
		ID        int64   `json:"id"`
		Title     string  `json:"title"`
		Status    string  `json:"status"`
		ImageURL  *string `json:"imageUrl"`
		EventDate string  `json:"eventDate"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &event))
	require.EqualValues(t, 1, event.ID)
	require.Equal(t, "Launch Party", event.Title)
	require.Equal(t, "ongoing", event.Status)
	require.Nil(t, event.ImageURL)
	require.Equal(t, "2026-09-12", event.EventDate)
}

func TestEventCreateMissingFields(t *testing.T) {
	handler, _ := newEventsHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(`{"title":"Only a title"}`))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.Errors, "description")
	require.Contains(t, resp.Errors, "event_date")
}

func TestEventCreateBadDate(t *testing.T) {
	handler, _ := newEventsHandler()

	body := `{
		"title": "Launch Party",
		"description": "A description",
		"location": "Main Hall",
		"event_date": "12/09/2026",
		"event_time": "18:30"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "event_date")
}

func TestEventList(t *testing.T) {
	handler, _ := newEventsHandler()

	for i := 1; i <= 7; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(createEventBody(fmt.Sprintf("Event %d", i))))
		handler.Create(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?sortColumn=id&sortOrder=asc&page=2&pageSize=5", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data       []struct{ Title string } `json:"data"`
		Pagination struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			PageSize   int   `json:"pageSize"`
			TotalPages int64 `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	require.Equal(t, "Event 6", resp.Data[0].Title)
	require.EqualValues(t, 7, resp.Pagination.Total)
	require.Equal(t, 2, resp.Pagination.Page)
	require.EqualValues(t, 2, resp.Pagination.TotalPages)
}

func TestEventListDefaults(t *testing.T) {
	handler, _ := newEventsHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?sortColumn=password;DROP%20TABLE%20events&page=zero", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Page     int `json:"page"`
			PageSize int `json:"pageSize"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	require.Equal(t, 1, resp.Pagination.Page)
	require.Equal(t, 5, resp.Pagination.PageSize)
}

func TestEventGet(t *testing.T) {
	handler, service := newEventsHandler()

	created, err := service.Create(t.Context(), events.CreateInput{
		Title:       "Launch Party",
		Description: "A description",
		Location:    "Main Hall",
		EventDate:   "2026-09-12",
		EventTime:   "18:30",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/1", nil)
	req.SetPathValue("id", fmt.Sprint(created.ID))
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Launch Party")
}

func TestEventGetNotFound(t *testing.T) {
	handler, _ := newEventsHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/42", nil)
	req.SetPathValue("id", "42")
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestEventGetBadID(t *testing.T) {
	handler, _ := newEventsHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventUpdatePartial(t *testing.T) {
	handler, service := newEventsHandler()

	created, err := service.Create(t.Context(), events.CreateInput{
		Title:       "Launch Party",
		Description: "A description",
		Location:    "Main Hall",
		EventDate:   "2026-09-12",
		EventTime:   "18:30",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/events/1", strings.NewReader(`{"status":"completed"}`))
	req.SetPathValue("id", fmt.Sprint(created.ID))
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var event struct {
		Title  string `json:"title"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &event))
	require.Equal(t, "completed", event.Status)
	require.Equal(t, "Launch Party", event.Title)
}

func TestEventUpdateNotFound(t *testing.T) {
	handler, _ := newEventsHandler()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/events/42", strings.NewReader(`{"status":"completed"}`))
	req.SetPathValue("id", "42")
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventDelete(t *testing.T) {
	handler, service := newEventsHandler()

	created, err := service.Create(t.Context(), events.CreateInput{
		Title:       "Launch Party",
		Description: "A description",
		Location:    "Main Hall",
		EventDate:   "2026-09-12",
		EventTime:   "18:30",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/events/1", nil)
	req.SetPathValue("id", fmt.Sprint(created.ID))
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, fmt.Sprintf("Event with ID %d has been deleted successfully", created.ID), resp.Message)

	// Second delete finds nothing.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/events/1", nil)
	req.SetPathValue("id", fmt.Sprint(created.ID))
	handler.Delete(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
