package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TWRT/ticktick-connector/internal/repository"
)

// fakeTickTick stands in for the remote API so requests can flow through the
// router, service and client end to end.
func fakeTickTick(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /project/{projectId}/task/{taskId}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":            r.PathValue("taskId"),
			"projectId":     r.PathValue("projectId"),
			"title":         "Buy milk",
			"completedTime": 1700000000000,
		})
	})
	mux.HandleFunc("POST /project/{projectId}/task/{taskId}/complete", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /project", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{{"id": "p1", "name": "Inbox"}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func setupTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	upstream := fakeTickTick(t)

	db, err := repository.InitDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return SetupRouter(db, "test-token", upstream.URL, log.New(io.Discard))
}

func TestGetTaskRoute(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/p1/tasks/t1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Task struct {
			Id            string `json:"id"`
			Title         string `json:"title"`
			CompletedTime string `json:"completedTime"`
		} `json:"task"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "t1", body.Task.Id)
	assert.Equal(t, "Buy milk", body.Task.Title)
	assert.NotEmpty(t, body.Task.CompletedTime)
}

func TestCreateTaskRouteRejectsInvalidParams(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"projectId":"p1"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestCompleteTaskRouteJournalsTheCall(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/projects/p1/tasks/t1/complete", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	opsRec := httptest.NewRecorder()
	router.ServeHTTP(opsRec, httptest.NewRequest(http.MethodGet, "/operations", nil))
	require.Equal(t, http.StatusOK, opsRec.Code)

	var body struct {
		Operations []struct {
			Operation string `json:"Operation"`
			Status    string `json:"Status"`
		} `json:"operations"`
	}
	require.NoError(t, json.Unmarshal(opsRec.Body.Bytes(), &body))
	require.Len(t, body.Operations, 1)
	assert.Equal(t, "complete", body.Operations[0].Operation)
	assert.Equal(t, "success", body.Operations[0].Status)
}

func TestProjectsRoute(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Inbox")
}
