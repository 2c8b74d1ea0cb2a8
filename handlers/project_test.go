package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/mapper"
	"taskhub/repository"
	"taskhub/service"
)

func newTestRouter() http.Handler {
	store := repository.NewStore("", "")
	projects := NewProjectHandler(service.NewProjectService(store.Projects()))
	tasks := NewTaskHandler(service.NewTaskService(store.Tasks(), store.Projects()))
	workers := NewWorkerHandler(service.NewWorkerService(store.Workers()))
	return NewRouter(projects, tasks, workers)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeProject(t *testing.T, rec *httptest.ResponseRecorder) mapper.ProjectDTO {
	t.Helper()
	var dto mapper.ProjectDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	return dto
}

func TestCreateThenFetchProject(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/projects", `{"code":"P1","name":"Project 1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, contentTypeJSON, rec.Header().Get("Content-Type"))

	created := decodeProject(t, rec)
	require.NotNil(t, created.ID)
	assert.Equal(t, uint(1), *created.ID)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), created.DateCreated)

	fetched := doRequest(t, router, http.MethodGet, "/projects/1", "")
	require.Equal(t, http.StatusOK, fetched.Code)
	assert.Equal(t, created, decodeProject(t, fetched))
}

func TestFetchUnknownProject(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/projects/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body problemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "Project 999 not found", body.Detail)
}

func TestCreateProjectWithoutName(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/projects", `{"code":"P1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProjectMalformedJSON(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/projects", `{"code":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProjectIgnoresUnknownFields(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/projects",
		`{"code":"P1","name":"Project 1","surprise":true}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateProjectDuplicateCode(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/projects", `{"code":"P1","name":"a"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/projects", `{"code":"P1","name":"b"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body problemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, body.Status)
}

func TestListProjectsByName(t *testing.T) {
	router := newTestRouter()
	for i, name := range []string{"Project 1", "Project 2", "Alpha"} {
		body := fmt.Sprintf(`{"code":"C%d","name":%q}`, i, name)
		rec := doRequest(t, router, http.MethodPost, "/projects", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, router, http.MethodGet, "/projects?name=Project", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var matching []mapper.ProjectDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matching))
	require.Len(t, matching, 2)
	assert.Equal(t, "Project 1", matching[0].Name)
	assert.Equal(t, "Project 2", matching[1].Name)

	// An empty name filter still matches everything.
	rec = doRequest(t, router, http.MethodGet, "/projects?name=", "")
	var all []mapper.ProjectDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 3)
}

func TestUpdateProjectPreservesDateCreated(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/projects", `{"code":"X","name":"a"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeProject(t, rec)

	rec = doRequest(t, router, http.MethodPut, "/projects/1",
		`{"code":"X","name":"b","dateCreated":"1970-01-01"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeProject(t, rec)
	assert.Equal(t, "b", updated.Name)
	assert.Equal(t, created.DateCreated, updated.DateCreated)
}

func TestUpdateUnknownProject(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPut, "/projects/5", `{"code":"X","name":"b"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProject(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/projects", `{"code":"P1","name":"a"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/projects/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/projects/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNonNumericProjectID(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/projects/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
