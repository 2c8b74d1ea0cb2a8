package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/mapper"
)

func createProject(t *testing.T, router http.Handler, code, name string) mapper.ProjectDTO {
	t.Helper()
	body := fmt.Sprintf(`{"code":%q,"name":%q}`, code, name)
	rec := doRequest(t, router, http.MethodPost, "/projects", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeProject(t, rec)
}

func createTask(t *testing.T, router http.Handler, body string) mapper.TaskDTO {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/tasks", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	var dto mapper.TaskDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	return dto
}

func listTasks(t *testing.T, router http.Handler, path string) []mapper.TaskDTO {
	t.Helper()
	rec := doRequest(t, router, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []mapper.TaskDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return list
}

func TestCreateTaskDefaultsStatus(t *testing.T) {
	router := newTestRouter()
	createProject(t, router, "P1", "Project 1")

	task := createTask(t, router, `{"name":"first task","projectId":1}`)
	assert.Equal(t, "TO_DO", task.Status)
	require.NotNil(t, task.ID)
	assert.Equal(t, uint(1), *task.ID)
}

func TestCreateTaskForUnknownProject(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/tasks", `{"name":"orphan","projectId":9}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateTaskInvalidStatus(t *testing.T) {
	router := newTestRouter()
	createProject(t, router, "P1", "Project 1")

	rec := doRequest(t, router, http.MethodPost, "/tasks",
		`{"name":"task","projectId":1,"status":"LATER"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProjectCascadesOverHTTP(t *testing.T) {
	router := newTestRouter()
	createProject(t, router, "P1", "Project 1")
	createProject(t, router, "P2", "Project 2")

	createTask(t, router, `{"name":"a","projectId":1}`)
	createTask(t, router, `{"name":"b","projectId":1}`)
	survivor := createTask(t, router, `{"name":"c","projectId":2}`)

	rec := doRequest(t, router, http.MethodDelete, "/projects/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	remaining := listTasks(t, router, "/tasks")
	require.Len(t, remaining, 1)
	assert.Equal(t, *survivor.ID, *remaining[0].ID)
}

func TestProjectResponseEmbedsTasks(t *testing.T) {
	router := newTestRouter()
	createProject(t, router, "P1", "Project 1")
	createTask(t, router, `{"name":"a","projectId":1}`)

	rec := doRequest(t, router, http.MethodGet, "/projects/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	project := decodeProject(t, rec)
	require.Len(t, project.Tasks, 1)
	assert.Equal(t, "a", project.Tasks[0].Name)
}

func TestTaskDueDateFilters(t *testing.T) {
	router := newTestRouter()
	createProject(t, router, "P1", "Project 1")
	createTask(t, router, `{"name":"early","projectId":1,"dueDate":"2025-02-09"}`)
	createTask(t, router, `{"name":"cutoff","projectId":1,"dueDate":"2025-02-10"}`)
	createTask(t, router, `{"name":"late","projectId":1,"dueDate":"2025-02-11"}`)

	after := listTasks(t, router, "/tasks?dueAfter=2025-02-10")
	require.Len(t, after, 1)
	assert.Equal(t, "late", after[0].Name)

	from := listTasks(t, router, "/tasks?dueFrom=2025-02-10")
	assert.Len(t, from, 2)

	overdue := listTasks(t, router, "/tasks?dueBefore=2025-02-10&status=TO_DO")
	require.Len(t, overdue, 1)
	assert.Equal(t, "early", overdue[0].Name)
}

func TestTaskFilterBadDate(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/tasks?dueAfter=02/10/2025", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskAssigneeFilter(t *testing.T) {
	router := newTestRouter()
	createProject(t, router, "P1", "Project 1")

	rec := doRequest(t, router, http.MethodPost, "/workers",
		`{"email":"john@example.com","firstName":"John","lastName":"Doe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	createTask(t, router, `{"name":"for john","projectId":1,"assigneeId":1}`)
	createTask(t, router, `{"name":"unassigned","projectId":1}`)

	assigned := listTasks(t, router, "/tasks?assignee=John")
	require.Len(t, assigned, 1)
	assert.Equal(t, "for john", assigned[0].Name)
}

func TestWorkerDuplicateEmail(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/workers",
		`{"email":"john@example.com","firstName":"John"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/workers",
		`{"email":"john@example.com","firstName":"Johnny"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWorkerUpdate(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/workers",
		`{"email":"john@example.com","firstName":"John","lastName":"Doe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPut, "/workers/1",
		`{"email":"john@example.com","firstName":"Jonathan","lastName":"Doe"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated mapper.WorkerDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Jonathan", updated.FirstName)
}
