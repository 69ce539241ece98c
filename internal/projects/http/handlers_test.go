package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/domain"
	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/export"
	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/repository"
	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo, err := repository.NewFileRepo(t.TempDir())
	require.NoError(t, err)
	svc := service.NewProjectService(repo, nil)

	router := gin.New()
	Register(router.Group("/api"), svc)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func saveBody() map[string]any {
	return map[string]any{
		"projectName": "Line A",
		"columnNames": []string{"A", "B"},
		"rows": []map[string]string{
			{"id": "r1", "name": "Task1"},
		},
		"timerData": map[string]map[string]int64{
			"r1-0": {"time": 1500},
		},
	}
}

func TestSaveProject(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/save-project", saveBody())
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Message  string `json:"message"`
		Filename string `json:"filename"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Project saved successfully", resp.Message)
	assert.True(t, strings.HasPrefix(resp.Filename, "Line A_"), "got %s", resp.Filename)
	assert.True(t, strings.HasSuffix(resp.Filename, ".json"))
}

func TestSaveProject_MissingName(t *testing.T) {
	router := newTestRouter(t)

	body := saveBody()
	delete(body, "projectName")
	rr := doJSON(t, router, http.MethodPost, "/api/save-project", body)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "projectName")
}

func TestSaveProject_InvalidBody(t *testing.T) {
	router := newTestRouter(t)

	req, err := http.NewRequest(http.MethodPost, "/api/save-project", strings.NewReader("{not json"))
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListProjects(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()), "empty store lists as an empty array")

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/save-project", saveBody()).Code)

	rr = doJSON(t, router, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var summaries []domain.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "Line A", summaries[0].ProjectName)
	assert.Equal(t, 2, summaries[0].Columns)
	assert.Equal(t, 1, summaries[0].Rows)
	assert.False(t, summaries[0].SavedAt.IsZero())
}

func TestGetProject(t *testing.T) {
	router := newTestRouter(t)

	save := doJSON(t, router, http.MethodPost, "/api/save-project", saveBody())
	require.Equal(t, http.StatusOK, save.Code)
	var saved struct {
		Filename string `json:"filename"`
	}
	require.NoError(t, json.Unmarshal(save.Body.Bytes(), &saved))

	rr := doJSON(t, router, http.MethodGet, "/api/projects/"+saved.Filename, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var p domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, "Line A", p.ProjectName)
	assert.Equal(t, int64(1500), p.TimerData["r1-0"].Time)
	assert.False(t, p.SavedAt.IsZero(), "savedAt is stamped by the server")
}

func TestGetProject_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/projects/missing_20260101_000000.json", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "project not found", resp["error"])
}

func TestExportProject(t *testing.T) {
	router := newTestRouter(t)

	save := doJSON(t, router, http.MethodPost, "/api/save-project", saveBody())
	require.Equal(t, http.StatusOK, save.Code)
	var saved struct {
		Filename string `json:"filename"`
	}
	require.NoError(t, json.Unmarshal(save.Body.Bytes(), &saved))

	rr := doJSON(t, router, http.MethodGet, "/api/export/"+saved.Filename, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, xlsxContentType, rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Line A.xlsx"`, rr.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(rr.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Task Name", "A", "B"}, rows[0])
	assert.Equal(t, []string{"Task1", "00:01.50", "00:00.00"}, rows[1])
}

func TestExportProject_NotFound(t *testing.T) {
	router := newTestRouter(t)
	rr := doJSON(t, router, http.MethodGet, "/api/export/missing_20260101_000000.json", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteProject(t *testing.T) {
	router := newTestRouter(t)

	save := doJSON(t, router, http.MethodPost, "/api/save-project", saveBody())
	require.Equal(t, http.StatusOK, save.Code)
	var saved struct {
		Filename string `json:"filename"`
	}
	require.NoError(t, json.Unmarshal(save.Body.Bytes(), &saved))

	rr := doJSON(t, router, http.MethodDelete, "/api/delete/"+saved.Filename, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Project deleted successfully", resp["message"])

	// gone for good
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/api/projects/"+saved.Filename, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodDelete, "/api/delete/"+saved.Filename, nil).Code)
}
