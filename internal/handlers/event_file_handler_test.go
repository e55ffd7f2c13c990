package handlers_test

import (
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/arkamaulana/eventhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	return len(entries)
}

func TestUploadEventFilesMissingOwner(t *testing.T) {
	env := setup(t)

	w := env.doMultipart(t, "/api/event-files", map[string]string{}, []uploadPart{
		{"filename", "a.png", "image/png", []byte("a")},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.EventFile{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Zero(t, countFiles(t, env.uploadDir))
}

func TestUploadEventFilesPartialBatch(t *testing.T) {
	env := setup(t)

	w := env.doMultipart(t, "/api/event-files", map[string]string{"event_id": "12"}, []uploadPart{
		{"filename", "a.png", "image/png", []byte("a")},
		{"filename", "b.jpg", "image/jpeg", []byte("b")},
		{"filename", "c.jpeg", "image/jpeg", []byte("c")},
		{"filename", "d.gif", "image/gif", []byte("d")},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["is_approved"])
	assert.Equal(t, float64(3), body["accepted"])
	assert.Equal(t, float64(1), body["rejected"])

	var rows []models.EventFile
	require.NoError(t, env.db.Find(&rows).Error)
	assert.Len(t, rows, 3)
	assert.Equal(t, 3, countFiles(t, env.uploadDir))
}

func TestUploadEventFilesTooMany(t *testing.T) {
	env := setup(t)

	parts := make([]uploadPart, 5)
	for i := range parts {
		parts[i] = uploadPart{"filename", "f.png", "image/png", []byte("x")}
	}

	w := env.doMultipart(t, "/api/event-files", map[string]string{"event_id": "1"}, parts)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEventFilesReturnsPublicPaths(t *testing.T) {
	env := setupWithBase(t, "http://cdn.example.com")

	w := env.doMultipart(t, "/api/event-files", map[string]string{"event_id": "8"}, []uploadPart{
		{"filename", "a.png", "image/png", []byte("a")},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := env.doJSON(t, http.MethodGet, "/api/event-files", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	body := decodeJSON(t, resp)
	files := body["files"].([]interface{})
	require.Len(t, files, 1)

	file := files[0].(map[string]interface{})
	path := file["path"].(string)
	assert.True(t, strings.HasPrefix(path, "http://cdn.example.com/uploads/"), path)
	assert.NotContains(t, path, env.uploadDir, "internal paths must not leak")
}
