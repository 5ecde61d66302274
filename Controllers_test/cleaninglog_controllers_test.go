package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/haccp-app/database"
	"github.com/yeremiapane/haccp-app/models"
)

func TestCreateAndListCleaningLogs(t *testing.T) {
	r := setupRouter(t, database.NewGormStore(setupTestDB(t)))

	w := doJSON(t, r, http.MethodGet, "/api/cleaning/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tasks := decode[[]models.CleaningTask](t, w)
	require.Len(t, tasks, 5)

	w = doJSON(t, r, http.MethodPost, "/api/cleaning/logs", map[string]interface{}{
		"taskId":    tasks[0].ID,
		"staffName": "Omar",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.CleaningLog](t, w)
	assert.Equal(t, tasks[0].ID, created.TaskID)
	assert.Equal(t, tasks[0].Title, created.Task.Title)

	w = doJSON(t, r, http.MethodPost, "/api/cleaning/logs", map[string]interface{}{
		"taskId":    tasks[3].ID,
		"staffName": "Sara",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/cleaning/logs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	logs := decode[[]models.CleaningLog](t, w)
	require.Len(t, logs, 2)
	assert.Equal(t, "Sara", logs[0].StaffName)
	assert.Equal(t, models.FrequencyWeekly, logs[0].Task.Frequency)
	assert.Equal(t, "Omar", logs[1].StaffName)
}

func TestCreateCleaningLogUnknownTask(t *testing.T) {
	r := setupRouter(t, database.NewGormStore(setupTestDB(t)))

	for _, payload := range []map[string]interface{}{
		{"taskId": 999, "staffName": "Omar"},
		{"taskId": 0, "staffName": "Omar"},
		{"staffName": "Omar"},
		{"taskId": 1},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/cleaning/logs", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "payload %v", payload)
	}

	w := doJSON(t, r, http.MethodGet, "/api/cleaning/logs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.CleaningLog](t, w))
}
