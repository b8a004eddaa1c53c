package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getWithRouter(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newExportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(testDeviceUUID))
	h := NewExportHandler()
	router.GET("/export/csv", h.ExportCSV)
	router.GET("/export/excel", h.ExportExcel)
	return router
}

func TestExportHandler_ExportCSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `events`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "input_prompt", "fixed_prompt", "reason", "created_at"}).
			AddRow(1, testDeviceUUID, "帮我写道歉信", "请以正式书面语写一封 200 字以内的道歉信", "模糊/指令不明确", time.Now()))

	w := getWithRouter(newExportRouter(), "/export/csv?start_time=2026-01-01&end_time=2026-01-31")

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "原始提示词")
	assert.Contains(t, w.Body.String(), "帮我写道歉信")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportCSV_MissingParams(t *testing.T) {
	w := getWithRouter(newExportRouter(), "/export/csv")

	assert.Equal(t, 400, w.Code)
}

func TestExportHandler_ExportCSV_BadDateFormat(t *testing.T) {
	w := getWithRouter(newExportRouter(), "/export/csv?start_time=01/01/2026&end_time=2026-01-31")

	assert.Equal(t, 400, w.Code)
}

func TestExportHandler_ExportExcel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `events`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "input_prompt", "fixed_prompt", "reason", "created_at"}).
			AddRow(1, testDeviceUUID, "帮我写道歉信", "请以正式书面语写一封 200 字以内的道歉信", "模糊/指令不明确", time.Now()))

	w := getWithRouter(newExportRouter(), "/export/excel?start_time=2026-01-01&end_time=2026-01-31")

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotEmpty(t, w.Body.Bytes())
	require.NoError(t, mock.ExpectationsWereMet())
}
