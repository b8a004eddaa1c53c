package api

import (
	"encoding/json"
	"testing"

	"click/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommendRouter(llm *service.LLMClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/recommended-prompts", NewRecommendHandler(testConfig(), llm).RecommendPrompts)
	return router
}

func TestRecommendHandler_WithTopics(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "grade"}).
			AddRow(testDeviceUUID, "general"))
	mock.ExpectQuery("SELECT .* FROM `histories`").
		WillReturnRows(sqlmock.NewRows([]string{"topic"}).
			AddRow("React 상태 관리 요약").
			AddRow("useEffect 사용법"))

	modelOutput := `{"recommendations":[{"id":1,"title":"심화 질문","content":"React 상태 관리 라이브러리들을 비교해 줘"},{"id":2,"title":"예제 요청","content":"useEffect의 대표적인 사용 예제를 보여줘"}]}`
	llm, calls := newTestLLM(t, modelOutput)

	body := `{"device_uuid":"` + testDeviceUUID + `","room_id":"room-1"}`
	w := postJSON(newRecommendRouter(llm), "/recommended-prompts", body)

	assert.Equal(t, 200, w.Code)
	var items []service.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "심화 질문", items[0].Title)
	assert.Equal(t, int32(1), *calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendHandler_EmptyHistory(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "grade"}).
			AddRow(testDeviceUUID, "general"))
	mock.ExpectQuery("SELECT .* FROM `histories`").
		WillReturnRows(sqlmock.NewRows([]string{"topic"}))

	// 没有历史时不应调用模型
	llm, calls := newTestLLM(t, "should not be called")

	body := `{"device_uuid":"` + testDeviceUUID + `"}`
	w := postJSON(newRecommendRouter(llm), "/recommended-prompts", body)

	assert.Equal(t, 200, w.Code)
	var items []service.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Empty(t, items)
	assert.Equal(t, int32(0), *calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendHandler_UnknownUser(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "grade"}))

	llm, calls := newTestLLM(t, "should not be called")

	body := `{"device_uuid":"` + testDeviceUUID + `"}`
	w := postJSON(newRecommendRouter(llm), "/recommended-prompts", body)

	assert.Equal(t, 404, w.Code)
	assert.Equal(t, int32(0), *calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendHandler_BadModelOutput(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "grade"}).
			AddRow(testDeviceUUID, "general"))
	mock.ExpectQuery("SELECT .* FROM `histories`").
		WillReturnRows(sqlmock.NewRows([]string{"topic"}).AddRow("주제"))

	llm, _ := newTestLLM(t, "추천을 드릴 수 없습니다.")

	body := `{"device_uuid":"` + testDeviceUUID + `","room_id":"room-1"}`
	w := postJSON(newRecommendRouter(llm), "/recommended-prompts", body)

	assert.Equal(t, 502, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
