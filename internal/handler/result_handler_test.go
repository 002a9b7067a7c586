package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gradequiz-api/internal/domain/entity"
	"github.com/yourusername/gradequiz-api/internal/service"
)

func setupResultRouter(t *testing.T, userID uint) (*gin.Engine, *mockAttemptRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	attemptRepo := new(mockAttemptRepo)
	resultHandler := NewResultHandler(service.NewResultService(attemptRepo))

	router := gin.New()
	router.GET("/api/results/pastAttempts", func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}, resultHandler.GetPastAttempts)
	return router, attemptRepo
}

func TestResultHandler_GetPastAttempts(t *testing.T) {
	// Arrange
	router, attemptRepo := setupResultRouter(t, 9)
	now := time.Now()
	attemptRepo.On("GetByUserID", uint(9)).Return([]entity.Attempt{
		{
			ID: 2, UserID: 9, Score: 8,
			QuestionList:    entity.UintArray{1, 2},
			AnswerOrder:     entity.UintMatrix{{11, 12}, {21, 22}},
			SelectedAnswers: entity.UintArray{11, 22},
			Status:          entity.AttemptStatusGraded,
			TestDate:        now,
			SubmittedAt:     &now,
		},
		{
			ID: 1, UserID: 9, Score: 5,
			Status:   entity.AttemptStatusGraded,
			TestDate: now.Add(-time.Hour),
		},
	}, nil)

	// Act
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/results/pastAttempts", nil)
	router.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []struct {
			AttemptID uint `json:"attempt_id"`
			Score     int  `json:"score"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, uint(2), resp.Results[0].AttemptID)
	assert.Equal(t, 8, resp.Results[0].Score)
	assert.Equal(t, uint(1), resp.Results[1].AttemptID)
}

func TestResultHandler_GetPastAttempts_Empty(t *testing.T) {
	// Arrange
	router, attemptRepo := setupResultRouter(t, 9)
	attemptRepo.On("GetByUserID", uint(9)).Return(nil, nil)

	// Act
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/results/pastAttempts", nil)
	router.ServeHTTP(w, req)

	// Assert: пустой список, а не null
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results": []}`, w.Body.String())
}

func TestResultHandler_GetPastAttempts_RepositoryError(t *testing.T) {
	// Arrange
	router, attemptRepo := setupResultRouter(t, 9)
	attemptRepo.On("GetByUserID", uint(9)).Return(nil, errors.New("connection reset"))

	// Act
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/results/pastAttempts", nil)
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
