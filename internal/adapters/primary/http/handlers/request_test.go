package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"course-forecast-service/internal/adapters/primary/http/dto"
	"course-forecast-service/internal/core/domain"
)

func requestBody(t *testing.T, algorithmID uuid.UUID, overrides map[string]any) *bytes.Buffer {
	t.Helper()

	payload := map[string]any{
		"course_title":     "Django Web Course",
		"price":            100,
		"content_duration": 40,
		"num_lectures":     40,
		"level":            "All Levels",
		"days":             365,
		"algorithm_id":     algorithmID,
	}
	for k, v := range overrides {
		payload[k] = v
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func TestCreateRequest(t *testing.T) {
	env := setupRouter(t)

	algorithm := &domain.MLModel{
		ID:       uuid.New(),
		Endpoint: "SVR_V1_2020-06-19",
		FilePath: "models/algorithms/SVR_V1_2020-06-19",
	}
	env.modelRepo.On("GetByID", mock.Anything, algorithm.ID).Return(algorithm, nil)
	env.predictor.On("Predict", mock.Anything, algorithm.FilePath, mock.AnythingOfType("pipeline.Row")).Return(4127.4, nil)
	env.requestRepo.On("EndpointTaken", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("uuid.UUID")).Return(false, nil)
	env.requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PredictionRequest")).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", requestBody(t, algorithm.ID, nil))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", uuid.NewString())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PredictionRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "django web course", resp.CourseTitle)
	assert.Equal(t, float64(4127), resp.Prediction)

	wantEndpoint := fmt.Sprintf("django-web-course_%s_365_%s",
		algorithm.ID, time.Now().UTC().Format("2006-01-02"))
	assert.Equal(t, wantEndpoint, resp.Endpoint)
	env.requestRepo.AssertExpectations(t)
	env.predictor.AssertExpectations(t)
}

func TestCreateRequest_MissingUserID(t *testing.T) {
	env := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", requestBody(t, uuid.New(), nil))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.predictor.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRequest_PriceOutOfRange(t *testing.T) {
	env := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests",
		requestBody(t, uuid.New(), map[string]any{"price": 500}))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", uuid.NewString())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.predictor.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything, mock.Anything)
	env.requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRequest_AlgorithmNotFound(t *testing.T) {
	env := setupRouter(t)

	algorithmID := uuid.New()
	env.modelRepo.On("GetByID", mock.Anything, algorithmID).Return(nil, domain.ErrModelNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", requestBody(t, algorithmID, nil))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", uuid.NewString())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRequest(t *testing.T) {
	env := setupRouter(t)

	existing := &domain.PredictionRequest{
		ID:          uuid.New(),
		CourseTitle: "django web course",
		Prediction:  4127,
		Endpoint:    "django-web-course_x_365_2021-03-02",
	}
	env.requestRepo.On("GetByEndpoint", mock.Anything, existing.Endpoint).Return(existing, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/"+existing.Endpoint, nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PredictionRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(4127), resp.Prediction)
}

func TestGetRequest_NotFound(t *testing.T) {
	env := setupRouter(t)

	env.requestRepo.On("GetByEndpoint", mock.Anything, "missing").Return(nil, domain.ErrRequestNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/missing", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRequests(t *testing.T) {
	env := setupRouter(t)

	reqs := []*domain.PredictionRequest{
		{ID: uuid.New(), CourseTitle: "django web course", Endpoint: "a"},
	}
	env.requestRepo.On("List", mock.Anything, mock.AnythingOfType("ports.RequestListFilter")).Return(reqs, 1, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListPredictionRequestsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Total)
}

func TestUpdateRequest_DaysRecomputesPrediction(t *testing.T) {
	env := setupRouter(t)

	algorithm := &domain.MLModel{ID: uuid.New(), FilePath: "models/algorithms/x"}
	existing := &domain.PredictionRequest{
		ID:              uuid.New(),
		CreatedAt:       time.Date(2021, 3, 2, 12, 0, 0, 0, time.UTC),
		CourseTitle:     "django web course",
		Price:           100,
		ContentDuration: 40,
		NumLectures:     40,
		Level:           domain.LevelAll,
		Days:            365,
		Prediction:      4000,
		AlgorithmID:     algorithm.ID,
		Endpoint:        fmt.Sprintf("django-web-course_%s_365_2021-03-02", algorithm.ID),
	}
	env.requestRepo.On("GetByEndpoint", mock.Anything, existing.Endpoint).Return(existing, nil)
	env.modelRepo.On("GetByID", mock.Anything, algorithm.ID).Return(algorithm, nil)
	env.predictor.On("Predict", mock.Anything, algorithm.FilePath, mock.AnythingOfType("pipeline.Row")).Return(901.6, nil)
	env.requestRepo.On("EndpointTaken", mock.Anything, mock.AnythingOfType("string"), existing.ID).Return(false, nil)
	env.requestRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.PredictionRequest")).Return(nil)

	body := bytes.NewBufferString(`{"days": 30}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/"+existing.Endpoint, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PredictionRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(902), resp.Prediction)
	assert.Equal(t, fmt.Sprintf("django-web-course_%s_30_2021-03-02", algorithm.ID), resp.Endpoint)
}

func TestDeleteRequest(t *testing.T) {
	env := setupRouter(t)

	existing := &domain.PredictionRequest{ID: uuid.New(), Endpoint: "e"}
	env.requestRepo.On("GetByEndpoint", mock.Anything, "e").Return(existing, nil)
	env.requestRepo.On("Delete", mock.Anything, existing.ID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/requests/e", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response": "prediction request deleted"}`, w.Body.String())
	env.requestRepo.AssertExpectations(t)
}
